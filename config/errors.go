package config

import "errors"

var ErrMissingCredentials = errors.New("missing required environment variables")

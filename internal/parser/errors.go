package parser

import "errors"

var (
	ErrMissingColumn  = errors.New("missing column")
	ErrMalformedValue = errors.New("malformed value")
	ErrEmptyFile      = errors.New("csv file is empty")
)

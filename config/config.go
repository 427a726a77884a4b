package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel     string `env:"LOG_LEVEL" envDefault:"warning"`
	CsvPath      string `env:"GOODREADS_CSV_PATH" envDefault:"goodreads_library_export.csv"`
	PreviewCount int    `env:"PREVIEW_COUNT" envDefault:"10"`
	Capacities   Capacities
	Properties   PropertyMap
}

type Capacities struct {
	BaseUrl      string        `env:"CAPACITIES_BASE_URL" envDefault:"https://api.capacities.io"`
	ApiToken     string        `env:"CAPACITIES_API_TOKEN"`
	SpaceID      string        `env:"CAPACITIES_SPACE_ID"`
	StructureID  string        `env:"CAPACITIES_STRUCTURE_ID"`
	RequestDelay time.Duration `env:"CAPACITIES_REQUEST_DELAY" envDefault:"1200ms"`
	HttpTimeout  time.Duration `env:"CAPACITIES_HTTP_TIMEOUT" envDefault:"60s"`
}

// PropertyMap holds the Capacities property ids of the Book structure.
// Ids are opaque tokens from the space; use cmd/findprops to look them up.
type PropertyMap struct {
	Author      string `env:"CAPACITIES_PROP_AUTHOR"`
	ISBN        string `env:"CAPACITIES_PROP_ISBN"`
	Rating      string `env:"CAPACITIES_PROP_RATING"`
	Publisher   string `env:"CAPACITIES_PROP_PUBLISHER"`
	DateRead    string `env:"CAPACITIES_PROP_DATE_READ"`
	Pages       string `env:"CAPACITIES_PROP_PAGES"`
	Description string `env:"CAPACITIES_PROP_DESCRIPTION" envDefault:"description"`
	Notes       string `env:"CAPACITIES_PROP_NOTES"`
	CoverImage  string `env:"CAPACITIES_PROP_COVER_IMAGE"`
	Tags        string `env:"CAPACITIES_PROP_TAGS" envDefault:"tags"`
	Bookshelves string `env:"CAPACITIES_PROP_BOOKSHELVES"`
}

// PropertyEnvKeys maps the normalized property names printed by findprops
// to the env variables that configure them.
var PropertyEnvKeys = map[string]string{
	"author":      "CAPACITIES_PROP_AUTHOR",
	"isbn":        "CAPACITIES_PROP_ISBN",
	"rating":      "CAPACITIES_PROP_RATING",
	"publisher":   "CAPACITIES_PROP_PUBLISHER",
	"date_read":   "CAPACITIES_PROP_DATE_READ",
	"pages":       "CAPACITIES_PROP_PAGES",
	"description": "CAPACITIES_PROP_DESCRIPTION",
	"notes":       "CAPACITIES_PROP_NOTES",
	"cover_image": "CAPACITIES_PROP_COVER_IMAGE",
	"tags":        "CAPACITIES_PROP_TAGS",
	"bookshelves": "CAPACITIES_PROP_BOOKSHELVES",
}

// Load reads the optional dotenv files and then the process environment.
// Values already present in the environment win over the files.
func Load(files ...string) (*Config, error) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config error: %w", err)
	}

	return cfg, nil
}

// RequireCredentials checks the variables both tools need. The structure id
// is only needed for importing.
func (c *Config) RequireCredentials(withStructure bool) error {
	var missing []string
	if c.Capacities.ApiToken == "" {
		missing = append(missing, "CAPACITIES_API_TOKEN")
	}
	if c.Capacities.SpaceID == "" {
		missing = append(missing, "CAPACITIES_SPACE_ID")
	}
	if withStructure && c.Capacities.StructureID == "" {
		missing = append(missing, "CAPACITIES_STRUCTURE_ID")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	return nil
}

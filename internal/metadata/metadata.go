// Package metadata loads and validates manuscript metadata and renders it as
// LaTeX front-matter blocks.
//
// Metadata comes either from a standalone YAML config file or from the YAML
// frontmatter of the main manuscript file. All field text is opaque user
// content and is LaTeX-escaped before emission.
package metadata

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/alnah/go-md2tex/internal/dateutil"
	"github.com/alnah/go-md2tex/internal/fileutil"
	"github.com/alnah/go-md2tex/internal/yamlutil"
)

// Sentinel errors for metadata operations.
var (
	ErrConfigNotFound = errors.New("metadata config not found")
	ErrConfigParse    = errors.New("cannot parse metadata config")
	ErrInvalidConfig  = errors.New("invalid metadata config")
)

// Config is the manuscript metadata contract: title, authorship,
// affiliations, keywords, bibliography, and document flags.
type Config struct {
	Title        string        `yaml:"title"`
	Authors      []Author      `yaml:"authors"`
	Affiliations []Affiliation `yaml:"affiliations"`
	Keywords     []string      `yaml:"keywords"`
	Bibliography string        `yaml:"bibliography"`
	Date         string        `yaml:"date"`
	LineNumbers  bool          `yaml:"line_numbers"`
}

// Author describes one manuscript author.
type Author struct {
	Name          string   `yaml:"name"`
	Affiliations  []string `yaml:"affiliations"` // affiliation shortnames
	Corresponding bool     `yaml:"corresponding_author"`
	CoFirst       bool     `yaml:"co_first_author"`
	Email         string   `yaml:"email"`
	ORCID         string   `yaml:"orcid"`
}

// Affiliation describes one institution referenced by authors.
type Affiliation struct {
	Shortname string `yaml:"shortname"`
	FullName  string `yaml:"full_name"`
	Location  string `yaml:"location"`
}

// Validate checks structural requirements. It does not constrain field
// content beyond shape: the pipeline escapes everything anyway.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Authors, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for i := range c.Authors {
		if err := c.Authors[i].validate(); err != nil {
			return fmt.Errorf("%w: author %d: %v", ErrInvalidConfig, i+1, err)
		}
	}
	return nil
}

func (a *Author) validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Name, validation.Required),
		validation.Field(&a.Email, is.EmailFormat),
	)
}

// Load reads a standalone YAML config file.
func Load(path string) (*Config, error) {
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	text, err := fileutil.ReadText(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yamlutil.UnmarshalStrict([]byte(text), &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return finish(&cfg)
}

// ParseFrontmatter extracts metadata from the YAML frontmatter of a
// manuscript and returns the remaining body. A manuscript without
// frontmatter returns a nil Config and the text unchanged.
func ParseFrontmatter(text string) (*Config, string, error) {
	if !strings.HasPrefix(text, "---\n") {
		return nil, text, nil
	}
	var cfg Config
	body, err := frontmatter.Parse(bytes.NewReader([]byte(text)), &cfg)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	finished, err := finish(&cfg)
	if err != nil {
		return nil, "", err
	}
	return finished, string(body), nil
}

// finish validates the config and resolves "auto" dates.
func finish(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Date != "" {
		resolved, err := dateutil.ResolveDate(cfg.Date, time.Now())
		if err != nil {
			return nil, fmt.Errorf("%w: date: %v", ErrInvalidConfig, err)
		}
		cfg.Date = resolved
	}
	return cfg, nil
}

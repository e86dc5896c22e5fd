package blog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/seo"
)

// Config aggregates the settings the engine needs. Fields use simple types
// so host applications can populate them from any source.
type Config struct {
	Content  ContentConfig
	Authors  AuthorsConfig
	Site     seo.Site
	Logging  LoggingConfig
	Markdown MarkdownConfig
}

// ContentConfig locates the content collection on disk.
type ContentConfig struct {
	// Dir is the directory holding content files.
	Dir string
	// Pattern matches content file names, default "*.md".
	Pattern string
	// Recursive walks subdirectories of Dir when true.
	Recursive bool
}

// AuthorsConfig locates the static author registry.
type AuthorsConfig struct {
	// Path is the registry JSON file, relative to the authors filesystem.
	Path string
}

// LoggingConfig captures options for the go-logger provider.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// MarkdownConfig carries rendering defaults for the goldmark parser.
type MarkdownConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
}

// DefaultConfig returns the settings a typical blog starts from.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:     "content/blog",
			Pattern: "*.md",
		},
		Authors: AuthorsConfig{
			Path: "content/authors.json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm", "linkify"},
		},
	}
}

// Validate reports configuration problems before any engine wiring happens.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Content),
		validation.Field(&c.Authors),
		validation.Field(&c.Logging),
		validation.Field(&c.Site, validation.By(validateSite)),
	)
}

func (c ContentConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Required),
	)
}

func (c AuthorsConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Path, validation.Required),
	)
}

func (c LoggingConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In("", "trace", "debug", "info", "warn", "warning", "error", "fatal")),
		validation.Field(&c.Format, validation.In("", "json", "console", "pretty")),
	)
}

func validateSite(value any) error {
	site, _ := value.(seo.Site)
	return validation.ValidateStruct(&site,
		validation.Field(&site.BaseURL, validation.Required),
		validation.Field(&site.Owner, validation.Required),
	)
}

// parseOptions maps markdown settings onto renderer defaults.
func (c MarkdownConfig) parseOptions() interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: append([]string(nil), c.Extensions...),
		Sanitize:   c.Sanitize,
		HardWraps:  c.HardWraps,
	}
}

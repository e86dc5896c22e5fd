package content

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// readingSpeedWPM is the fixed reading speed used to derive reading time
// from word counts.
const readingSpeedWPM = 200

const recordInvalidCode = "BLOG_RECORD_INVALID"

// Parser turns the raw bytes of one content file into a Record. It is a pure
// transform of file contents; reading time and word count are derived from
// the rendered body, everything else passes through declared metadata.
type Parser struct {
	renderer interfaces.MarkdownParser
}

// NewParser constructs a parser. When renderer is nil a goldmark renderer
// with default options is created.
func NewParser(renderer interfaces.MarkdownParser) *Parser {
	if renderer == nil {
		renderer = markdown.NewRenderer(interfaces.ParseOptions{})
	}
	return &Parser{renderer: renderer}
}

// Parse produces the Record for the content unit addressed by slug.
func (p *Parser) Parse(slug string, source []byte) (*Record, error) {
	rec, _, err := p.ParseSource(slug, source)
	return rec, err
}

// ParseSource additionally returns the Markdown body with the metadata block
// stripped, for callers that render the unit after loading it.
func (p *Parser) ParseSource(slug string, source []byte) (*Record, []byte, error) {
	var env frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return nil, nil, fmt.Errorf("content: parse front matter for %s: %w", slug, err)
	}

	if missing := env.missingFields(); len(missing) > 0 {
		return nil, nil, &MissingMetadataError{Slug: slug, Fields: missing}
	}

	markup, err := p.renderer.Parse(body)
	if err != nil {
		return nil, nil, fmt.Errorf("content: render body for %s: %w", slug, err)
	}

	rec := env.toRecord(slug)
	rec.WordCount = markdown.WordCount(markup)
	rec.ReadingTime = readingMinutes(rec.WordCount)

	if err := rec.Validate(); err != nil {
		return nil, nil, goerrors.Wrap(err, goerrors.CategoryValidation, "content: record validation failed").
			WithTextCode(recordInvalidCode)
	}

	return rec, body, nil
}

func readingMinutes(words int) int {
	minutes := (words + readingSpeedWPM - 1) / readingSpeedWPM
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

type frontMatterEnvelope struct {
	Title        string     `yaml:"title"`
	Description  string     `yaml:"description"`
	Excerpt      string     `yaml:"excerpt"`
	Date         time.Time  `yaml:"date"`
	UpdatedDate  *time.Time `yaml:"updatedDate"`
	Tags         []string   `yaml:"tags"`
	OGImage      string     `yaml:"ogImage"`
	Image        string     `yaml:"image"`
	Featured     bool       `yaml:"featured"`
	FAQs         []FAQ      `yaml:"faqs"`
	AuthorSlugs  []string   `yaml:"authorSlugs"`
	CanonicalURL string     `yaml:"canonicalUrl"`
}

func (env frontMatterEnvelope) missingFields() []string {
	var missing []string
	if env.Title == "" {
		missing = append(missing, "title")
	}
	if env.Description == "" {
		missing = append(missing, "description")
	}
	return missing
}

func (env frontMatterEnvelope) toRecord(slug string) *Record {
	return &Record{
		Slug:         slug,
		Title:        env.Title,
		Description:  env.Description,
		Excerpt:      env.Excerpt,
		PublishDate:  env.Date,
		UpdatedDate:  env.UpdatedDate,
		Tags:         append([]string(nil), env.Tags...),
		OGImage:      env.OGImage,
		HeroImage:    env.Image,
		Featured:     env.Featured,
		FAQs:         append([]FAQ(nil), env.FAQs...),
		AuthorSlugs:  append([]string(nil), env.AuthorSlugs...),
		CanonicalURL: env.CanonicalURL,
	}
}

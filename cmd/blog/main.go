// Command blog inspects a content collection from the command line: list
// the posts a directory holds, render one with its table of contents, or
// run a full-text query against the collection.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	blog "github.com/goliatone/go-blog"
	"github.com/goliatone/go-blog/seo"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: blog <list|render|search> [flags]")
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("blog %s: %v", os.Args[1], err)
	}
}

func run(command string, args []string) error {
	fs := flag.NewFlagSet("blog-"+command, flag.ExitOnError)
	contentDir := fs.String("content-dir", "content/blog", "Path to the content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering content files")
	recursive := fs.Bool("recursive", false, "Traverse subdirectories of the content root")
	authorsPath := fs.String("authors", "content/authors.json", "Path to the author registry file")
	baseURL := fs.String("base-url", "https://example.com", "Canonical site root")
	owner := fs.String("owner", "Site Owner", "Site owner name")
	slug := fs.String("slug", "", "Content slug (render)")
	queryStr := fs.String("query", "", "Search query (search)")
	limit := fs.Int("limit", 10, "Maximum results (search)")
	logLevel := fs.String("log-level", "warn", "Log level")
	logFormat := fs.String("log-format", "console", "Log format: json, console, or pretty")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := blog.DefaultConfig()
	cfg.Content.Dir = *contentDir
	cfg.Content.Pattern = *pattern
	cfg.Content.Recursive = *recursive
	cfg.Authors.Path = *authorsPath
	cfg.Site = seo.Site{BaseURL: *baseURL, Owner: *owner, Name: *owner}
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	engine, err := blog.New(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	switch command {
	case "list":
		return runList(ctx, engine)
	case "render":
		return runRender(ctx, engine, *slug)
	case "search":
		return runSearch(ctx, engine, *queryStr, *limit)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runList(ctx context.Context, engine *blog.Engine) error {
	page, err := engine.Posts(ctx, blog.Criteria{}, 1, 1000)
	if err != nil {
		return err
	}
	for _, rec := range page.Data {
		fmt.Printf("%s\t%s\t%s\t%dmin\n", rec.PublishDate.Format("2006-01-02"), rec.Slug, rec.Title, rec.ReadingTime)
	}
	fmt.Printf("%d posts\n", page.Total)
	return nil
}

func runRender(ctx context.Context, engine *blog.Engine, slug string) error {
	if slug == "" {
		return fmt.Errorf("-slug is required")
	}

	rendered, err := engine.RenderPost(ctx, slug)
	if err != nil {
		return err
	}

	for _, h := range rendered.Headings {
		indent := ""
		if h.Level == 3 {
			indent = "  "
		}
		fmt.Printf("%s- %s (#%s)\n", indent, h.Text, h.ID)
	}
	fmt.Println()
	fmt.Println(rendered.HTML)
	return nil
}

func runSearch(ctx context.Context, engine *blog.Engine, queryStr string, limit int) error {
	if queryStr == "" {
		return fmt.Errorf("-query is required")
	}

	idx, err := engine.SearchIndex(ctx)
	if err != nil {
		return err
	}
	defer idx.Close()

	hits, err := idx.Search(ctx, queryStr, limit)
	if err != nil {
		return err
	}
	for _, hit := range hits {
		fmt.Printf("%.3f\t%s\t%s\n", hit.Score, hit.Slug, hit.Title)
	}
	return nil
}

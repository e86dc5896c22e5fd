package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func TestRenderer_Parse(t *testing.T) {
	r := NewRenderer(interfaces.ParseOptions{})

	out, err := r.Parse([]byte("## Getting Started\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(out)
	if !strings.Contains(got, "<h2 id=\"getting-started\">") {
		t.Fatalf("expected heading with auto id, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered <strong>, got %q", got)
	}
}

func TestRenderer_SafeModeSuppressesRawHTML(t *testing.T) {
	r := NewRenderer(interfaces.ParseOptions{SafeMode: true})

	out, err := r.Parse([]byte("before\n\n<script>alert(1)</script>\n\nafter"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Fatalf("expected raw HTML to be suppressed, got %q", string(out))
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText([]byte("<h2 id=\"a\">Title</h2><p>one  two\nthree</p><script>ignored()</script>"))
	if got != "Title one two three" {
		t.Fatalf("PlainText mismatch: %q", got)
	}
}

func TestWordCount(t *testing.T) {
	if n := WordCount([]byte("<p>alpha beta</p><p>gamma</p>")); n != 3 {
		t.Fatalf("expected 3 words, got %d", n)
	}
	if n := WordCount(nil); n != 0 {
		t.Fatalf("expected 0 words for empty markup, got %d", n)
	}
}

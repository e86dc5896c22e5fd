package markdown

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// PlainText strips tags from rendered HTML and returns the text content with
// whitespace normalised to single spaces. script and style blocks are
// skipped entirely.
func PlainText(markup []byte) string {
	z := html.NewTokenizer(bytes.NewReader(markup))

	var b strings.Builder
	depthSkip := 0

	for {
		switch tt := z.Next(); tt {
		case html.ErrorToken:
			return normalizeWS(b.String())

		case html.StartTagToken:
			name, _ := z.TagName()
			if skipTag(name) {
				depthSkip++
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if skipTag(name) && depthSkip > 0 {
				depthSkip--
			}

		case html.TextToken:
			if depthSkip == 0 {
				b.Write(z.Text())
				b.WriteByte(' ')
			}
		}
	}
}

// WordCount reports the number of whitespace-separated words in the plain
// text of the supplied HTML.
func WordCount(markup []byte) int {
	return len(strings.Fields(PlainText(markup)))
}

func skipTag(name []byte) bool {
	switch string(name) {
	case "script", "style":
		return true
	}
	return false
}

func normalizeWS(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

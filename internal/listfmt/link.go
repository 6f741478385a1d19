package listfmt

import (
	"html"
	"strings"

	"github.com/handiism/embedrs/internal/model"
)

// LinkFunc renders a single NamedLink in some output markup.
type LinkFunc func(model.NamedLink) string

// HTMLLink renders link as an anchor tag. Name and URL are HTML-escaped.
func HTMLLink(link model.NamedLink) string {
	return `<a href="` + html.EscapeString(link.URL) + `">` + html.EscapeString(link.Name) + `</a>`
}

var markdownEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)

// MarkdownLink renders link as an inline Markdown link.
func MarkdownLink(link model.NamedLink) string {
	url := strings.NewReplacer("(", "%28", ")", "%29", " ", "%20").Replace(link.URL)
	return "[" + markdownEscaper.Replace(link.Name) + "](" + url + ")"
}

// TextLink renders only the display name.
func TextLink(link model.NamedLink) string {
	return link.Name
}

// LinkFuncFor maps a format name to its LinkFunc. Unknown names yield HTMLLink.
func LinkFuncFor(format string) LinkFunc {
	switch strings.ToLower(format) {
	case "markdown", "md":
		return MarkdownLink
	case "text", "plain":
		return TextLink
	default:
		return HTMLLink
	}
}

// Package templates renders article bylines from embedded partials.
//
// The partials call into listfmt through template functions:
//
//	authorlist AUTHORS    sorted authors, last pair joined by the conjunction
//	linklist LINKS        links in the given order, last pair joined by the conjunction
//	linkjoin SEP LINKS    links joined by SEP only
//	date LAYOUT TIME      time.Format
//
// HTML output goes through html/template; Markdown and plain text use
// text/template with the matching link markup.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/handiism/embedrs/internal/listfmt"
	"github.com/handiism/embedrs/internal/model"
)

//go:embed partials
var partials embed.FS

// Output formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

// BylineData is the value passed to the byline partial.
type BylineData struct {
	Article *model.Article

	// Authors are sorted by name when rendered.
	Authors []model.Author

	// Contributors are rendered in the given order.
	Contributors []model.NamedLink
}

type executor interface {
	ExecuteTemplate(w io.Writer, name string, data any) error
}

type htmlExecutor struct{ t *htmltemplate.Template }

func (e htmlExecutor) ExecuteTemplate(w io.Writer, name string, data any) error {
	return e.t.ExecuteTemplate(w, name, data)
}

type textExecutor struct{ t *texttemplate.Template }

func (e textExecutor) ExecuteTemplate(w io.Writer, name string, data any) error {
	return e.t.ExecuteTemplate(w, name, data)
}

// Renderer renders bylines in one output format.
//
// A Renderer is immutable after construction and safe for concurrent use.
type Renderer struct {
	format string
	exec   executor
}

// NewRenderer parses the partials for format ("html", "markdown" or "text").
//
// cfg supplies the separator, conjunction and UseAnd setting; its Link field
// is replaced by the link markup of format. A nil cfg means
// listfmt.DefaultConfig.
func NewRenderer(format string, cfg *listfmt.Config) (*Renderer, error) {
	base := listfmt.DefaultConfig()
	if cfg != nil {
		c := *cfg
		base = &c
	}

	switch format {
	case FormatHTML:
		base.Link = listfmt.HTMLLink
		t, err := htmltemplate.New("").Funcs(HTMLFuncs(base)).ParseFS(partials, "partials/byline.html")
		if err != nil {
			return nil, fmt.Errorf("parse html partials: %w", err)
		}
		return &Renderer{format: format, exec: htmlExecutor{t}}, nil

	case FormatMarkdown, FormatText:
		base.Link = listfmt.LinkFuncFor(format)
		t, err := texttemplate.New("").Funcs(TextFuncs(base)).ParseFS(partials, "partials/byline.txt")
		if err != nil {
			return nil, fmt.Errorf("parse text partials: %w", err)
		}
		return &Renderer{format: format, exec: textExecutor{t}}, nil

	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Format returns the output format name.
func (r *Renderer) Format() string {
	return r.format
}

// Ext returns the file extension for rendered fragments, including the dot.
func (r *Renderer) Ext() string {
	switch r.format {
	case FormatHTML:
		return ".html"
	case FormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// Byline renders the byline of article credited to authors and contributors.
// Authors are sorted by name; contributors keep their given order. The
// "by" clause is left out when there are no authors.
func (r *Renderer) Byline(article *model.Article, authors []model.Author, contributors []model.NamedLink) (string, error) {
	data := BylineData{Article: article, Authors: authors, Contributors: contributors}

	var buf bytes.Buffer
	if err := r.exec.ExecuteTemplate(&buf, "byline", data); err != nil {
		return "", fmt.Errorf("render byline for %s: %w", article.Slug, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// TextFuncs returns the template functions for text/template, formatting
// lists with cfg.
func TextFuncs(cfg *listfmt.Config) texttemplate.FuncMap {
	return texttemplate.FuncMap{
		"authorlist": func(authors []model.Author) string {
			return listfmt.FormatAuthors(authors, cfg)
		},
		"linklist": func(links []model.NamedLink) string {
			return listfmt.Format(links, cfg)
		},
		"linkjoin": func(sep string, links []model.NamedLink) string {
			return listfmt.Format(links, plainJoin(cfg, sep))
		},
		"date": formatDate,
	}
}

// HTMLFuncs returns the template functions for html/template. cfg.Link must
// produce safe HTML; the results are not escaped again.
func HTMLFuncs(cfg *listfmt.Config) htmltemplate.FuncMap {
	return htmltemplate.FuncMap{
		"authorlist": func(authors []model.Author) htmltemplate.HTML {
			return htmltemplate.HTML(listfmt.FormatAuthors(authors, cfg))
		},
		"linklist": func(links []model.NamedLink) htmltemplate.HTML {
			return htmltemplate.HTML(listfmt.Format(links, cfg))
		},
		"linkjoin": func(sep string, links []model.NamedLink) htmltemplate.HTML {
			return htmltemplate.HTML(listfmt.Format(links, plainJoin(cfg, htmltemplate.HTMLEscapeString(sep))))
		},
		"date": formatDate,
	}
}

func plainJoin(cfg *listfmt.Config, sep string) *listfmt.Config {
	c := *cfg
	c.Separator = sep
	c.UseAnd = false
	return &c
}

func formatDate(layout string, t time.Time) string {
	return t.Format(layout)
}

package listfmt

import (
	"strings"

	"github.com/handiism/embedrs/internal/model"
)

// Config controls how a list is joined.
type Config struct {
	// Separator goes between items that are not the final pair.
	Separator string

	// UseAnd joins the final pair with Conjunction instead of Separator.
	UseAnd bool

	// Conjunction is the word placed between the final pair when UseAnd is
	// set. It is surrounded by single spaces.
	Conjunction string

	// Link renders each item. Nil means HTMLLink.
	Link LinkFunc
}

// DefaultConfig returns the configuration used for English bylines:
// ", " between items and "and" before the last one.
func DefaultConfig() *Config {
	return &Config{
		Separator:   ", ",
		UseAnd:      true,
		Conjunction: "and",
		Link:        HTMLLink,
	}
}

// Format renders items as a single list.
//
//   - no items: ""
//   - one item: the rendered link
//   - UseAnd: "a, b and c" (the separator never precedes the conjunction)
//   - otherwise: every item joined by Separator
//
// A nil cfg means DefaultConfig. items is neither modified nor reordered.
func Format(items []model.NamedLink, cfg *Config) string {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	link := cfg.Link
	if link == nil {
		link = HTMLLink
	}

	var sb strings.Builder
	last := len(items) - 1
	for i, item := range items {
		if i > 0 {
			if i == last && cfg.UseAnd {
				sb.WriteString(" " + cfg.conjunction() + " ")
			} else {
				sb.WriteString(cfg.Separator)
			}
		}
		sb.WriteString(link(item))
	}
	return sb.String()
}

// FormatAuthors sorts authors by display name and formats their links.
//
// The sort is stable, so authors sharing a name stay in input order.
func FormatAuthors(authors []model.Author, cfg *Config) string {
	return Format(model.Links(model.SortAuthors(authors)), cfg)
}

func (c *Config) conjunction() string {
	if c.Conjunction == "" {
		return "and"
	}
	return c.Conjunction
}

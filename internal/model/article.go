package model

import (
	"strings"
	"time"
)

// Article represents a blog post from the articles table.
//
// Article holds the decoded front matter and the raw Markdown body. The
// body is never interpreted here; rendering it is the job of whatever
// Markdown renderer the site uses.
type Article struct {
	// Slug is the table-relative document path, e.g. "2017/arm-inline-asm".
	Slug string `json:"slug" toml:"slug"`

	// Title is the article headline.
	Title string `json:"title" toml:"title"`

	// Date is the publication date.
	Date time.Time `json:"date" toml:"date"`

	// Authors lists author slugs in the order given by the front matter.
	Authors []string `json:"authors" toml:"authors"`

	// ContributorIDs lists author slugs credited as contributors.
	ContributorIDs []string `json:"contributor_ids,omitempty" toml:"contributor_ids"`

	// Contributors are credited after the contributors named by
	// ContributorIDs, for people without an author record.
	Contributors []NamedLink `json:"contributors,omitempty" toml:"contributors"`

	// Discussions link to external threads about the article.
	Discussions []NamedLink `json:"discussions,omitempty" toml:"discussions"`

	// Tags are free-form keywords.
	Tags []string `json:"tags,omitempty" toml:"tags"`

	// Draft marks articles that are not published yet.
	Draft bool `json:"draft,omitempty" toml:"draft"`

	// Body is the Markdown content following the front matter.
	Body string `json:"-" toml:"-"`
}

// HasContributors reports whether anyone besides the authors is credited.
func (a *Article) HasContributors() bool {
	return len(a.ContributorIDs) > 0 || len(a.Contributors) > 0
}

// HasTag reports whether the article carries tag, ignoring case.
func (a *Article) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

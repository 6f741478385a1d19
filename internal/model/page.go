package model

// Page is a standalone document from the pages table, such as the About page.
type Page struct {
	// Slug is the table-relative document path, e.g. "about".
	Slug string `json:"slug" toml:"slug"`

	// Title is the page headline.
	Title string `json:"title" toml:"title"`

	// Body is the Markdown content following the front matter.
	Body string `json:"-" toml:"-"`
}

package model

// NamedLink is a display name paired with the URL it links to.
//
// NamedLink carries no identity beyond its two fields. Neither field is
// validated; empty values are legal and are rendered as-is.
type NamedLink struct {
	// Name is the text shown to the reader.
	Name string `json:"name" toml:"name"`

	// URL is the link target.
	URL string `json:"url" toml:"url"`
}

// Linker is implemented by records that can be shown as a hyperlink.
type Linker interface {
	Link() NamedLink
}

// Links converts a slice of Linker values into NamedLinks, preserving order.
func Links[T Linker](items []T) []NamedLink {
	links := make([]NamedLink, len(items))
	for i, item := range items {
		links[i] = item.Link()
	}
	return links
}

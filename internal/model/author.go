package model

import "slices"

// Author represents an entry in the authors table.
//
// Example front matter (JSON, as stored under authors/mbr):
//
//	---
//	{"name": "Marc", "homepage": "https://marc.example"}
//	---
type Author struct {
	// Slug is the table-relative document path, e.g. "mbr".
	Slug string `json:"slug" toml:"slug"`

	// Name is the display name used on bylines.
	Name string `json:"name" toml:"name"`

	// Homepage is where the author's name links to.
	Homepage string `json:"homepage" toml:"homepage"`

	// Bio is the optional document body.
	Bio string `json:"-" toml:"-"`
}

// Link returns the NamedLink for this author.
//
// Authors currently link to their homepage; a bio page could replace it later.
func (a Author) Link() NamedLink {
	return NamedLink{Name: a.Name, URL: a.Homepage}
}

// SortAuthors returns a copy of authors sorted by display name.
//
// The comparison is byte-wise and therefore case-sensitive ("Zed" sorts
// before "alice"). Authors with identical names keep their relative order.
// The input slice is not modified.
func SortAuthors(authors []Author) []Author {
	sorted := slices.Clone(authors)
	slices.SortStableFunc(sorted, func(a, b Author) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// Package content reads the blog's flat-file database.
//
// The content root holds one directory per table:
//
//	content/
//	  articles/2017/arm-inline-asm.md
//	  authors/mbr
//
// Every file is a document: a front matter header followed by an optional
// body. The header is JSON between "---" lines or TOML between "+++" lines:
//
//	---
//	{"title": "Inline assembly on ARM", "date": "2017-06-10", "authors": ["mbr"]}
//	---
//
//	Body text in Markdown...
//
// A document's slug is its path relative to the table directory, with
// forward slashes and without the file extension.
//
// # Loading
//
//	store := content.NewStore(4)
//	if err := store.Load(ctx, "content"); err != nil {
//	    return err
//	}
//	for _, article := range store.Published() {
//	    authors, err := store.AuthorsOf(article)
//	    ...
//	}
package content

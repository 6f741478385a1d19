// Package model defines the core data structures used throughout
// the embedrs blog tooling.
//
// # NamedLink
//
// NamedLink is a (display text, URL) pair, used for authors, contributors
// and external discussion references:
//
//	link := model.NamedLink{Name: "Alice", URL: "https://alice.example"}
//
// # Author
//
// Author is a record from the authors table. Its Link method returns the
// NamedLink used when the author is listed on an article:
//
//	author := model.Author{Slug: "mbr", Name: "Marc", Homepage: "https://marc.example"}
//	fmt.Println(author.Link().URL) // https://marc.example
//
// # Article
//
// Article carries the front matter of a blog post plus its raw body:
//
//	article.Authors        // author slugs, resolved by the content store
//	article.ContributorIDs // author slugs credited as contributors
//	article.Contributors   // extra people credited on the byline
//	article.Discussions    // external discussion threads
package model

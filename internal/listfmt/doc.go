// Package listfmt joins hyperlinked names into natural-language lists.
//
// Format renders each item with a LinkFunc and joins the results with the
// configured separator, optionally joining the last two items with a
// conjunction instead:
//
//	items := []model.NamedLink{{"Alice", "/a"}, {"Bob", "/b"}, {"Carol", "/c"}}
//	listfmt.Format(items, nil)
//	// <a href="/a">Alice</a>, <a href="/b">Bob</a> and <a href="/c">Carol</a>
//
// # Link Markup
//
// The formatter only decides the order and joining of items. The markup of
// each item comes from a LinkFunc:
//   - HTMLLink renders an anchor tag
//   - MarkdownLink renders [name](url)
//   - TextLink renders the bare name
//
// # Conjunctions
//
// Config.Conjunction defaults to "and". ConjunctionFor picks the word for a
// language tag when bylines are rendered for a non-English audience.
package listfmt

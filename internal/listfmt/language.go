package listfmt

import "golang.org/x/text/language"

var conjunctions = []struct {
	tag  language.Tag
	word string
}{
	{language.English, "and"},
	{language.German, "und"},
	{language.French, "et"},
	{language.Spanish, "y"},
	{language.Dutch, "en"},
	{language.Portuguese, "e"},
	{language.Italian, "e"},
}

var conjunctionMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(conjunctions))
	for i, c := range conjunctions {
		tags[i] = c.tag
	}
	return language.NewMatcher(tags)
}()

// ConjunctionFor returns the word for "and" in the language of tag.
// Unsupported languages fall back to English.
func ConjunctionFor(tag language.Tag) string {
	_, idx, conf := conjunctionMatcher.Match(tag)
	if conf == language.No {
		return conjunctions[0].word
	}
	return conjunctions[idx].word
}

// ConfigFor returns DefaultConfig with the conjunction of the given language.
func ConfigFor(tag language.Tag) *Config {
	cfg := DefaultConfig()
	cfg.Conjunction = ConjunctionFor(tag)
	return cfg
}

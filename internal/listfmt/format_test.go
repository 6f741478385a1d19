package listfmt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/handiism/embedrs/internal/model"
)

var (
	alice = model.NamedLink{Name: "Alice", URL: "/a"}
	bob   = model.NamedLink{Name: "Bob", URL: "/b"}
	carol = model.NamedLink{Name: "Carol", URL: "/c"}
	dave  = model.NamedLink{Name: "Dave", URL: "/d"}
)

// bracket makes joins visible in expectations.
func bracket(l model.NamedLink) string {
	return "<" + l.Name + ">"
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		items  []model.NamedLink
		sep    string
		useAnd bool
		want   string
	}{
		{"empty", nil, ", ", true, ""},
		{"empty without and", []model.NamedLink{}, ", ", false, ""},
		{"single", []model.NamedLink{alice}, ", ", true, "<Alice>"},
		{"single without and", []model.NamedLink{alice}, ", ", false, "<Alice>"},
		{"pair", []model.NamedLink{alice, bob}, ", ", true, "<Alice> and <Bob>"},
		{"pair without and", []model.NamedLink{alice, bob}, ", ", false, "<Alice>, <Bob>"},
		{"three", []model.NamedLink{alice, bob, carol}, ", ", true, "<Alice>, <Bob> and <Carol>"},
		{"three without and", []model.NamedLink{alice, bob, carol}, ", ", false, "<Alice>, <Bob>, <Carol>"},
		{"four", []model.NamedLink{alice, bob, carol, dave}, ", ", true, "<Alice>, <Bob>, <Carol> and <Dave>"},
		{"custom separator", []model.NamedLink{alice, bob, carol}, " / ", true, "<Alice> / <Bob> and <Carol>"},
		{"custom separator without and", []model.NamedLink{alice, bob, carol}, " / ", false, "<Alice> / <Bob> / <Carol>"},
		{"empty separator", []model.NamedLink{alice, bob, carol}, "", false, "<Alice><Bob><Carol>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Separator: tt.sep, UseAnd: tt.useAnd, Link: bracket}
			if got := Format(tt.items, cfg); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_HTMLDefaults(t *testing.T) {
	tests := []struct {
		items []model.NamedLink
		want  string
	}{
		{nil, ""},
		{[]model.NamedLink{alice}, `<a href="/a">Alice</a>`},
		{[]model.NamedLink{alice, bob}, `<a href="/a">Alice</a> and <a href="/b">Bob</a>`},
		{
			[]model.NamedLink{alice, bob, carol},
			`<a href="/a">Alice</a>, <a href="/b">Bob</a> and <a href="/c">Carol</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d items", len(tt.items)), func(t *testing.T) {
			if got := Format(tt.items, nil); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_NoAndWhenDisabled(t *testing.T) {
	items := []model.NamedLink{{Name: "x", URL: "/x"}, {Name: "y", URL: "/y"}, {Name: "z", URL: "/z"}, {Name: "w", URL: "/w"}}
	for n := 0; n <= len(items); n++ {
		cfg := &Config{Separator: ", ", UseAnd: false, Link: TextLink}
		got := Format(items[:n], cfg)
		if strings.Contains(got, "and") {
			t.Errorf("Format(%d items) = %q, must not contain \"and\"", n, got)
		}
		if want := strings.Join([]string{"x", "y", "z", "w"}[:n], ", "); got != want {
			t.Errorf("Format(%d items) = %q, want %q", n, got, want)
		}
	}
}

func TestFormat_EmptyFieldsPassThrough(t *testing.T) {
	items := []model.NamedLink{{Name: "", URL: ""}, {Name: "Bob", URL: ""}}

	got := Format(items, nil)
	want := `<a href=""></a> and <a href="">Bob</a>`
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_PureAndOrderPreserving(t *testing.T) {
	items := []model.NamedLink{carol, alice, bob}
	cfg := &Config{Separator: ", ", UseAnd: true, Link: bracket}

	first := Format(items, cfg)
	second := Format(items, cfg)
	if first != second {
		t.Errorf("Format() not deterministic: %q vs %q", first, second)
	}
	if first != "<Carol>, <Alice> and <Bob>" {
		t.Errorf("Format() reordered items: %q", first)
	}
	if items[0] != carol || items[1] != alice || items[2] != bob {
		t.Errorf("input was modified: %v", items)
	}
}

func TestFormat_Conjunction(t *testing.T) {
	cfg := &Config{Separator: ", ", UseAnd: true, Conjunction: "und", Link: bracket}

	got := Format([]model.NamedLink{alice, bob, carol}, cfg)
	if got != "<Alice>, <Bob> und <Carol>" {
		t.Errorf("Format() = %q", got)
	}
}

func TestFormat_ConcurrentUse(t *testing.T) {
	items := []model.NamedLink{alice, bob, carol}
	want := Format(items, nil)

	done := make(chan string)
	for i := 0; i < 8; i++ {
		go func() { done <- Format(items, nil) }()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; got != want {
			t.Errorf("concurrent Format() = %q, want %q", got, want)
		}
	}
}

func TestFormatAuthors(t *testing.T) {
	authors := []model.Author{
		{Slug: "c", Name: "Carol", Homepage: "/c"},
		{Slug: "a", Name: "Alice", Homepage: "/a"},
		{Slug: "b2", Name: "Bob", Homepage: "/b2"},
		{Slug: "b1", Name: "Bob", Homepage: "/b1"},
	}
	cfg := &Config{Separator: ", ", UseAnd: true, Link: func(l model.NamedLink) string { return l.URL }}

	got := FormatAuthors(authors, cfg)
	if want := "/a, /b2, /b1 and /c"; got != want {
		t.Errorf("FormatAuthors() = %q, want %q", got, want)
	}
	if authors[0].Slug != "c" {
		t.Error("FormatAuthors() must not sort the caller's slice")
	}
}

package content

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantFormat Format
		wantHeader string
		wantBody   string
		wantErr    error
	}{
		{
			name:       "json with body",
			input:      "---\n{\"title\": \"x\"}\n---\n\nHello\n\nWorld\n",
			wantFormat: FormatJSON,
			wantHeader: `{"title": "x"}`,
			wantBody:   "Hello\n\nWorld",
		},
		{
			name:       "leading blank lines",
			input:      "\n\n---\n{}\n---\nBody",
			wantFormat: FormatJSON,
			wantHeader: "{}",
			wantBody:   "Body",
		},
		{
			name:       "toml",
			input:      "+++\ntitle = \"x\"\n+++\nBody",
			wantFormat: FormatTOML,
			wantHeader: `title = "x"`,
			wantBody:   "Body",
		},
		{
			name:       "no body",
			input:      "---\n{}\n---\n",
			wantFormat: FormatJSON,
			wantHeader: "{}",
			wantBody:   "",
		},
		{
			name:       "crlf line endings",
			input:      "---\r\n{}\r\n---\r\nBody\r\n",
			wantFormat: FormatJSON,
			wantHeader: "{}",
			wantBody:   "Body",
		},
		{
			name:    "missing front matter",
			input:   "Just text\n",
			wantErr: ErrNoFrontMatter,
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: ErrNoFrontMatter,
		},
		{
			name:    "unterminated",
			input:   "---\n{}\n",
			wantErr: ErrUnterminated,
		},
		{
			name:    "mismatched delimiters",
			input:   "+++\ntitle = \"x\"\n---\n",
			wantErr: ErrUnterminated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if doc.Format != tt.wantFormat {
				t.Errorf("Format = %v, want %v", doc.Format, tt.wantFormat)
			}
			if string(doc.Header) != tt.wantHeader {
				t.Errorf("Header = %q, want %q", doc.Header, tt.wantHeader)
			}
			if doc.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", doc.Body, tt.wantBody)
			}
		})
	}
}

func TestDocument_DecodeDates(t *testing.T) {
	want := time.Date(2017, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"json date", "---\n{\"date\": \"2017-06-10\"}\n---\n"},
		{"json rfc3339", "---\n{\"date\": \"2017-06-10T00:00:00Z\"}\n---\n"},
		{"toml datetime", "+++\ndate = 2017-06-10T00:00:00Z\n+++\n"},
		{"toml string", "+++\ndate = \"2017-06-10\"\n+++\n"},
		{"toml local date", "+++\ndate = 2017-06-10\n+++\n"},
		{"toml local datetime", "+++\ndate = 2017-06-10T00:00:00\n+++\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseDocument() error = %v", err)
			}
			var h articleHeader
			if err := doc.Decode(&h); err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !h.Date.Equal(want) {
				t.Errorf("Date = %v, want %v", h.Date.Time, want)
			}
			if h.Date.Location() != time.UTC {
				t.Errorf("Date location = %s, want UTC", h.Date.Location())
			}
		})
	}
}

func TestDocument_DecodeInvalid(t *testing.T) {
	doc := &Document{Format: FormatJSON, Header: []byte("{not json")}
	if err := doc.Decode(&articleHeader{}); err == nil {
		t.Error("expected decode error")
	}

	doc = &Document{Format: FormatJSON, Header: []byte(`{"date": "yesterday"}`)}
	if err := doc.Decode(&articleHeader{}); err == nil {
		t.Error("expected invalid date error")
	}

	doc = &Document{Format: FormatTOML, Header: []byte("date = 07:32:00")}
	if err := doc.Decode(&articleHeader{}); err == nil {
		t.Error("expected error for a time without a date")
	}
}

func TestEncodeDocument_RoundTrip(t *testing.T) {
	data, err := EncodeDocument(authorHeader{Name: "Marc", Homepage: "https://marc.example"}, "Bio text")
	if err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}

	doc, err := ParseDocument(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	var h authorHeader
	if err := doc.Decode(&h); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if h.Name != "Marc" || h.Homepage != "https://marc.example" {
		t.Errorf("header = %+v", h)
	}
	if doc.Body != "Bio text" {
		t.Errorf("Body = %q", doc.Body)
	}
}

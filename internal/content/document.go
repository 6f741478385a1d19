package content

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrNoFrontMatter is returned when a document does not start with a
	// front matter delimiter.
	ErrNoFrontMatter = errors.New("document does not start with front matter")

	// ErrUnterminated is returned when the closing delimiter is missing.
	ErrUnterminated = errors.New("front matter is not terminated")
)

// Format identifies the encoding of a front matter header.
type Format int

const (
	// FormatJSON is a JSON header between "---" lines.
	FormatJSON Format = iota

	// FormatTOML is a TOML header between "+++" lines.
	FormatTOML
)

// Delimiter returns the line that opens and closes a header of this format.
func (f Format) Delimiter() string {
	if f == FormatTOML {
		return "+++"
	}
	return "---"
}

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "json"
}

// Document is a parsed but not yet decoded document.
type Document struct {
	Format Format
	Header []byte
	Body   string
}

// Decode unmarshals the header into v.
func (d *Document) Decode(v any) error {
	switch d.Format {
	case FormatTOML:
		if _, err := toml.Decode(string(d.Header), v); err != nil {
			return fmt.Errorf("decode toml front matter: %w", err)
		}
	default:
		if err := json.Unmarshal(d.Header, v); err != nil {
			return fmt.Errorf("decode json front matter: %w", err)
		}
	}
	return nil
}

// ParseDocument splits r into header and body.
//
// Blank lines before the opening delimiter and between the closing
// delimiter and the body are skipped. A document without a body has an
// empty Body.
func ParseDocument(r io.Reader) (*Document, error) {
	const (
		statePre = iota
		stateHeader
		stateSkip
		stateBody
	)

	var (
		doc    Document
		header []string
		body   []string
		state  = statePre
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		switch state {
		case statePre:
			if strings.TrimSpace(line) == "" {
				continue
			}
			switch line {
			case FormatJSON.Delimiter():
				doc.Format = FormatJSON
			case FormatTOML.Delimiter():
				doc.Format = FormatTOML
			default:
				return nil, ErrNoFrontMatter
			}
			state = stateHeader

		case stateHeader:
			if line == doc.Format.Delimiter() {
				state = stateSkip
				continue
			}
			header = append(header, line)

		case stateSkip:
			if strings.TrimSpace(line) == "" {
				continue
			}
			state = stateBody
			body = append(body, line)

		case stateBody:
			body = append(body, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	switch state {
	case statePre:
		return nil, ErrNoFrontMatter
	case stateHeader:
		return nil, ErrUnterminated
	}

	doc.Header = []byte(strings.Join(header, "\n"))
	doc.Body = strings.Join(body, "\n")
	return &doc, nil
}

// EncodeDocument renders header as a JSON front matter document followed by body.
func EncodeDocument(header any, body string) ([]byte, error) {
	data, err := json.MarshalIndent(header, "", "  ")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(FormatJSON.Delimiter() + "\n")
	buf.Write(data)
	buf.WriteString("\n" + FormatJSON.Delimiter() + "\n")
	if body != "" {
		buf.WriteString("\n" + body + "\n")
	}
	return buf.Bytes(), nil
}

package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	invalidChars  = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots  = regexp.MustCompile(`\.+$`)
	repeatedSpace = regexp.MustCompile(`\s+`)
)

// WriteFile writes data to path, creating the parent directory if needed.
//
// The file is created with mode 0644 and truncated if it already exists.
// The write is skipped when ctx is already cancelled.
//
// Example:
//
//	err := WriteFile(ctx, "/out/byline.html", []byte("by <a href=\"/\">Marc</a>"))
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Part: 1/2")           // Returns "Part_ 1_2"
//	SanitizeFileName("Draft...")            // Returns "Draft"
//	SanitizeFileName("Name   with  spaces") // Returns "Name with spaces"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpace.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// FragmentPath returns the file path for the fragment of slug below dir.
//
// The slug's "/" separators become directories; each segment is sanitized.
// Empty segments (and "." or "..") are replaced with "_" so the result
// always stays below dir.
func FragmentPath(dir, slug, ext string) string {
	segments := strings.Split(slug, "/")
	for i, seg := range segments {
		seg = SanitizeFileName(seg)
		if seg == "" || seg == "." || seg == ".." {
			seg = "_"
		}
		segments[i] = seg
	}
	return filepath.Join(dir, filepath.Join(segments...)) + ext
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Package readme rewrites the machine-managed region of a README document.
//
// The region is delimited by two marker lines. Everything before the start
// marker, and the end marker with everything after it, is left byte-for-byte
// untouched.
package readme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

const (
	StartMarker = "<!-- PROJECTS_START -->"
	EndMarker   = "<!-- PROJECTS_END -->"
)

// MissingMarkerError indicates the document lacks one or both markers
type MissingMarkerError struct {
	Path    string   // Empty when splicing an in-memory document
	Missing []string // Markers that could not be located
}

func (e *MissingMarkerError) Error() string {
	where := "document"
	if e.Path != "" {
		where = e.Path
	}
	return fmt.Sprintf("%s must contain the markers %s and %s (missing: %s)",
		where, StartMarker, EndMarker, strings.Join(e.Missing, ", "))
}

// Splice replaces the text strictly between the markers with block followed
// by a single newline. The end marker is looked up after the start marker so
// a stray end marker earlier in the document cannot swallow content.
func Splice(doc, block string) (string, error) {
	startIdx := strings.Index(doc, StartMarker)

	var missing []string
	if startIdx == -1 {
		missing = append(missing, StartMarker)
	}

	endIdx := -1
	if startIdx == -1 {
		endIdx = strings.Index(doc, EndMarker)
	} else if rel := strings.Index(doc[startIdx+len(StartMarker):], EndMarker); rel != -1 {
		endIdx = startIdx + len(StartMarker) + rel
	}
	if endIdx == -1 {
		missing = append(missing, EndMarker)
	}

	if len(missing) > 0 {
		return "", &MissingMarkerError{Missing: missing}
	}

	before := doc[:startIdx+len(StartMarker)]
	after := doc[endIdx:]

	return before + block + "\n" + after, nil
}

// ContainsMarker reports whether generated content holds marker text.
// Such content would confuse the next regeneration; it is not escaped.
func ContainsMarker(block string) bool {
	return strings.Contains(block, StartMarker) || strings.Contains(block, EndMarker)
}

// UpdateFile reads the document at path, splices block into it and writes it
// back in place with its existing permissions. Nothing is written on error.
func UpdateFile(fs afero.Fs, path, block string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, err := Splice(string(data), block)
	if err != nil {
		var mErr *MissingMarkerError
		if errors.As(err, &mErr) {
			mErr.Path = path
		}
		return err
	}

	if err := afero.WriteFile(fs, path, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

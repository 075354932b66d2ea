package document

import (
	"fmt"
	"os"
	"strings"
)

// OpenError reports a document that could not be loaded.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open document %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Open loads the file at path into a document named after the path.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return New(SplitLines(string(data)), WithName(path)), nil
}

// OpenOrDefault loads the file at path, falling back to an empty document.
// The load error, if any, is returned alongside the fallback so the caller
// can report it; the returned document is never nil.
func OpenOrDefault(path string) (*Document, error) {
	if path == "" {
		return Default(), nil
	}
	doc, err := Open(path)
	if err != nil {
		return Default(), err
	}
	return doc, nil
}

// SplitLines splits text into lines on "\n", stripping a trailing "\r"
// from each line. A final line terminator does not produce an empty row.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

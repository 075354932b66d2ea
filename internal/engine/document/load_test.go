package document

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"one", []string{"one"}},
		{"one\n", []string{"one"}},
		{"one\ntwo\n", []string{"one", "two"}},
		{"one\r\ntwo\r\n", []string{"one", "two"}},
		{"one\n\nthree", []string{"one", "", "three"}},
		{"trailing\n\n", []string{"trailing", ""}},
	}

	for _, tt := range tests {
		got := SplitLines(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitLines(%q): expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\r\n\tgamma\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if doc.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", doc.Len())
	}
	if got := doc.Row(1).String(); got != "beta" {
		t.Errorf("expected CR stripped, got %q", got)
	}
	if got := doc.Row(2).Render(0, 10); got != " gamma" {
		t.Errorf("expected tab rendered as space, got %q", got)
	}
	if name, _ := doc.Name(); name != path {
		t.Errorf("expected name %q, got %q", path, name)
	}
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := Open(path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var openErr *OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("expected *OpenError, got %T", err)
	}
	if openErr.Path != path {
		t.Errorf("expected path %q, got %q", path, openErr.Path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected error to wrap fs.ErrNotExist")
	}
}

func TestOpenOrDefault(t *testing.T) {
	doc, err := OpenOrDefault("")
	if err != nil || doc == nil || !doc.IsEmpty() {
		t.Errorf("empty path should give empty document without error, got %v, %v", doc, err)
	}

	doc, err = OpenOrDefault(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("expected load error to be reported")
	}
	if doc == nil || !doc.IsEmpty() {
		t.Error("expected empty fallback document")
	}
	if _, ok := doc.Name(); ok {
		t.Error("fallback document should have no name")
	}
}

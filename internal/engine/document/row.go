package document

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Row is a single line of text.
// The grapheme-cluster count is computed once on construction.
type Row struct {
	text string
	len  int
}

// NewRow creates a row from a line of text without its line terminator.
func NewRow(text string) *Row {
	return &Row{
		text: text,
		len:  uniseg.GraphemeClusterCount(text),
	}
}

// String returns the raw row content.
func (r *Row) String() string {
	return r.text
}

// Len returns the number of grapheme clusters in the row.
func (r *Row) Len() int {
	return r.len
}

// IsEmpty returns true if the row has no grapheme clusters.
func (r *Row) IsEmpty() bool {
	return r.len == 0
}

// Render returns the visible text for grapheme columns [start, end).
// End is clamped to Len() and start to end, so an out-of-range window
// yields an empty string. Tabs are rendered as one space each.
func (r *Row) Render(start, end int) string {
	end = min(end, r.len)
	start = max(0, min(start, end))
	if start == end {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(r.text))

	idx := 0
	state := -1
	rest := r.text
	for len(rest) > 0 && idx < end {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if idx >= start {
			if cluster == "\t" {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(cluster)
			}
		}
		idx++
	}
	return sb.String()
}

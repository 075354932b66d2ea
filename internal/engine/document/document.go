package document

// TextBuffer is the read capability over a document.
// Editing support extends this interface rather than replacing it.
type TextBuffer interface {
	// Row returns the row at index, or nil if index is out of range.
	Row(index int) *Row

	// RowLen returns the grapheme length of the row at index,
	// or 0 if the row does not exist.
	RowLen(index int) int

	// Len returns the number of rows.
	Len() int

	// IsEmpty returns true if the document has no rows.
	IsEmpty() bool

	// Name returns the source name, if any.
	Name() (string, bool)
}

// Document is an ordered collection of rows in on-disk line order.
type Document struct {
	rows []*Row
	name string
}

var _ TextBuffer = (*Document)(nil)

// Option configures a Document.
type Option func(*Document)

// WithName sets the source name shown in the status line.
func WithName(name string) Option {
	return func(d *Document) {
		d.name = name
	}
}

// New creates a document from the given lines.
func New(lines []string, opts ...Option) *Document {
	d := &Document{
		rows: make([]*Row, 0, len(lines)),
	}
	for _, line := range lines {
		d.rows = append(d.rows, NewRow(line))
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Default returns an empty document with no source name.
func Default() *Document {
	return &Document{}
}

// Row returns the row at index, or nil if index is out of range.
func (d *Document) Row(index int) *Row {
	if index < 0 || index >= len(d.rows) {
		return nil
	}
	return d.rows[index]
}

// RowLen returns the grapheme length of the row at index, or 0 if absent.
func (d *Document) RowLen(index int) int {
	if row := d.Row(index); row != nil {
		return row.Len()
	}
	return 0
}

// Len returns the number of rows.
func (d *Document) Len() int {
	return len(d.rows)
}

// IsEmpty returns true if the document has no rows.
func (d *Document) IsEmpty() bool {
	return len(d.rows) == 0
}

// Name returns the source name and whether one was set.
func (d *Document) Name() (string, bool) {
	return d.name, d.name != ""
}

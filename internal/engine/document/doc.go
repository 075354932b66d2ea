// Package document provides the read-only text model of the viewer.
//
// The document package provides:
//
//   - Row: a single line of text measured in grapheme clusters
//   - Document: an ordered, immutable collection of rows with an optional
//     source name
//   - TextBuffer: the read capability the cursor and renderer depend on
//   - Open/Default: loading a document from disk or starting empty
//
// Column Model:
//
// All column indices are grapheme-cluster indices, not bytes and not
// display cells. A combining sequence such as "é" or a multi-codepoint
// emoji counts as one column:
//
//	row := document.NewRow("aéb")
//	row.Len()          // 3
//	row.Render(1, 2)   // "é"
//
// Tabs render as a single space. Display width is only computed when cells
// are placed on screen (see Row.Width).
//
// Thread Safety:
//
// Rows and documents are never mutated after construction and may be shared
// freely.
package document

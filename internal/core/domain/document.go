package domain

// DocumentRef identifies a candidate document returned by a collection
// listing. Names are not guaranteed to be unique within a collection.
type DocumentRef struct {
	// Name is the human-readable document name.
	Name string

	// ID is the provider-assigned document identifier.
	ID string

	// Revision is an opaque version marker from the listing (optional).
	// Used as a cache key component; empty disables cache lookups.
	Revision string
}

// Node is a block-level element of a structural document.
// The variant set is deliberately closed: Heading, Paragraph and Table
// are the only implementations, so a renderer can dispatch with a total
// type switch and treat anything else as a contract violation.
type Node interface {
	isNode()
}

// TextRun is the atomic unit of inline formatting. All characters in one
// run share the same style flags. Adjacent runs with identical flags are
// semantically one span; the upstream model may split runs at arbitrary
// offsets unrelated to style boundaries.
type TextRun struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
}

// SameStyle reports whether two runs carry identical style flags.
func (r TextRun) SameStyle(o TextRun) bool {
	return r.Bold == o.Bold && r.Italic == o.Italic && r.Underline == o.Underline
}

// Heading is a section heading at levels 1 through 6.
type Heading struct {
	Level int
	Runs  []TextRun
}

func (*Heading) isNode() {}

// Paragraph is a block of inline text. An empty Runs slice represents a
// blank line in the source document and still renders as an empty block.
type Paragraph struct {
	Runs []TextRun
}

func (*Paragraph) isNode() {}

// Table is a grid of rows. Rows may be ragged in the source; renderers
// pad short rows with empty cells rather than failing.
type Table struct {
	Rows []TableRow
}

func (*Table) isNode() {}

// TableRow holds the cells of one table row. Each cell is a nested
// sequence of block-level nodes, recursively.
type TableRow struct {
	Cells [][]Node
}

// StructuralDocument is a fetched document: title plus ordered body.
// Body order is the rendering order and must be preserved exactly.
type StructuralDocument struct {
	Title      string
	RevisionID string
	Body       []Node
}

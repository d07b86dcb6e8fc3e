package schema

import (
	"github.com/leengari/schema-columns/internal/domain/jsonvalue"
)

const (
	definitionsKey = "definitions"
	propertiesKey  = "properties"
)

// Document is a parsed schema file.
// It is read-only: nothing in this package mutates the tree after construction.
type Document struct {
	Path string // file the document was loaded from (empty for in-memory documents)
	root jsonvalue.Value
}

// TableSchema is one entry under "definitions"
type TableSchema struct {
	Name   string
	schema jsonvalue.Value
}

func NewDocument(root jsonvalue.Value, path string) *Document {
	return &Document{Path: path, root: root}
}

// Table looks up definitions[name].
// Returns false when "definitions" is absent, not an object, or lacks name.
func (d *Document) Table(name string) (TableSchema, bool) {
	definitions := d.root.Get(definitionsKey)
	if !d.root.Has(definitionsKey) || !definitions.Has(name) {
		return TableSchema{}, false
	}
	return TableSchema{Name: name, schema: definitions.Get(name)}, true
}

// TableNames returns every table under "definitions", sorted
func (d *Document) TableNames() []string {
	return d.root.Get(definitionsKey).SortedKeys()
}

// Columns returns the sorted property names of the table.
// A missing or non-object "properties" yields no columns.
func (ts TableSchema) Columns() []string {
	return ts.schema.Get(propertiesKey).SortedKeys()
}

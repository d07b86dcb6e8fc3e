package schema

import (
	"reflect"
	"testing"

	"github.com/leengari/schema-columns/internal/domain/jsonvalue"
)

func mustDocument(t *testing.T, raw string) *Document {
	t.Helper()
	root, err := jsonvalue.Parse([]byte(raw))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return NewDocument(root, "")
}

func TestTableLookup(t *testing.T) {
	doc := mustDocument(t, `{
		"definitions": {
			"services": {"properties": {"name": {}, "id": {}, "duration": {}}},
			"plans": {"type": "object"},
			"broken": {"properties": ["id", "name"]},
			"scalar": "not an object"
		}
	}`)

	tests := []struct {
		table   string
		found   bool
		columns []string
	}{
		{"services", true, []string{"duration", "id", "name"}},
		{"plans", true, []string{}},
		{"broken", true, []string{}},
		{"scalar", true, []string{}},
		{"transactions", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			ts, ok := doc.Table(tt.table)
			if ok != tt.found {
				t.Fatalf("expected found=%v, got %v", tt.found, ok)
			}
			if !ok {
				return
			}
			if ts.Name != tt.table {
				t.Errorf("expected name %q, got %q", tt.table, ts.Name)
			}
			if got := ts.Columns(); !reflect.DeepEqual(got, tt.columns) {
				t.Errorf("expected columns %v, got %v", tt.columns, got)
			}
		})
	}
}

func TestMissingDefinitions(t *testing.T) {
	for _, raw := range []string{`{}`, `{"definitions": null}`, `{"definitions": []}`, `[]`, `"x"`} {
		doc := mustDocument(t, raw)
		if _, ok := doc.Table("services"); ok {
			t.Errorf("%s: expected services to be missing", raw)
		}
		if names := doc.TableNames(); len(names) != 0 {
			t.Errorf("%s: expected no table names, got %v", raw, names)
		}
	}
}

func TestTableNamesSorted(t *testing.T) {
	doc := mustDocument(t, `{"definitions": {"transactions": {}, "plans": {}, "services": {}}}`)
	want := []string{"plans", "services", "transactions"}
	if got := doc.TableNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLookupDoesNotMutate(t *testing.T) {
	doc := mustDocument(t, `{"definitions": {"services": {}}}`)

	doc.Table("plans")
	ts, _ := doc.Table("services")
	ts.Columns()

	if doc.root.Get("definitions").Get("services").Has("properties") {
		t.Error("lookup must not add a properties member")
	}
	if doc.root.Get("definitions").Has("plans") {
		t.Error("lookup must not add a missing table")
	}
}

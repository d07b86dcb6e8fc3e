package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leengari/schema-columns/internal/domain/jsonvalue"
	"github.com/leengari/schema-columns/internal/domain/schema"
)

// BookingSchema mirrors the layout of a generated Postgres/PostgREST schema file
const BookingSchema = `{
  "swagger": "2.0",
  "definitions": {
    "services": {
      "required": ["id", "title"],
      "properties": {
        "title": {"type": "string"},
        "id": {"type": "integer", "format": "bigint"},
        "price": {"type": "number"},
        "duration_minutes": {"type": "integer"},
        "created_at": {"type": "string", "format": "timestamp with time zone"}
      },
      "type": "object"
    },
    "plans": {
      "properties": {
        "name": {"type": "string"},
        "features": {"type": "array", "items": {"type": "string"}},
        "interval": {"type": "string"},
        "id": {"type": "string", "format": "uuid"}
      },
      "type": "object"
    },
    "profiles": {
      "type": "object"
    }
  }
}`

// WriteSchemaFile writes content to dir/schema.json and returns the path
func WriteSchemaFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "schema.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write schema fixture: %v", err)
	}
	return path
}

// MustParseDocument parses an in-memory schema document
func MustParseDocument(t *testing.T, content string) *schema.Document {
	t.Helper()
	root, err := jsonvalue.Parse([]byte(content))
	if err != nil {
		t.Fatalf("failed to parse schema fixture: %v", err)
	}
	return schema.NewDocument(root, "")
}

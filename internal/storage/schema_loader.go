package storage

import (
	"log/slog"
	"os"

	domainerrors "github.com/leengari/schema-columns/internal/domain/errors"
	"github.com/leengari/schema-columns/internal/domain/jsonvalue"
	"github.com/leengari/schema-columns/internal/domain/schema"
)

// DefaultSchemaPath is read relative to the working directory
const DefaultSchemaPath = "schema.json"

// LoadSchemaDocument reads and decodes the schema file at path.
// The file is closed before returning, on success and on failure.
func LoadSchemaDocument(path string, logger *slog.Logger) (*schema.Document, error) {
	root, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	doc := schema.NewDocument(root, path)

	logger.Info("schema document loaded",
		slog.String("path", path),
		slog.Int("table_count", len(doc.TableNames())),
	)

	return doc, nil
}

func decodeFile(path string) (jsonvalue.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return jsonvalue.Value{}, domainerrors.NewOpenError(path, err)
	}
	defer f.Close()

	root, err := jsonvalue.Decode(f)
	if err != nil {
		return jsonvalue.Value{}, domainerrors.NewParseError(path, err)
	}
	return root, nil
}

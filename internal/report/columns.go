package report

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/leengari/schema-columns/internal/domain/schema"
)

// DefaultTables are reported, in this order, when no tables are requested
var DefaultTables = []string{"services", "plans", "transactions"}

// PrintColumns writes the sorted column names of table, or a not-found line.
// A missing table is not an error; only write failures are returned.
func PrintColumns(w io.Writer, doc *schema.Document, table string, logger *slog.Logger) error {
	ts, ok := doc.Table(table)
	if !ok {
		logger.Debug("table not found", "table", table, "path", doc.Path)
		_, err := fmt.Fprintf(w, "Table %s not found\n", table)
		return err
	}

	columns := ts.Columns()
	logger.Debug("table found", "table", table, "columns", len(columns))

	if _, err := fmt.Fprintf(w, "Columns for %s:\n", table); err != nil {
		return err
	}
	for _, col := range columns {
		if _, err := fmt.Fprintf(w, " - %s\n", col); err != nil {
			return err
		}
	}
	return nil
}

// Run reports each table in the given order
func Run(w io.Writer, doc *schema.Document, tables []string, logger *slog.Logger) error {
	for _, table := range tables {
		if err := PrintColumns(w, doc, table, logger); err != nil {
			return fmt.Errorf("failed to report table %s: %w", table, err)
		}
	}
	return nil
}

// PrintTableNames writes every table under "definitions", one per line
func PrintTableNames(w io.Writer, doc *schema.Document) error {
	for _, name := range doc.TableNames() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

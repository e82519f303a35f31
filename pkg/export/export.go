package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column names exactly as they appear in the Dexcom export header.
const (
	TimeColumn    = "Timestamp (YYYY-MM-DDThh:mm:ss)"
	GlucoseColumn = "Glucose Value (mg/dL)"
)

// Table is a raw delimited export: a header row and string-valued body rows,
// untyped and unvalidated.
type Table struct {
	Header []string
	Rows   [][]string
}

// Empty reports whether the table has no body rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// ColumnIndex returns the position of the named column, or -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// ReadFile parses a Dexcom CSV export from disk. Only structural problems
// (unreadable file, missing header, ragged rows) are errors; cell contents
// are not validated here.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f)
}

func read(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("export has no header row")
	}

	header := records[0]
	// Some exports carry a UTF-8 BOM on the first header cell.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	return &Table{Header: header, Rows: records[1:]}, nil
}

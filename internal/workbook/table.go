package workbook

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"sheet-inspect/internal/logger"
)

// errRowOverflow marks data rows wider than the header row
var errRowOverflow = errors.New("row wider than header")

// Kind classifies a parsed cell value
type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindNumber
	KindTime
)

// String returns the string representation of the cell kind
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Cell holds one cell value: the raw formatted string plus the parsed
// form. Num and Time are only meaningful for the matching Kind.
type Cell struct {
	Raw  string
	Kind Kind
	Num  float64
	Time time.Time
}

// IsEmpty reports whether the cell held no value
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// String returns the raw cell text
func (c Cell) String() string {
	return c.Raw
}

// Row is one table row; cells align 1:1 with Table.Columns
type Row []Cell

// Table is one fully loaded sheet: ordered column names from the header
// row, and the data rows below it.
type Table struct {
	Sheet   string
	Columns []string
	Rows    []Row
}

// ColumnIndex returns the index of the named column, or -1
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// ProgressFunc reports row-conversion progress during LoadTable
type ProgressFunc func(current, total int)

// LoadTable reads the named sheet fully into a Table. The first row is
// the header; data rows are padded or truncated to the header width so
// every Row aligns with Columns. progress may be nil.
func (w *Workbook) LoadTable(sheet string, progress ProgressFunc) (*Table, error) {
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return &Table{Sheet: sheet}, nil
	}

	columns := headerNames(rows[0])
	t := &Table{
		Sheet:   sheet,
		Columns: columns,
		Rows:    make([]Row, 0, len(rows)-1),
	}

	total := len(rows) - 1
	for i, raw := range rows[1:] {
		if len(raw) > len(columns) {
			cellRef, _ := excelize.CoordinatesToCellName(len(columns)+1, i+2)
			logger.LogCellIssue(sheet, cellRef, errRowOverflow,
				fmt.Sprintf("%d cells beyond the header width dropped", len(raw)-len(columns)))
		}

		row := make(Row, len(columns))
		for c := range columns {
			if c < len(raw) {
				row[c] = ParseCell(raw[c])
			}
		}
		t.Rows = append(t.Rows, row)

		if progress != nil {
			progress(i+1, total)
		}
	}

	return t, nil
}

// headerNames cleans the header row into unique column names.
// Blank headers become "Column N"; duplicates get a ".N" suffix.
func headerNames(header []string) []string {
	names := make([]string, 0, len(header))
	seen := make(map[string]int)

	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" {
			name = fmt.Sprintf("Column %d", i+1)
		}

		if n, ok := seen[name]; ok {
			base := name
			for {
				n++
				name = fmt.Sprintf("%s.%d", base, n)
				if _, taken := seen[name]; !taken {
					break
				}
			}
			seen[base] = n
			logger.Warn("Duplicate column name %q renamed to %q", base, name)
		}

		seen[name] = 0
		names = append(names, name)
	}

	return names
}

// Layouts tried when parsing cell text as a date. excelize returns the
// formatted string, so the common US short formats come first after ISO.
// All-numeric dash forms like "12-01-25" are deliberately absent: they are
// ambiguous between MM-DD-YY and DD-MM-YY, and a wrong guess would feed
// the max-date ordering. Such values stay strings.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"1/2/06",
	"2-Jan-06",
	time.RFC3339,
}

// ParseCell classifies raw cell text as empty, time, number, or string
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: KindEmpty}
	}

	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return Cell{Raw: raw, Kind: KindTime, Time: ts}
		}
	}

	if num, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Raw: raw, Kind: KindNumber, Num: num}
	}

	return Cell{Raw: raw, Kind: KindString}
}

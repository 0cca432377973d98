// Package report renders the inspection output as console text.
package report

import (
	"fmt"
	"strings"

	"sheet-inspect/internal/workbook"
)

// FormatList renders names the way the console notices expect:
// "[Summary, Daily History, Notes]"
func FormatList(names []string) string {
	return "[" + strings.Join(names, ", ") + "]"
}

// SheetNames extracts the names from per-sheet stats, in order
func SheetNames(stats []workbook.SheetStat) []string {
	names := make([]string, 0, len(stats))
	for _, s := range stats {
		names = append(names, s.Name)
	}
	return names
}

// RowTable renders rows as an aligned text table with the column names
// as the header. Empty cells render as blanks.
func RowTable(columns []string, rows []workbook.Row) string {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}
	for _, row := range rows {
		for i := range columns {
			if i < len(row) && len(row[i].Raw) > widths[i] {
				widths[i] = len(row[i].Raw)
			}
		}
	}

	var b strings.Builder

	writeRow := func(cells func(i int) string) {
		for i := range columns {
			b.WriteString("| ")
			b.WriteString(pad(cells(i), widths[i]))
			b.WriteString(" ")
		}
		b.WriteString("|\n")
	}

	writeRow(func(i int) string { return columns[i] })
	writeRow(func(i int) string { return strings.Repeat("-", widths[i]) })

	for _, row := range rows {
		r := row
		writeRow(func(i int) string {
			if i < len(r) {
				return r[i].Raw
			}
			return ""
		})
	}

	return strings.TrimRight(b.String(), "\n")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// MaxDateLine renders a max-date summary line. An all-empty column
// renders as "(none)" so the notice still prints something useful.
func MaxDateLine(label string, max workbook.Cell) string {
	value := max.Raw
	if max.IsEmpty() {
		value = "(none)"
	}
	return fmt.Sprintf("%s: %s", label, value)
}

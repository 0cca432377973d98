// Package inspect implements the heuristic sheet and column
// identification plus the row filtering that drives the report.
//
// All matching is "first match in declared order wins": the heuristics
// are deliberately order-dependent and make no attempt to rank multiple
// candidates.
package inspect

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sheet-inspect/internal/workbook"
)

// ErrSheetNotFound indicates no sheet name matched the history hints.
var ErrSheetNotFound = errors.New("history sheet not found")

// ErrColumnsNotIdentified indicates the date or ticker column could not
// be resolved by name.
var ErrColumnsNotIdentified = errors.New("could not identify date or ticker columns")

// ErrNoMatchingRows indicates the ticker filter matched nothing.
var ErrNoMatchingRows = errors.New("no matching rows")

// foldCaser lowercases names for the substring heuristics.
// A Caser is stateful, so each operation builds its own.
func foldCaser() cases.Caser {
	return cases.Lower(language.Und)
}

// SelectHistorySheet returns the first sheet whose lowercased name
// contains any of the hints. Declaration order breaks ties.
func SelectHistorySheet(names []string, hints []string) (string, error) {
	lower := foldCaser()
	for _, name := range names {
		if containsAny(lower.String(name), hints) {
			return name, nil
		}
	}
	return "", ErrSheetNotFound
}

// Columns holds the resolved date and ticker column positions
type Columns struct {
	Date       int
	Ticker     int
	DateName   string
	TickerName string
}

// ResolveColumns scans the declared columns once and assigns the first
// date-hinted column and the first ticker-hinted column. Either role
// unresolved is terminal.
func ResolveColumns(columns []string, dateHints, tickerHints []string) (Columns, error) {
	date, ticker := -1, -1

	lower := foldCaser()
	for i, name := range columns {
		folded := lower.String(name)
		if date == -1 && containsAny(folded, dateHints) {
			date = i
		}
		if ticker == -1 && containsAny(folded, tickerHints) {
			ticker = i
		}
	}

	if date == -1 || ticker == -1 {
		return Columns{}, ErrColumnsNotIdentified
	}

	return Columns{
		Date:       date,
		Ticker:     ticker,
		DateName:   columns[date],
		TickerName: columns[ticker],
	}, nil
}

func containsAny(folded string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(folded, hint) {
			return true
		}
	}
	return false
}

// FilterTicker returns the rows whose ticker cell equals ticker exactly
// (case-sensitive, no normalization), in original order.
func FilterTicker(t *workbook.Table, tickerCol int, ticker string) ([]workbook.Row, error) {
	var matched []workbook.Row
	for _, row := range t.Rows {
		if tickerCol < len(row) && row[tickerCol].Raw == ticker {
			matched = append(matched, row)
		}
	}

	if len(matched) == 0 {
		return nil, ErrNoMatchingRows
	}
	return matched, nil
}

// Head returns the first n rows (all of them if fewer than n)
func Head(rows []workbook.Row, n int) []workbook.Row {
	if len(rows) < n {
		n = len(rows)
	}
	return rows[:n]
}

// Tail returns the last n rows (all of them if fewer than n).
// Head and Tail windows may overlap for small inputs.
func Tail(rows []workbook.Row, n int) []workbook.Row {
	if len(rows) < n {
		n = len(rows)
	}
	return rows[len(rows)-n:]
}

// MaxDate returns the maximum non-empty value of the date column under
// a best-effort ordering: times compare as times, numbers as numbers,
// and anything else falls back to the raw text. mixed reports whether
// cells of differing kinds were compared; callers should surface that
// rather than trust the result.
func MaxDate(rows []workbook.Row, dateCol int) (max workbook.Cell, mixed bool) {
	found := false

	for _, row := range rows {
		if dateCol >= len(row) {
			continue
		}
		c := row[dateCol]
		if c.IsEmpty() {
			continue
		}

		if !found {
			max = c
			found = true
			continue
		}

		if c.Kind != max.Kind {
			mixed = true
		}
		if cellLess(max, c) {
			max = c
		}
	}

	return max, mixed
}

// cellLess orders two cells: typed comparison when kinds agree,
// raw-text comparison otherwise
func cellLess(a, b workbook.Cell) bool {
	if a.Kind == workbook.KindTime && b.Kind == workbook.KindTime {
		return a.Time.Before(b.Time)
	}
	if a.Kind == workbook.KindNumber && b.Kind == workbook.KindNumber {
		return a.Num < b.Num
	}
	return a.Raw < b.Raw
}

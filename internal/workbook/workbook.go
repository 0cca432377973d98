package workbook

import (
	"errors"
	"fmt"
	"os"

	"github.com/thedatashed/xlsxreader"
	"github.com/xuri/excelize/v2"
)

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// Workbook wraps an open xlsx file. Sheets are loaded on demand via
// LoadTable; the file handles are released by Close.
type Workbook struct {
	path string
	file *excelize.File
	xl   *xlsxreader.XlsxFileCloser
}

// SheetStat describes one sheet in the workbook.
type SheetStat struct {
	Name string
	Rows int
}

// Open checks that the file exists and opens it for reading.
// The xlsxreader handle is used for cheap streaming row counts;
// excelize handles the full table loads.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	return &Workbook{
		path: path,
		file: f,
		xl:   xl,
	}, nil
}

// Close releases both underlying file handles
func (w *Workbook) Close() error {
	if w.file != nil {
		w.file.Close()
	}
	if w.xl != nil {
		w.xl.Close()
	}
	return nil
}

// Path returns the path the workbook was opened from
func (w *Workbook) Path() string {
	return w.path
}

// SheetNames returns the sheet names in declared order
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Stats returns per-sheet row counts in declared order. Counts come from
// the streaming reader so no sheet is materialized here.
func (w *Workbook) Stats() []SheetStat {
	names := w.file.GetSheetList()
	stats := make([]SheetStat, 0, len(names))
	for _, name := range names {
		stats = append(stats, SheetStat{Name: name, Rows: w.rowCount(name)})
	}
	return stats
}

func (w *Workbook) rowCount(sheet string) int {
	count := 0
	for range w.xl.ReadRows(sheet) {
		count++
	}
	return count
}

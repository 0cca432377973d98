package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"

	"sheet-inspect/internal/config"
	"sheet-inspect/internal/inspect"
	"sheet-inspect/internal/logger"
	"sheet-inspect/internal/report"
	"sheet-inspect/internal/ui"
	"sheet-inspect/internal/workbook"
)

const (
	appName    = "Sheet Inspect"
	appVersion = "1.0.0"
	appDesc    = "A console tool that locates the history sheet of a portfolio workbook and prints diagnostic rows for one ticker"
)

var (
	configPath  string
	filePath    string
	ticker      string
	verbose     bool
	showVersion bool
	noPause     bool
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.StringVar(&filePath, "file", "", "Override workbook path from config")
	flag.StringVar(&filePath, "f", "", "Override workbook path (shorthand)")
	flag.StringVar(&ticker, "ticker", "", "Override target ticker from config")
	flag.StringVar(&ticker, "t", "", "Override target ticker (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&noPause, "no-pause", false, "Skip the press-Enter-to-exit prompt")
}

func main() {
	exitCode := 0

	// CRITICAL: Ensure "Press Enter to Exit" runs even on panic or error.
	// os.Exit lives inside the deferred func so the gate always precedes it.
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
			exitCode = 1
		}
		if !noPause {
			waitForEnter()
		}
		os.Exit(exitCode)
	}()

	// Run the actual application logic
	exitCode = run()
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	printBanner()

	logger.Info("Loading configuration...")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	if filePath != "" {
		cfg.Workbook.Path = filePath
	}
	if ticker != "" {
		cfg.Inspect.Ticker = ticker
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		return 1
	}

	if err := logger.Init(os.Stdout, cfg.LogFilePath(), verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if logger.IsVerbose() {
		cfg.Print()
		logger.Debug("Log file: %s", logger.GetLogFilePath())
	}

	if err := runInspection(cfg); err != nil {
		logger.Error("Inspection failed: %v", err)
		return 1
	}

	return 0
}

// runInspection walks the sequential inspection steps. The four
// diagnostic outcomes (missing file, no history sheet, unresolved
// columns, no matching rows) print their notice and return nil: they
// are terminal answers, not failures.
func runInspection(cfg *config.Config) error {
	// 1. Locate and open the workbook
	wb, err := workbook.Open(cfg.Workbook.Path)
	if errors.Is(err, workbook.ErrFileNotFound) {
		logger.Info("File not found: %s", cfg.Workbook.Path)
		return nil
	}
	if err != nil {
		return err
	}
	defer wb.Close()
	logger.Debug("Opened workbook: %s", wb.Path())

	// 2. Enumerate sheets
	stats := wb.Stats()
	logger.Info("Sheet names: %s", report.FormatList(report.SheetNames(stats)))
	for _, st := range stats {
		logger.Debug("Sheet %q: %d rows", st.Name, st.Rows)
	}

	// 3. Select the history sheet
	sheet, err := inspect.SelectHistorySheet(wb.SheetNames(), cfg.Inspect.SheetHints)
	if errors.Is(err, inspect.ErrSheetNotFound) {
		logger.Info("History sheet not found")
		return nil
	}
	logger.Info("Reading sheet: %s", sheet)

	// 4. Load the table
	bar := loadingBar(stats, sheet)
	table, err := wb.LoadTable(sheet, func(current, total int) {
		bar.SetTotal(total)
		bar.Set(current)
	})
	bar.Finish()
	if err != nil {
		return err
	}
	logger.Info("Columns: %s", report.FormatList(table.Columns))

	// 5. Resolve the Date and Ticker columns
	cols, err := inspect.ResolveColumns(table.Columns, cfg.Inspect.DateHints, cfg.Inspect.TickerHints)
	if errors.Is(err, inspect.ErrColumnsNotIdentified) {
		logger.Info("Could not identify Date or Ticker columns")
		return nil
	}
	logger.Info("Date Column: %s", cols.DateName)
	logger.Info("Ticker Column: %s", cols.TickerName)

	// 6. Filter and report
	matched, err := inspect.FilterTicker(table, cols.Ticker, cfg.Inspect.Ticker)
	if errors.Is(err, inspect.ErrNoMatchingRows) {
		logger.Info("No entries found for %s", cfg.Inspect.Ticker)
		return nil
	}

	n := cfg.Inspect.PreviewRows
	logger.Info("Found %d rows for %s", len(matched), cfg.Inspect.Ticker)
	logger.InfoClean("First %d rows:", n)
	logger.InfoClean("%s", report.RowTable(table.Columns, inspect.Head(matched, n)))
	logger.InfoClean("Last %d rows:", n)
	logger.InfoClean("%s", report.RowTable(table.Columns, inspect.Tail(matched, n)))

	maxAll, mixedAll := inspect.MaxDate(table.Rows, cols.Date)
	maxMatched, mixedMatched := inspect.MaxDate(matched, cols.Date)
	if mixedAll || mixedMatched {
		logger.Warn("Date column %q holds mixed value types; max comparison may be unreliable", cols.DateName)
	}
	logger.Info("%s", report.MaxDateLine("Max Date in File", maxAll))
	logger.Info("%s", report.MaxDateLine(fmt.Sprintf("Max Date for %s", cfg.Inspect.Ticker), maxMatched))

	return nil
}

// loadingBar seeds the bar total from the sheet stats; LoadTable
// corrects it once the header row is excluded
func loadingBar(stats []workbook.SheetStat, sheet string) *ui.ProgressBar {
	total := 0
	for _, st := range stats {
		if st.Name == sheet {
			total = st.Rows
			break
		}
	}
	if noPause {
		return ui.Disabled(ui.PhaseLoading)
	}
	return ui.NewProgressBar(ui.PhaseLoading, total)
}

// waitForEnter pauses execution and waits for user to press Enter
// This prevents the console window from closing immediately when double-clicked
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                    SHEET INSPECT v1.0.0                   ║
║      History Sheet & Ticker Diagnostics for Workbooks     ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}

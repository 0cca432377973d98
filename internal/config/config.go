package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Workbook WorkbookConfig `mapstructure:"workbook"`
	Inspect  InspectConfig  `mapstructure:"inspect"`
	Output   OutputConfig   `mapstructure:"output"`
}

// WorkbookConfig holds the input workbook settings
type WorkbookConfig struct {
	Path string `mapstructure:"path"` // Path to the xlsx file to inspect
}

// InspectConfig holds the heuristic-matching settings
type InspectConfig struct {
	Ticker      string   `mapstructure:"ticker"`       // Target ticker symbol (exact, case-sensitive)
	PreviewRows int      `mapstructure:"preview_rows"` // Rows shown in the head/tail windows
	SheetHints  []string `mapstructure:"sheet_hints"`  // Substrings identifying the history sheet
	DateHints   []string `mapstructure:"date_hints"`   // Substrings identifying the date column
	TickerHints []string `mapstructure:"ticker_hints"` // Substrings identifying the ticker column
}

// OutputConfig holds output settings (log file location)
type OutputConfig struct {
	Dir string `mapstructure:"dir"` // Directory for the log file
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses sensible defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set sensible defaults
	setDefaults(v)

	// Determine config file to use
	if configPath == "" {
		configPath = "config.yaml"
	}

	// Set config file
	v.SetConfigFile(configPath)

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		// Check if it's just a file not found error
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			// Config file not found - use defaults
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Printf("  Workbook: %s\n", v.GetString("workbook.path"))
			fmt.Println("  Output:   ./output")
			fmt.Println("==========================================")
		} else {
			// Config file found but has some other error
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Normalize paths
	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	// Create output directory if it doesn't exist
	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	// Workbook defaults - the daily portfolio history export
	v.SetDefault("workbook.path", "Checkpoint Daily Portfolio History 111825.xlsx")

	// Inspect defaults
	v.SetDefault("inspect.ticker", "IRON")
	v.SetDefault("inspect.preview_rows", 5)
	v.SetDefault("inspect.sheet_hints", []string{"history", "daily"})
	v.SetDefault("inspect.date_hints", []string{"date", "as of"})
	v.SetDefault("inspect.ticker_hints", []string{"ticker", "symbol"})

	// Output defaults
	v.SetDefault("output.dir", "./output")
}

// normalizePaths converts the output directory to an absolute path
// The workbook path is left as given so console notices echo what the user typed
func (c *Config) normalizePaths() error {
	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// LogFilePath returns the full path for the log file
func (c *Config) LogFilePath() string {
	return filepath.Join(c.Output.Dir, "sheet_inspect.log")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Workbook.Path == "" {
		return fmt.Errorf("workbook.path cannot be empty")
	}

	if c.Inspect.Ticker == "" {
		return fmt.Errorf("inspect.ticker cannot be empty")
	}

	if c.Inspect.PreviewRows < 1 {
		return fmt.Errorf("inspect.preview_rows must be at least 1")
	}

	if len(c.Inspect.SheetHints) == 0 {
		return fmt.Errorf("inspect.sheet_hints must contain at least one hint")
	}

	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Sheet Inspect Configuration ===")
	fmt.Printf("Workbook:       %s\n", c.Workbook.Path)
	fmt.Printf("Ticker:         %s\n", c.Inspect.Ticker)
	fmt.Printf("Preview Rows:   %d\n", c.Inspect.PreviewRows)
	fmt.Printf("Sheet Hints:    %v\n", c.Inspect.SheetHints)
	fmt.Printf("Date Hints:     %v\n", c.Inspect.DateHints)
	fmt.Printf("Ticker Hints:   %v\n", c.Inspect.TickerHints)
	fmt.Printf("Output Dir:     %s\n", c.Output.Dir)
	fmt.Println("===================================")
}

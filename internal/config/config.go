// Package config loads the batch runner's configuration from defaults,
// environment variables, and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel   = "info"
	DefaultOutputPath = "output.csv"
	DefaultSweepDelta = 5.0
)

// Config holds all configuration for the docket batch runner.
type Config struct {
	// DocketDirectory contains the docket PDFs to parse.
	DocketDirectory string
	// SummaryDirectory optionally contains companion court-summary PDFs.
	SummaryDirectory string
	// OutputPath is the CSV destination.
	OutputPath string
	// Report prints the daily bail-statistics message after the batch.
	Report bool
	// Workers is the parse worker count; 0 means one per CPU.
	Workers int
	// SweepDelta is the row-sweep probe step in points. It is an empirical
	// calibration parameter, exposed rather than hardcoded.
	SweepDelta float64
	// LogLevel controls verbosity (debug, info, warn, error).
	LogLevel string
	// Version of the binary, set by build flags.
	Version string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}
	return &Config{
		DocketDirectory: currentDir,
		OutputPath:      DefaultOutputPath,
		SweepDelta:      DefaultSweepDelta,
		LogLevel:        DefaultLogLevel,
		Version:         "1.0.0",
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if cfg.DocketDirectory != "" {
		if expanded, err := filepath.Abs(cfg.DocketDirectory); err == nil {
			cfg.DocketDirectory = expanded
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and
// defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("DOCKETSCAN")
	viper.AutomaticEnv()

	viper.SetDefault("dockets", cfg.DocketDirectory)
	viper.SetDefault("summaries", cfg.SummaryDirectory)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("report", cfg.Report)
	viper.SetDefault("workers", cfg.Workers)
	viper.SetDefault("delta", cfg.SweepDelta)
	viper.SetDefault("loglevel", cfg.LogLevel)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("dockets", cfg.DocketDirectory, "Directory containing docket PDFs")
	pflag.String("summaries", cfg.SummaryDirectory, "Directory containing court-summary PDFs (optional)")
	pflag.String("output", cfg.OutputPath, "CSV output path")
	pflag.Bool("report", cfg.Report, "Print the daily bail-statistics message")
	pflag.Int("workers", cfg.Workers, "Parse workers (0 = one per CPU)")
	pflag.Float64("delta", cfg.SweepDelta, "Row-sweep probe step in points")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("dockets", pflag.Lookup("dockets"))
	_ = viper.BindPFlag("summaries", pflag.Lookup("summaries"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("report", pflag.Lookup("report"))
	_ = viper.BindPFlag("workers", pflag.Lookup("workers"))
	_ = viper.BindPFlag("delta", pflag.Lookup("delta"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\ndocketscan - extract structured case data from court docket PDFs\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --dockets=/data/dockets --output=cases.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dockets=/data/dockets --summaries=/data/summaries --report\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  DOCKETSCAN_DOCKETS    Docket PDF directory\n")
		fmt.Fprintf(os.Stderr, "  DOCKETSCAN_SUMMARIES  Court-summary PDF directory\n")
		fmt.Fprintf(os.Stderr, "  DOCKETSCAN_OUTPUT     CSV output path\n")
		fmt.Fprintf(os.Stderr, "  DOCKETSCAN_WORKERS    Parse worker count\n")
		fmt.Fprintf(os.Stderr, "  DOCKETSCAN_DELTA      Row-sweep probe step\n")
		fmt.Fprintf(os.Stderr, "  DOCKETSCAN_LOGLEVEL   Log level\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.DocketDirectory = viper.GetString("dockets")
	cfg.SummaryDirectory = viper.GetString("summaries")
	cfg.OutputPath = viper.GetString("output")
	cfg.Report = viper.GetBool("report")
	cfg.Workers = viper.GetInt("workers")
	cfg.SweepDelta = viper.GetFloat64("delta")
	cfg.LogLevel = viper.GetString("loglevel")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DocketDirectory == "" {
		return errors.New("docket directory cannot be empty")
	}
	if info, err := os.Stat(c.DocketDirectory); err != nil {
		return fmt.Errorf("cannot access docket directory %s: %w", c.DocketDirectory, err)
	} else if !info.IsDir() {
		return fmt.Errorf("docket path %s is not a directory", c.DocketDirectory)
	}
	if c.SummaryDirectory != "" {
		if info, err := os.Stat(c.SummaryDirectory); err != nil {
			return fmt.Errorf("cannot access summary directory %s: %w", c.SummaryDirectory, err)
		} else if !info.IsDir() {
			return fmt.Errorf("summary path %s is not a directory", c.SummaryDirectory)
		}
	}
	if c.OutputPath == "" {
		return errors.New("output path cannot be empty")
	}
	if c.Workers < 0 {
		return errors.New("workers cannot be negative")
	}
	if c.SweepDelta <= 0 {
		return errors.New("sweep delta must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

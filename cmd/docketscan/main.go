package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/pbfscan/docketscan/internal/batch"
	"github.com/pbfscan/docketscan/internal/config"
	"github.com/pbfscan/docketscan/internal/docket"
	"github.com/pbfscan/docketscan/internal/offense"
	"github.com/pbfscan/docketscan/internal/report"
	"github.com/pbfscan/docketscan/internal/summary"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the configured level.
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	if cfg.LogLevel == "debug" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

// loadSummaries parses every court-summary PDF in dir and combines the
// resulting biography indexes. Individual parse failures are logged and
// skipped so one bad summary cannot abort the batch.
func loadSummaries(dir string, logger *log.Logger) summary.Index {
	combined := summary.Index{}
	if dir == "" {
		return combined
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Printf("Warning: cannot read summary directory %s: %v", dir, err)
		return combined
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	parser := summary.NewParser(logger)
	for _, path := range paths {
		idx, err := parser.ParseFile(path)
		if err != nil {
			logger.Printf("Warning: skipping summary %s: %v", path, err)
			continue
		}
		for docketID, bio := range idx {
			combined[docketID] = bio
		}
	}
	return combined
}

func run(cfg *config.Config) error {
	logger := log.Default()

	assembler := docket.NewAssembler(docket.AssemblerConfig{
		SweepDelta:   cfg.SweepDelta,
		OffenseTable: offense.DefaultTable(),
		Logger:       logger,
	})

	runner := batch.NewRunner(assembler, cfg.Workers, logger)
	result, err := runner.Run(cfg.DocketDirectory)
	if err != nil {
		return fmt.Errorf("batch run failed: %w", err)
	}

	summaries := loadSummaries(cfg.SummaryDirectory, logger)
	summaries.Merge(result.Records)

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer out.Close()

	if err := report.WriteCSV(out, result.Records); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	logger.Printf("Wrote %d records to %s", len(result.Records), cfg.OutputPath)

	if cfg.Report {
		fmt.Println(report.Message(result.Records))
	}
	return nil
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.LogLevel == "debug" {
		log.Printf("Starting with dockets=%s summaries=%s output=%s workers=%d delta=%.1f",
			cfg.DocketDirectory, cfg.SummaryDirectory, cfg.OutputPath, cfg.Workers, cfg.SweepDelta)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("docketscan\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}

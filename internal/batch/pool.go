// Package batch runs docket extraction across a directory of PDFs.
// Documents are independent and side-effect-free, so the batch is
// embarrassingly parallel: one worker per document, no ordering guarantee.
package batch

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/pbfscan/docketscan/internal/docket"
)

// Failure records one document that could not be parsed.
type Failure struct {
	Path string
	Err  error
}

// Result is the outcome of one batch run.
type Result struct {
	Records  []*docket.Record
	Failures []Failure
	Total    int
}

// Runner fans a directory of docket PDFs out to a worker pool.
type Runner struct {
	assembler *docket.Assembler
	workers   int
	logger    *log.Logger
}

// NewRunner builds a batch runner. workers <= 0 means one per CPU. A nil
// logger means the process default.
func NewRunner(assembler *docket.Assembler, workers int, logger *log.Logger) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{assembler: assembler, workers: workers, logger: logger}
}

type job struct {
	path string
}

type outcome struct {
	record *docket.Record
	path   string
	err    error
}

// Run parses every PDF in dir. A document that fails to parse is recorded
// as a failure and skipped; it never aborts the batch. Records are returned
// in path order so output is deterministic regardless of worker scheduling.
func (r *Runner) Run(dir string) (*Result, error) {
	paths, err := listPDFs(dir)
	if err != nil {
		return nil, err
	}

	jobs := make(chan job, len(paths))
	outcomes := make(chan outcome, len(paths))

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				record, err := r.assembler.ParseFile(j.path)
				outcomes <- outcome{record: record, path: j.path, err: err}
			}
		}()
	}

	for _, p := range paths {
		jobs <- job{path: p}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	result := &Result{Total: len(paths)}
	for o := range outcomes {
		if o.err != nil {
			r.logger.Printf("failed: %s: %v", o.path, o.err)
			result.Failures = append(result.Failures, Failure{Path: o.path, Err: o.err})
			continue
		}
		result.Records = append(result.Records, o.record)
	}

	sort.Slice(result.Records, func(i, j int) bool {
		return result.Records[i].SourcePath < result.Records[j].SourcePath
	})
	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].Path < result.Failures[j].Path
	})

	r.logger.Printf("%d/%d failed", len(result.Failures), result.Total)
	return result, nil
}

// listPDFs returns the PDF files directly inside dir, sorted by name.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

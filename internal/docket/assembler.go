package docket

import (
	"log"

	"github.com/pbfscan/docketscan/internal/bail"
	"github.com/pbfscan/docketscan/internal/layout"
	"github.com/pbfscan/docketscan/internal/offense"
	"github.com/pbfscan/docketscan/internal/pdf"
)

// Assembler orchestrates the two extraction paths, regex over normalized
// plain text and geometry over positioned fragments, into one Record per
// document.
type Assembler struct {
	sweep      layout.Sweep
	classifier *offense.Classifier
	bailParser *bail.Parser
	logger     *log.Logger
}

// AssemblerConfig configures the assembler.
type AssemblerConfig struct {
	// SweepDelta is the row-sweep probe step in points. Zero means
	// layout.DefaultDelta. This is a calibration parameter.
	SweepDelta float64
	// OffenseTable overrides the static offense category table. Nil means
	// offense.DefaultTable.
	OffenseTable map[offense.Key]string
	// Logger receives per-field warnings. Nil means the process default.
	Logger *log.Logger
}

// NewAssembler builds an assembler. The zero config is usable.
func NewAssembler(cfg AssemblerConfig) *Assembler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Assembler{
		sweep:      layout.Sweep{Delta: cfg.SweepDelta},
		classifier: offense.NewClassifier(cfg.OffenseTable, logger),
		bailParser: bail.NewParser(logger),
		logger:     logger,
	}
}

// ParseFile extracts one Record from a docket PDF.
//
// A document that cannot be opened or decoded fails the whole record. Every
// other failure is per-field: the field stays empty and a warning naming the
// field and the document is logged. The returned Record therefore always
// carries the full field set.
func (a *Assembler) ParseFile(path string) (*Record, error) {
	if err := pdf.Validate(path); err != nil {
		return nil, err
	}
	doc, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	text, err := doc.PlainText()
	if err != nil {
		return nil, err
	}
	text = Normalize(text)

	record := &Record{SourcePath: path}

	sections, secErrs := Split(text, DocketSections)
	for _, e := range secErrs {
		a.logger.Printf("warning: %s: %v", path, e)
	}

	var fieldWarnings []FieldWarning
	record.FlatFields, fieldWarnings = ExtractFlatFields(text, sections)
	for _, w := range fieldWarnings {
		a.logger.Printf("warning: %s: could not parse %s", path, w.Field)
	}

	a.extractPositioned(doc, record)
	return record, nil
}

// extractPositioned runs the geometric extraction path. Fragment extraction
// is restricted to the pages a cheap keyword search already flagged as
// relevant.
func (a *Assembler) extractPositioned(doc *pdf.Document, record *Record) {
	path := doc.Path()

	chargePages := a.findPages(doc, chargesPageMarker)
	bailPages := a.findPages(doc, bailPageMarker)
	entryPages := a.findPages(doc, entriesPageMarker)
	zipPages := a.findPages(doc, zipPageMarker)

	fragments, err := doc.Fragments(unionPages(chargePages, bailPages, entryPages, zipPages))
	if err != nil {
		a.logger.Printf("warning: %s: positioned extraction failed: %v", path, err)
		return
	}

	charges, err := extractCharges(a.sweep, fragments, chargePages)
	if err != nil {
		a.logger.Printf("warning: %s: charges: %v", path, err)
	}
	for i := range charges {
		charges[i].OffenseType = a.classifier.Classify(charges[i].Statute)
	}
	record.Charges = charges

	cols, err := extractBailColumns(fragments, bailPages)
	if err != nil {
		a.logger.Printf("warning: %s: bail info: %v", path, err)
	}
	record.Bail = a.bailParser.Parse(path, cols)

	rows, err := extractEntryRows(a.sweep, fragments, entryPages)
	if err != nil {
		a.logger.Printf("warning: %s: docket entries: %v", path, err)
	}
	record.Magistrate = bail.ResolveMagistrate(rows)

	zip, err := extractZip(fragments, zipPages)
	if err != nil {
		a.logger.Printf("warning: %s: zip: %v", path, err)
	}
	record.Zip = zip
}

func (a *Assembler) findPages(doc *pdf.Document, marker string) []int {
	pages, err := doc.FindPages(marker)
	if err != nil {
		a.logger.Printf("warning: %s: page search %q: %v", doc.Path(), marker, err)
		return nil
	}
	return pages
}

func unionPages(sets ...[]int) []int {
	seen := make(map[int]bool)
	var union []int
	for _, set := range sets {
		for _, p := range set {
			if !seen[p] {
				seen[p] = true
				union = append(union, p)
			}
		}
	}
	return union
}

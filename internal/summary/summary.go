// Package summary parses companion "court summary" PDFs for the
// biographical fields the docket sheet itself omits. One summary covers
// several docket numbers, so the parse yields a lookup keyed by docket
// number to merge into docket records.
package summary

import (
	"log"
	"regexp"
	"strings"

	"github.com/pbfscan/docketscan/internal/docket"
	"github.com/pbfscan/docketscan/internal/pdf"
)

var (
	docketNumberPattern = regexp.MustCompile(`MC-\d{2}-CR-\d{7}-\d{4}`)
	racePattern         = regexp.MustCompile(`Race:\s*(.*?)\s*Hair:`)
	sexPattern          = regexp.MustCompile(`Sex:\s*(.*?)\s*(Active|Closed|Inactive)`)
)

// Biography is the defendant description a court summary carries.
type Biography struct {
	Sex  string
	Race string
}

// Index maps docket numbers to the biography parsed from a summary batch.
type Index map[string]Biography

// Parser extracts biographies from court-summary PDFs.
type Parser struct {
	logger *log.Logger
}

// NewParser returns a summary parser. A nil logger means the process
// default.
func NewParser(logger *log.Logger) *Parser {
	if logger == nil {
		logger = log.Default()
	}
	return &Parser{logger: logger}
}

// ParseFile reads one summary PDF and indexes its biography under every
// docket number the summary mentions. Unreadable summaries fail; a summary
// with no parseable sex or race yields empty values, not an error.
func (p *Parser) ParseFile(path string) (Index, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	text, err := doc.PlainText()
	if err != nil {
		return nil, err
	}
	return p.Parse(path, text), nil
}

// Parse indexes the biography of normalized summary text.
func (p *Parser) Parse(path, text string) Index {
	text = docket.Normalize(text)

	var bio Biography
	if m := sexPattern.FindStringSubmatch(text); m != nil {
		bio.Sex = strings.TrimSpace(m[1])
	} else {
		p.logger.Printf("warning: %s: could not parse sex", path)
	}
	if m := racePattern.FindStringSubmatch(text); m != nil {
		bio.Race = strings.TrimSpace(m[1])
	} else {
		p.logger.Printf("warning: %s: could not parse race", path)
	}

	index := make(Index)
	for _, number := range docketNumberPattern.FindAllString(text, -1) {
		index[number] = bio
	}
	return index
}

// Merge copies the indexed biography into every record whose docket number
// the index knows. Records without a summary entry keep empty sex and race.
func (idx Index) Merge(records []*docket.Record) {
	for _, r := range records {
		if bio, ok := idx[r.DocketNumber]; ok {
			r.Sex = bio.Sex
			r.Race = bio.Race
		}
	}
}

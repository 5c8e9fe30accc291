// Package docket parses Philadelphia municipal court docket sheets into
// structured records. The format has no machine-readable schema; extraction
// leans on the rendering conventions of one court system and is documented
// best-effort.
package docket

import (
	"fmt"
	"regexp"
	"strings"
)

// SectionNotFoundError indicates an expected anchor pair matched nothing.
// Recoverable per field: the caller substitutes an empty section.
type SectionNotFoundError struct {
	Name string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section %q not found", e.Name)
}

// AnchorPair delimits one named section of the document text. An empty End
// means the section runs to the end of the document.
type AnchorPair struct {
	Name  string
	Start string
	End   string
}

// DocketSections is the anchor-pair ordering of a docket sheet. Sections are
// non-overlapping and contiguous in this order on a well-formed document.
var DocketSections = []AnchorPair{
	{Name: "docket", Start: "DOCKET", End: "CASE INFORMATION"},
	{Name: "caseinfo", Start: "CASE INFORMATION", End: "STATUS INFORMATION"},
	{Name: "status", Start: "STATUS INFORMATION", End: "CALENDAR EVENTS"},
	{Name: "calendar", Start: "CALENDAR EVENTS", End: "DEFENDANT INFORMATION"},
	{Name: "defendant", Start: "DEFENDANT INFORMATION", End: "CASE PARTICIPANTS"},
	{Name: "participants", Start: "CASE PARTICIPANTS", End: "BAIL INFORMATION"},
	{Name: "bailinfo", Start: "BAIL INFORMATION", End: "CHARGES"},
	{Name: "charges", Start: "CHARGES", End: "DISPOSITION SENTENCING"},
	{Name: "dispo", Start: "DISPOSITION SENTENCING/PENALTIES", End: "COMMONWEALTH INFORMATION"},
	{Name: "contactinfo", Start: "COMMONWEALTH INFORMATION", End: "ENTRIES"},
	{Name: "entries", Start: "ENTRIES", End: ""},
}

// Fixed boilerplate the court system stamps on every page. Removed verbatim
// before any anchor or field matching.
var boilerplateLiterals = []string{
	"CPCMS 9082",
	"MUNICIPAL COURT OF PHILADELPHIA COUNTY",
}

// Boilerplate that varies per print run, removed by pattern.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`Recent entries made(.*?)Section 9183`),
	regexp.MustCompile(`Printed:(\s*)\d{2}(\s*)/\d{2}/\d{4}`),
	regexp.MustCompile(`Page \d+ of \d+`),
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize flattens raw document text into the single line all anchor and
// field matching operates on: newlines become spaces, known boilerplate is
// stripped, and whitespace runs collapse to one space. Downstream regexes
// depend on this shape; change it carefully.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	for _, lit := range boilerplateLiterals {
		text = strings.ReplaceAll(text, lit, "")
	}
	for _, pat := range boilerplatePatterns {
		text = pat.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// Split extracts the named sections of normalized text. For each pair it
// takes the substring strictly between the first occurrence of Start and the
// first occurrence of End after it. Anchors are searched independently per
// section from the start of the document, not by consuming a stream.
//
// Missing pairs are reported in the returned error slice; found sections are
// present in the map regardless. The caller decides whether a missing
// section is fatal.
func Split(text string, pairs []AnchorPair) (map[string]string, []error) {
	sections := make(map[string]string, len(pairs))
	var errs []error
	for _, p := range pairs {
		start := strings.Index(text, p.Start)
		if start < 0 {
			errs = append(errs, &SectionNotFoundError{Name: p.Name})
			continue
		}
		rest := text[start+len(p.Start):]
		if p.End == "" {
			sections[p.Name] = strings.TrimSpace(rest)
			continue
		}
		end := strings.Index(rest, p.End)
		if end < 0 {
			errs = append(errs, &SectionNotFoundError{Name: p.Name})
			continue
		}
		sections[p.Name] = strings.TrimSpace(rest[:end])
	}
	return sections, errs
}

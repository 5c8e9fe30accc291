// Package layout recovers tabular structure from absolutely positioned text
// fragments. Court dockets carry no grid metadata, so everything here works
// off the geometry of labeled anchors and a printed row-index column.
package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/pbfscan/docketscan/internal/pdf"
)

// LabelNotFoundError indicates no fragment on the page contains the wanted
// label text. Recoverable: callers fall back to an alternate label or leave
// the field empty.
type LabelNotFoundError struct {
	Label string
	Page  int
}

func (e *LabelNotFoundError) Error() string {
	return fmt.Sprintf("label %q not found on page %d", e.Label, e.Page)
}

// Locate returns the bounding box of the first fragment on the given page
// whose text contains label as a substring. Fragments arrive in reading
// order, so "first" means topmost. Duplicate labels on one page are a known
// fragility; LocateNear exists for callers that have a reference anchor.
func Locate(fragments []pdf.TextFragment, page int, label string) (pdf.BBox, error) {
	for _, f := range fragments {
		if f.Page == page && strings.Contains(f.Text, label) {
			return f.BBox, nil
		}
	}
	return pdf.BBox{}, &LabelNotFoundError{Label: label, Page: page}
}

// LocateAny tries each label in order and returns the first hit. Section
// terminators appear under different names across document revisions, so
// callers pass the revisions' labels in preference order.
func LocateAny(fragments []pdf.TextFragment, page int, labels ...string) (pdf.BBox, error) {
	var lastErr error
	for _, label := range labels {
		box, err := Locate(fragments, page, label)
		if err == nil {
			return box, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = &LabelNotFoundError{Page: page}
	}
	return pdf.BBox{}, lastErr
}

// LocateNear returns the bounding box of the matching fragment whose vertical
// center is closest to the anchor's. Defensive variant for pages where the
// same label may repeat (multi-defendant dockets).
func LocateNear(fragments []pdf.TextFragment, page int, label string, anchor pdf.BBox) (pdf.BBox, error) {
	best := pdf.BBox{}
	bestDist := math.Inf(1)
	found := false
	for _, f := range fragments {
		if f.Page != page || !strings.Contains(f.Text, label) {
			continue
		}
		dist := math.Abs(f.BBox.CenterY() - anchor.CenterY())
		if dist < bestDist {
			best = f.BBox
			bestDist = dist
			found = true
		}
	}
	if !found {
		return pdf.BBox{}, &LabelNotFoundError{Label: label, Page: page}
	}
	return best, nil
}

// Text joins the text of every fragment whose center falls inside box on the
// given page, in reading order.
func Text(fragments []pdf.TextFragment, page int, box pdf.BBox) string {
	return strings.TrimSpace(strings.Join(Lines(fragments, page, box), " "))
}

// Lines returns one string per fragment whose center falls inside box on the
// given page, in reading order. Table columns are read as lines so row
// alignment can be checked downstream.
func Lines(fragments []pdf.TextFragment, page int, box pdf.BBox) []string {
	var lines []string
	for _, f := range fragments {
		if f.Page == page && box.ContainsCenter(f.BBox) {
			if t := strings.TrimSpace(f.Text); t != "" {
				lines = append(lines, t)
			}
		}
	}
	return lines
}

package pdf

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// Character runs whose baselines differ by less than this are treated as
	// the same line.
	baselineTolerance = 2.0

	// Default glyph height when the run carries no font size. Font size
	// stands in for text height, which the library does not report.
	defaultRunHeight = 12.0

	// A horizontal gap wider than this fraction of the font size becomes a
	// space in the merged text.
	wordGapFactor = 0.3

	// A horizontal gap wider than this fraction of the font size separates
	// two fragments. Table cells are drawn as separate strings with wide
	// gaps between them; keeping them as distinct fragments is what makes
	// column geometry recoverable.
	cellGapFactor = 1.5
)

// Fragments extracts positioned text fragments for the requested zero-based
// pages only. Positioned extraction is expensive, so callers pass the page
// set they already located by keyword search. The returned fragments are
// ordered top-to-bottom, then left-to-right, within each page.
//
// The library reports text at glyph-run granularity. Runs are merged back
// into cell-level fragments: same baseline, with cuts at wide horizontal
// gaps. A label like "Bail Posting Status" is one fragment; the column value
// next to it is another.
func (d *Document) Fragments(pages []int) ([]TextFragment, error) {
	seen := make(map[int]bool, len(pages))
	var fragments []TextFragment
	for _, pageIdx := range pages {
		if pageIdx < 0 || pageIdx >= d.reader.NumPage() || seen[pageIdx] {
			continue
		}
		seen[pageIdx] = true

		page := d.reader.Page(pageIdx + 1)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		fragments = append(fragments, mergeRuns(pageIdx, content.Text)...)
	}
	sort.SliceStable(fragments, func(i, j int) bool {
		if fragments[i].Page != fragments[j].Page {
			return fragments[i].Page < fragments[j].Page
		}
		if fragments[i].BBox.Y0 != fragments[j].BBox.Y0 {
			return fragments[i].BBox.Y0 > fragments[j].BBox.Y0
		}
		return fragments[i].BBox.X0 < fragments[j].BBox.X0
	})
	return fragments, nil
}

// run is one raw text run as reported by the library.
type run struct {
	x, y, w, h float64
	s          string
}

// mergeRuns groups glyph runs by baseline and merges each baseline into
// cell-level fragments.
func mergeRuns(pageIdx int, texts []pdf.Text) []TextFragment {
	if len(texts) == 0 {
		return nil
	}

	runs := make([]run, 0, len(texts))
	for _, t := range texts {
		h := t.FontSize
		if h == 0 {
			h = defaultRunHeight
		}
		runs = append(runs, run{x: t.X, y: t.Y, w: t.W, h: h, s: t.S})
	}

	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].y != runs[j].y {
			return runs[i].y > runs[j].y
		}
		return runs[i].x < runs[j].x
	})

	var fragments []TextFragment
	lineStart := 0
	for i := 1; i <= len(runs); i++ {
		if i < len(runs) && runs[lineStart].y-runs[i].y < baselineTolerance {
			continue
		}
		line := runs[lineStart:i]
		sort.SliceStable(line, func(a, b int) bool { return line[a].x < line[b].x })
		fragments = append(fragments, mergeLine(pageIdx, line)...)
		lineStart = i
	}
	return fragments
}

// mergeLine splits one baseline's runs into cell fragments at wide gaps and
// concatenates the runs of each cell, inserting spaces at word gaps.
func mergeLine(pageIdx int, line []run) []TextFragment {
	var fragments []TextFragment
	cellStart := 0
	for i := 1; i <= len(line); i++ {
		if i < len(line) {
			gap := line[i].x - (line[i-1].x + line[i-1].w)
			if gap <= cellGapFactor*line[i].h {
				continue
			}
		}
		fragments = append(fragments, mergeCell(pageIdx, line[cellStart:i]))
		cellStart = i
	}
	return fragments
}

// mergeCell concatenates contiguous runs into one fragment.
func mergeCell(pageIdx int, cell []run) TextFragment {
	var sb strings.Builder
	box := BBox{X0: cell[0].x, Y0: cell[0].y, X1: cell[0].x + cell[0].w, Y1: cell[0].y + cell[0].h}
	prevEnd := cell[0].x
	for i, r := range cell {
		if i > 0 && r.x-prevEnd > wordGapFactor*r.h && !strings.HasSuffix(sb.String(), " ") && !strings.HasPrefix(r.s, " ") {
			sb.WriteString(" ")
		}
		sb.WriteString(r.s)
		prevEnd = r.x + r.w
		if r.x < box.X0 {
			box.X0 = r.x
		}
		if r.x+r.w > box.X1 {
			box.X1 = r.x + r.w
		}
		if r.y < box.Y0 {
			box.Y0 = r.y
		}
		if r.y+r.h > box.Y1 {
			box.Y1 = r.y + r.h
		}
	}
	return TextFragment{Page: pageIdx, BBox: box, Text: sb.String()}
}

package layout

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pbfscan/docketscan/internal/pdf"
)

// DefaultDelta is the default probe step for the row sweep, in points. It is
// an empirically calibrated value, not a derived one; callers can override it
// per Sweep.
const DefaultDelta = 5.0

// RowBand is the vertical slice of a page inferred to contain exactly one
// logical table row.
type RowBand struct {
	Top    float64
	Bottom float64
}

// RowCountError indicates the printed row-index column could not determine
// the table's row layout. It aborts reconstruction for that table only; the
// caller leaves the corresponding list fields empty.
type RowCountError struct {
	Reason string
}

func (e *RowCountError) Error() string {
	return fmt.Sprintf("row count determination failed: %s", e.Reason)
}

// Sweep reconstructs row bands from the printed row-index column of a table.
type Sweep struct {
	// Delta is the probe step in points. Zero means DefaultDelta.
	Delta float64
}

// indexMark is one parsed row-index token with its vertical position.
type indexMark struct {
	value int
	cy    float64
}

// Reconstruct partitions the vertical extent [yBottom, yTop] of page into one
// RowBand per printed index value found in the index-column strip
// [indexX0, indexX1]. The returned bands run top to bottom, matching the
// printed index values sorted ascending (printed order is not trusted).
//
// An empty index strip yields zero bands and no error: that is how "no rows
// yet" is distinguished from a parse failure. Non-numeric index tokens yield
// a RowCountError.
//
// The first band's top is clamped to yTop and the last band's bottom to
// yBottom; the sweeps only discover interior boundaries. Interior bands may
// leave gaps but never overlap.
func (s Sweep) Reconstruct(fragments []pdf.TextFragment, page int, indexX0, indexX1, yBottom, yTop float64) ([]RowBand, error) {
	delta := s.Delta
	if delta <= 0 {
		delta = DefaultDelta
	}
	if yTop <= yBottom {
		return nil, &RowCountError{Reason: fmt.Sprintf("empty vertical extent [%f, %f]", yBottom, yTop)}
	}

	marks, err := collectIndexMarks(fragments, page, pdf.BBox{X0: indexX0, Y0: yBottom, X1: indexX1, Y1: yTop})
	if err != nil {
		return nil, err
	}
	n := len(marks)
	if n == 0 {
		return nil, nil
	}

	// Geometric order, top to bottom. Band i belongs to the i-th smallest
	// printed value; the values themselves only establish the count and the
	// numeric sanity of the strip.
	sort.SliceStable(marks, func(i, j int) bool { return marks[i].cy > marks[j].cy })

	tops := make([]float64, n)
	bottoms := make([]float64, n)
	for i := range tops {
		tops[i] = math.NaN()
		bottoms[i] = math.NaN()
	}

	// Bottom-edge discovery: descend from yTop. Each time another index mark
	// enters the growing strip [y, yTop], the previous probe line is the
	// bottom edge of the row above it.
	seen := 0
	for y := yTop - delta; ; y -= delta {
		if y < yBottom {
			y = yBottom
		}
		c := 0
		for _, m := range marks {
			if m.cy >= y {
				c++
			}
		}
		for j := seen + 1; j <= c; j++ {
			if j >= 2 {
				bottoms[j-2] = y + delta
			}
		}
		if c > seen {
			seen = c
		}
		if y == yBottom {
			break
		}
	}

	// Top-edge discovery: ascend from yBottom. Each time another mark enters
	// the growing strip [yBottom, y], that probe line is its row's top edge.
	seen = 0
	for y := yBottom + delta; ; y += delta {
		if y > yTop {
			y = yTop
		}
		c := 0
		for _, m := range marks {
			if m.cy <= y {
				c++
			}
		}
		for j := seen + 1; j <= c; j++ {
			tops[n-j] = y
		}
		if c > seen {
			seen = c
		}
		if y == yTop {
			break
		}
	}

	tops[0] = yTop
	bottoms[n-1] = yBottom

	bands := make([]RowBand, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(tops[i]) || math.IsNaN(bottoms[i]) {
			return nil, &RowCountError{Reason: fmt.Sprintf("sweep left row %d unresolved", i+1)}
		}
		// The two sweeps run on different probe grids, so a lower band's top
		// can land above the upper band's bottom by less than delta. Snap it
		// back so bands never overlap.
		if i > 0 && tops[i] > bottoms[i-1] {
			tops[i] = bottoms[i-1]
		}
		if bottoms[i] > tops[i] {
			return nil, &RowCountError{Reason: fmt.Sprintf("row %d inverted (bottom %f above top %f)", i+1, bottoms[i], tops[i])}
		}
		bands[i] = RowBand{Top: tops[i], Bottom: bottoms[i]}
	}
	return bands, nil
}

// ReadColumn returns the text of the column window [x0, x1] within one row
// band.
func ReadColumn(fragments []pdf.TextFragment, page int, band RowBand, x0, x1 float64) string {
	return Text(fragments, page, pdf.BBox{X0: x0, Y0: band.Bottom, X1: x1, Y1: band.Top})
}

// collectIndexMarks parses every whitespace-separated token in the index
// strip as an integer. Thousands separators are stripped ("99,999"-style
// sequence numbers); anything else non-numeric fails the whole strip.
func collectIndexMarks(fragments []pdf.TextFragment, page int, strip pdf.BBox) ([]indexMark, error) {
	var marks []indexMark
	for _, f := range fragments {
		if f.Page != page || !strip.ContainsCenter(f.BBox) {
			continue
		}
		for _, tok := range strings.Fields(f.Text) {
			v, err := strconv.Atoi(strings.ReplaceAll(tok, ",", ""))
			if err != nil {
				return nil, &RowCountError{Reason: fmt.Sprintf("non-numeric index token %q", tok)}
			}
			marks = append(marks, indexMark{value: v, cy: f.BBox.CenterY()})
		}
	}
	return marks, nil
}

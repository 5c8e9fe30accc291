package docket

import (
	"fmt"
	"regexp"

	"github.com/pbfscan/docketscan/internal/bail"
	"github.com/pbfscan/docketscan/internal/layout"
	"github.com/pbfscan/docketscan/internal/pdf"
)

// bailPageMarker finds pages carrying the bail-information table.
const bailPageMarker = "Bail Posting Status"

// Width of the posting-status column window.
const postingColumnWidth = 120.0

var bailDatePattern = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)

// extractBailColumns reads the six bail-table columns independently, with
// column windows spanning from each header's left edge to the next header's.
// Row alignment across the columns is the ledger parser's problem; here each
// column is just a line-broken read of its window.
func extractBailColumns(fragments []pdf.TextFragment, pages []int) (bail.Columns, error) {
	var cols bail.Columns
	for _, page := range pages {
		actionBox, err := layout.Locate(fragments, page, "Bail Action")
		if err != nil {
			return cols, fmt.Errorf("bail header: %w", err)
		}
		// "Date" and "Amount" appear all over a docket page; anchor the
		// lookups to the bail header row.
		dateBox, err := layout.LocateNear(fragments, page, "Date", actionBox)
		if err != nil {
			return cols, fmt.Errorf("bail date header: %w", err)
		}
		typeBox, err := layout.LocateNear(fragments, page, "Bail Type", actionBox)
		if err != nil {
			return cols, fmt.Errorf("bail type header: %w", err)
		}
		pctBox, err := layout.LocateNear(fragments, page, "Percentage", actionBox)
		if err != nil {
			return cols, fmt.Errorf("bail percentage header: %w", err)
		}
		amtBox, err := layout.LocateNear(fragments, page, "Amount", actionBox)
		if err != nil {
			return cols, fmt.Errorf("bail amount header: %w", err)
		}
		postBox, err := layout.LocateNear(fragments, page, "Bail Posting Status", actionBox)
		if err != nil {
			return cols, fmt.Errorf("bail posting header: %w", err)
		}
		termBox, err := layout.LocateAny(fragments, page, "CHARGES", "CPCMS")
		if err != nil {
			return cols, fmt.Errorf("bail terminator: %w", err)
		}

		yTop, yBottom := actionBox.Y0, termBox.Y1
		window := func(x0, x1 float64) pdf.BBox {
			return pdf.BBox{X0: x0, Y0: yBottom, X1: x1, Y1: yTop}
		}

		cols.ActionText += " " + layout.Text(fragments, page, window(actionBox.X0, dateBox.X0))
		cols.Dates = append(cols.Dates, layout.Lines(fragments, page, window(dateBox.X0, typeBox.X0))...)
		cols.Types = append(cols.Types, layout.Lines(fragments, page, window(typeBox.X0, pctBox.X0))...)
		cols.Percentages = append(cols.Percentages, layout.Lines(fragments, page, window(pctBox.X0, amtBox.X0))...)
		cols.Amounts = append(cols.Amounts, layout.Lines(fragments, page, window(amtBox.X0, postBox.X0))...)

		postingLines := layout.Lines(fragments, page, window(postBox.X0, postBox.X0+postingColumnWidth))
		cols.PostingStatus = append(cols.PostingStatus, postingLines...)
		for _, line := range postingLines {
			cols.PostingDates = append(cols.PostingDates, bailDatePattern.FindAllString(line, -1)...)
		}
	}
	return cols, nil
}

package docket

import (
	"fmt"

	"github.com/pbfscan/docketscan/internal/bail"
	"github.com/pbfscan/docketscan/internal/layout"
	"github.com/pbfscan/docketscan/internal/pdf"
)

// entriesPageMarker finds pages carrying the docket-entries table.
const entriesPageMarker = "Filed By"

// Width of the filer-name column window.
const filerColumnWidth = 200.0

// extractEntryRows reconstructs the docket-entries table into (description,
// filer) row pairs, earliest entry first, across continuation pages. The
// entries table prints its own sequence-number column, which drives the row
// band sweep.
func extractEntryRows(sweep layout.Sweep, fragments []pdf.TextFragment, pages []int) ([]bail.EntryRow, error) {
	var rows []bail.EntryRow
	for _, page := range pages {
		filedBox, err := layout.Locate(fragments, page, "Filed By")
		if err != nil {
			return rows, fmt.Errorf("entries header: %w", err)
		}
		termBox, err := layout.LocateAny(fragments, page, "CASE FINANCIAL INFORMATION", "CPCMS")
		if err != nil {
			return rows, fmt.Errorf("entries terminator: %w", err)
		}

		bands, err := sweep.Reconstruct(fragments, page, 0, seqColumnRight, termBox.Y1, filedBox.Y0)
		if err != nil {
			return rows, fmt.Errorf("entries table page %d: %w", page, err)
		}
		for _, band := range bands {
			rows = append(rows, bail.EntryRow{
				Filer:       layout.ReadColumn(fragments, page, band, filedBox.X0, filedBox.X0+filerColumnWidth),
				Description: layout.ReadColumn(fragments, page, band, seqColumnRight, filedBox.X0),
			})
		}
	}
	return rows, nil
}

package docket

import (
	"fmt"

	"github.com/pbfscan/docketscan/internal/layout"
	"github.com/pbfscan/docketscan/internal/pdf"
)

// Charge is one row of the charges table, in printed sequence order.
type Charge struct {
	Description string `json:"description"`
	Statute     string `json:"statute"`
	OffenseDate string `json:"offense_date"`
	OffenseType string `json:"offense_type"`
}

const (
	// Right edge of the printed sequence-number column. The index numbers
	// sit in the leftmost strip of the table.
	seqColumnRight = 70.0

	// Width of the offense-date column window.
	dateColumnWidth = 80.0
)

// chargesPageMarker finds pages carrying the charges table.
const chargesPageMarker = "Statute Description"

// extractCharges reconstructs the charges table rows from positioned
// fragments, across every page the table continues onto. Statute citations
// are not classified here; the assembler attaches offense categories.
func extractCharges(sweep layout.Sweep, fragments []pdf.TextFragment, pages []int) ([]Charge, error) {
	var charges []Charge
	for _, page := range pages {
		descBox, err := layout.Locate(fragments, page, "Statute Description")
		if err != nil {
			return charges, fmt.Errorf("charges header: %w", err)
		}
		statBox, err := layout.Locate(fragments, page, "Statute")
		if err != nil {
			return charges, fmt.Errorf("charges statute header: %w", err)
		}
		dateBox, err := layout.Locate(fragments, page, "Offense Dt")
		if err != nil {
			return charges, fmt.Errorf("charges date header: %w", err)
		}
		// The table runs from just below the header row down to the next
		// section header, or to the page footer on continuation pages.
		termBox, err := layout.LocateAny(fragments, page, "DISPOSITION SENTENCING", "CPCMS")
		if err != nil {
			return charges, fmt.Errorf("charges terminator: %w", err)
		}

		bands, err := sweep.Reconstruct(fragments, page, 0, seqColumnRight, termBox.Y1, descBox.Y0)
		if err != nil {
			return charges, fmt.Errorf("charges table page %d: %w", page, err)
		}
		for _, band := range bands {
			charges = append(charges, Charge{
				Description: layout.ReadColumn(fragments, page, band, descBox.X0, dateBox.X0),
				Statute:     layout.ReadColumn(fragments, page, band, statBox.X0, descBox.X0),
				OffenseDate: layout.ReadColumn(fragments, page, band, dateBox.X0, dateBox.X0+dateColumnWidth),
			})
		}
	}
	return charges, nil
}

package docket

import (
	"regexp"
	"strings"

	"github.com/pbfscan/docketscan/internal/layout"
	"github.com/pbfscan/docketscan/internal/pdf"
)

// zipPageMarker finds pages carrying the defendant's address block.
const zipPageMarker = "Zip:"

var zipPattern = regexp.MustCompile(`\b\d{5}\b`)

// extractZip reads the defendant zip code from beside the "Zip:" label.
// Depending on the renderer the value lands inside the label fragment or in
// a separate fragment to its right; both are tried.
func extractZip(fragments []pdf.TextFragment, pages []int) (string, error) {
	var lastErr error
	for _, page := range pages {
		box, err := layout.Locate(fragments, page, "Zip:")
		if err != nil {
			lastErr = err
			continue
		}
		for _, f := range fragments {
			if f.Page != page || f.BBox != box {
				continue
			}
			if _, after, ok := strings.Cut(f.Text, "Zip:"); ok {
				if z := zipPattern.FindString(after); z != "" {
					return z, nil
				}
			}
		}
		beside := pdf.BBox{X0: box.X1, Y0: box.Y0 - 2, X1: box.X1 + 100, Y1: box.Y1 + 2}
		if z := zipPattern.FindString(layout.Text(fragments, page, beside)); z != "" {
			return z, nil
		}
	}
	if lastErr != nil {
		return "", lastErr
	}
	return "", &layout.LabelNotFoundError{Label: "Zip:"}
}

package layout

import (
	"errors"
	"testing"

	"github.com/pbfscan/docketscan/internal/pdf"
)

func fragmentAt(page int, text string, x0, y0, x1, y1 float64) pdf.TextFragment {
	return pdf.TextFragment{Page: page, BBox: pdf.BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}, Text: text}
}

func TestLocate(t *testing.T) {
	fragments := []pdf.TextFragment{
		fragmentAt(0, "Bail Action", 40, 700, 100, 712),
		fragmentAt(0, "Bail Action", 40, 300, 100, 312),
		fragmentAt(1, "Bail Action", 40, 700, 100, 712),
	}

	box, err := Locate(fragments, 0, "Bail Action")
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if box.Y0 != 700 {
		t.Errorf("Expected topmost match (Y0=700), got Y0=%f", box.Y0)
	}

	_, err = Locate(fragments, 2, "Bail Action")
	var nfErr *LabelNotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("Expected LabelNotFoundError, got %v", err)
	}
	if nfErr.Label != "Bail Action" || nfErr.Page != 2 {
		t.Errorf("Error should carry label and page, got %+v", nfErr)
	}
}

func TestLocateMatchesSubstring(t *testing.T) {
	fragments := []pdf.TextFragment{
		fragmentAt(0, "DISPOSITION SENTENCING/PENALTIES", 40, 500, 300, 512),
	}

	if _, err := Locate(fragments, 0, "DISPOSITION SENTENCING"); err != nil {
		t.Errorf("Substring match should succeed: %v", err)
	}
}

func TestLocateAny(t *testing.T) {
	fragments := []pdf.TextFragment{
		fragmentAt(0, "CPCMS 9082", 40, 30, 120, 42),
	}

	box, err := LocateAny(fragments, 0, "DISPOSITION SENTENCING", "CPCMS")
	if err != nil {
		t.Fatalf("LocateAny failed: %v", err)
	}
	if box.Y0 != 30 {
		t.Errorf("Expected fallback label's box, got Y0=%f", box.Y0)
	}

	if _, err := LocateAny(fragments, 0, "CHARGES", "ENTRIES"); err == nil {
		t.Error("Expected error when no label matches")
	}
}

func TestLocateNear(t *testing.T) {
	anchor := pdf.BBox{X0: 40, Y0: 700, X1: 100, Y1: 712}
	fragments := []pdf.TextFragment{
		fragmentAt(0, "Date", 150, 702, 180, 714),
		fragmentAt(0, "Date", 150, 400, 180, 412),
	}

	box, err := LocateNear(fragments, 0, "Date", anchor)
	if err != nil {
		t.Fatalf("LocateNear failed: %v", err)
	}
	if box.Y0 != 702 {
		t.Errorf("Expected the match nearest the anchor, got Y0=%f", box.Y0)
	}
}

func TestTextAndLines(t *testing.T) {
	box := pdf.BBox{X0: 0, Y0: 0, X1: 200, Y1: 100}
	fragments := []pdf.TextFragment{
		fragmentAt(0, "Monetary", 10, 80, 60, 90),
		fragmentAt(0, "  ", 10, 60, 60, 70),
		fragmentAt(0, "ROR", 10, 40, 60, 50),
		fragmentAt(0, "outside", 300, 40, 360, 50),
		fragmentAt(1, "wrong page", 10, 40, 60, 50),
	}

	lines := Lines(fragments, 0, box)
	if len(lines) != 2 || lines[0] != "Monetary" || lines[1] != "ROR" {
		t.Errorf("Expected [Monetary ROR], got %v", lines)
	}

	if got := Text(fragments, 0, box); got != "Monetary ROR" {
		t.Errorf("Expected %q, got %q", "Monetary ROR", got)
	}
}

func TestTextCenterContainment(t *testing.T) {
	// Fragment straddles the window edge; its center decides membership.
	box := pdf.BBox{X0: 0, Y0: 50, X1: 200, Y1: 100}
	inside := fragmentAt(0, "in", 10, 48, 60, 56)
	outside := fragmentAt(0, "out", 10, 40, 60, 52)

	if got := Text([]pdf.TextFragment{inside}, 0, box); got != "in" {
		t.Errorf("Center at 52 should be contained, got %q", got)
	}
	if got := Text([]pdf.TextFragment{outside}, 0, box); got != "" {
		t.Errorf("Center at 46 should be excluded, got %q", got)
	}
}

package pdf

// BBox is an axis-aligned bounding box in PDF user space. The origin is the
// lower-left corner of the page, so Y1 is above Y0.
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// CenterX returns the horizontal midpoint of the box.
func (b BBox) CenterX() float64 {
	return (b.X0 + b.X1) / 2
}

// CenterY returns the vertical midpoint of the box.
func (b BBox) CenterY() float64 {
	return (b.Y0 + b.Y1) / 2
}

// ContainsCenter reports whether the center point of other falls inside b,
// bounds inclusive. Geometric queries throughout the layout code use center
// containment rather than full containment so that a fragment straddling a
// band edge still lands in exactly one band.
func (b BBox) ContainsCenter(other BBox) bool {
	cx, cy := other.CenterX(), other.CenterY()
	return cx >= b.X0 && cx <= b.X1 && cy >= b.Y0 && cy <= b.Y1
}

// TextFragment is one positioned line of text on a page. Fragments are
// produced once per extraction run by merging the character runs the PDF
// library reports into baseline-grouped lines, and are immutable afterwards.
type TextFragment struct {
	Page int    `json:"page"`
	BBox BBox   `json:"bbox"`
	Text string `json:"text"`
}

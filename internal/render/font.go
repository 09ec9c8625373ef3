package render

const ( // empirically determined for courier
	ptToHeight    = 100
	widthToHeight = 0.82
)

// GetFontPt converts a desired glyph height in inches to a font point
// size.
func GetFontPt(heightInches float64) float64 {
	return heightInches * ptToHeight
}

// GetFontHeight converts a font point size to glyph height in inches.
func GetFontHeight(fontPt float64) (heightInches float64) {
	return fontPt / ptToHeight
}

// GetCourierFontWidthFromHeight returns the advance width of a courier
// glyph with the given height.
func GetCourierFontWidthFromHeight(height float64) float64 {
	return widthToHeight * height
}

// GetCourierFontHeightFromWidth is the inverse.
func GetCourierFontHeightFromWidth(width float64) float64 {
	return width / widthToHeight
}

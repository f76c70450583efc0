package core

// Canvas is the drawing surface games render into.
// Coordinates are world pixels; the implementation decides how they map onto
// the physical display (terminal cells, window pixels).
type Canvas interface {
	// Clear fills the whole surface with the given color.
	Clear(c Color)

	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c Color)

	// FillCircle fills a circle centered on (cx, cy).
	FillCircle(cx, cy, radius float64, c Color)

	// FillPolygon fills a convex or concave polygon given by its vertices.
	FillPolygon(points []Point, c Color)

	// Text draws a string centered on (x, y). Size is the nominal font height
	// in world pixels; implementations may approximate it.
	Text(s string, size float64, x, y float64, c Color)
}

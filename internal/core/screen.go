package core

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Glyphs used when rasterizing canvas primitives into cells.
const (
	GlyphRect    = '█'
	GlyphCircle  = '▓'
	GlyphDot     = '●'
	GlyphPolygon = '█'
	GlyphApex    = '▲'
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D character buffer for rendering game graphics in a terminal.
// It implements Canvas by scaling world pixels down onto its cell grid, so games
// draw in world space while the platform handles the actual display.
type Screen struct {
	width      int // columns
	height     int // rows
	worldW     float64
	worldH     float64
	cells      [][]Cell
	background Color
}

var _ Canvas = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given cell dimensions that
// maps a world of worldW x worldH pixels.
func NewScreen(width, height int, worldW, worldH float64) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		worldW: worldW,
		worldH: worldH,
	}
	s.allocate()
	s.Clear(Color{})
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Background returns the color of the last Clear.
func (s *Screen) Background() Color {
	return s.background
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear(s.background)

	// Copy old content
	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with spaces and records the background color.
func (s *Screen) Clear(bg Color) {
	s.background = bg
	s.Fill(' ')
}

// Fill fills the entire screen with the given rune.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r, Color: ColorText}
		}
	}
}

// Set places a rune at the given cell.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given cell.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at cell (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, c)
		i++
	}
}

// cellW and cellH return the world size of one cell.
func (s *Screen) cellW() float64 { return s.worldW / float64(s.width) }
func (s *Screen) cellH() float64 { return s.worldH / float64(s.height) }

// ToCell converts a world position to the cell containing it.
func (s *Screen) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW())), int(math.Floor(y / s.cellH()))
}

// cellCenter returns the world position of the middle of a cell.
func (s *Screen) cellCenter(col, row int) Point {
	return Point{
		X: (float64(col) + 0.5) * s.cellW(),
		Y: (float64(row) + 0.5) * s.cellH(),
	}
}

// span returns the inclusive cell range covered by [lo, hi) in world units.
// A non-empty interval always covers at least one cell.
func span(lo, hi, size float64) (int, int) {
	first := int(math.Floor(lo / size))
	last := int(math.Ceil(hi/size)) - 1
	if last < first {
		last = first
	}
	return first, last
}

// FillRect fills every cell the rectangle touches.
func (s *Screen) FillRect(r Rect, c Color) {
	if s.width == 0 || s.height == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	c0, c1 := span(r.X, r.Right(), s.cellW())
	r0, r1 := span(r.Y, r.Bottom(), s.cellH())
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.Set(col, row, GlyphRect, c)
		}
	}
}

// FillCircle fills cells whose centers fall inside the circle. Circles smaller
// than a cell still mark the cell holding their center.
func (s *Screen) FillCircle(cx, cy, radius float64, c Color) {
	if s.width == 0 || s.height == 0 || radius <= 0 {
		return
	}
	c0, c1 := span(cx-radius, cx+radius, s.cellW())
	r0, r1 := span(cy-radius, cy+radius, s.cellH())
	painted := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			p := s.cellCenter(col, row)
			dx, dy := p.X-cx, p.Y-cy
			if dx*dx+dy*dy <= radius*radius {
				s.Set(col, row, GlyphCircle, c)
				painted = true
			}
		}
	}
	if !painted {
		col, row := s.ToCell(cx, cy)
		s.Set(col, row, GlyphDot, c)
	}
}

// FillPolygon fills cells whose centers fall inside the polygon (even-odd rule).
// Polygons smaller than a cell mark the cell holding their centroid.
func (s *Screen) FillPolygon(points []Point, c Color) {
	if s.width == 0 || s.height == 0 || len(points) < 3 {
		return
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	var sumX, sumY float64
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		sumX += p.X
		sumY += p.Y
	}

	c0, c1 := span(minX, maxX, s.cellW())
	r0, r1 := span(minY, maxY, s.cellH())
	painted := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if pointInPolygon(s.cellCenter(col, row), points) {
				s.Set(col, row, GlyphPolygon, c)
				painted = true
			}
		}
	}
	if !painted {
		n := float64(len(points))
		col, row := s.ToCell(sumX/n, sumY/n)
		s.Set(col, row, GlyphApex, c)
	}
}

// pointInPolygon reports whether p lies inside poly using ray casting.
func pointInPolygon(p Point, poly []Point) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Text draws a string centered on the cell containing (x, y).
// The size hint is ignored; terminals have a single font size.
func (s *Screen) Text(text string, _ float64, x, y float64, c Color) {
	if s.width == 0 || s.height == 0 {
		return
	}
	col, row := s.ToCell(x, y)
	col -= utf8.RuneCountInString(text) / 2
	s.DrawText(col, row, text, c)
}

// String converts the screen buffer to an unstyled string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, cell := range s.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

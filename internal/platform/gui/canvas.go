package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/arcade-shooter/internal/core"
)

// baseFontSize is the pixel height of basicfont.Face7x13 that text sizes scale from.
const baseFontSize = 13

var (
	// whiteImage is the source texture for filled polygons, created on first use.
	whiteImage *ebiten.Image

	fontFace = text.NewGoXFace(basicfont.Face7x13)
)

func whiteSource() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

// canvas draws core primitives onto an ebiten image in world pixels.
type canvas struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

var _ core.Canvas = (*canvas)(nil)

func toRGBA(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c *canvas) Clear(bg core.Color) {
	c.dst.Fill(toRGBA(bg))
}

func (c *canvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), toRGBA(col), false)
}

func (c *canvas) FillCircle(cx, cy, radius float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(radius), toRGBA(col), true)
}

func (c *canvas) FillPolygon(points []core.Point, col core.Color) {
	if len(points) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	r, g, b := float32(col.R)/0xff, float32(col.G)/0xff, float32(col.B)/0xff
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = 1
	}

	c.dst.DrawTriangles(c.vertices, c.indices, whiteSource(), &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})
}

// Text draws s centred on (x, y), scaled so its line height is size pixels.
func (c *canvas) Text(s string, size float64, x, y float64, col core.Color) {
	scale := size / baseFontSize
	w, h := text.Measure(s, fontFace, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(toRGBA(col))
	text.Draw(c.dst, s, fontFace, op)
}

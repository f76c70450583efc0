package core

import "fmt"

// Color is an opaque RGB color.
// Front-ends translate it to their native representation (hex for lipgloss,
// color.RGBA for Ebiten).
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette used by the shooter.
var (
	ColorBackground  = RGB(20, 20, 40)
	ColorPlayer      = RGB(0, 150, 255)
	ColorPlayerBoost = RGB(120, 210, 255)
	ColorEnemy       = RGB(255, 0, 0)
	ColorBullet      = RGB(255, 255, 0)
	ColorExplosion   = RGB(255, 165, 0)
	ColorPowerUp     = RGB(0, 255, 0)
	ColorText        = RGB(255, 255, 255)
	ColorDim         = RGB(140, 140, 160)
)

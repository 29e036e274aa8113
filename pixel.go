package photolab

import (
	"fmt"
	"image/color"
	"math"
)

// Pixel is an opaque RGB color with 8-bit channels.
//
// The int setters clamp to [0, 255], so filters can write raw arithmetic
// results without overflow checks.
type Pixel struct {
	R, G, B uint8
}

// Common colors.
var (
	White = Pixel{R: 255, G: 255, B: 255}
	Black = Pixel{}
)

// NewPixel creates a pixel, clamping each channel to [0, 255].
func NewPixel(r, g, b int) Pixel {
	return Pixel{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// PixelFromColor converts any color.Color to a Pixel, discarding alpha.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B}
}

// Red returns the red channel.
func (p Pixel) Red() int { return int(p.R) }

// Green returns the green channel.
func (p Pixel) Green() int { return int(p.G) }

// Blue returns the blue channel.
func (p Pixel) Blue() int { return int(p.B) }

// SetRed sets the red channel, clamped to [0, 255].
func (p *Pixel) SetRed(v int) { p.R = clampChannel(v) }

// SetGreen sets the green channel, clamped to [0, 255].
func (p *Pixel) SetGreen(v int) { p.G = clampChannel(v) }

// SetBlue sets the blue channel, clamped to [0, 255].
func (p *Pixel) SetBlue(v int) { p.B = clampChannel(v) }

// SetColor sets all three channels at once.
func (p *Pixel) SetColor(r, g, b int) {
	p.R, p.G, p.B = clampChannel(r), clampChannel(g), clampChannel(b)
}

// Distance returns the Euclidean distance between p and q in RGB space.
// It ranges from 0 (equal colors) to about 441.67 (black to white).
func (p Pixel) Distance(q Pixel) float64 {
	dr := float64(int(p.R) - int(q.R))
	dg := float64(int(p.G) - int(q.G))
	db := float64(int(p.B) - int(q.B))
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Color converts p to an opaque color.NRGBA.
func (p Pixel) Color() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.Color().RGBA()
}

func (p Pixel) String() string {
	return fmt.Sprintf("Pixel(%d, %d, %d)", p.R, p.G, p.B)
}

// clampChannel clamps v to [0, 255].
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

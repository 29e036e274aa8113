package photolab

import (
	"image"
	"image/color"
	"math/rand/v2"
)

// Picture is a rectangular grid of pixels.
//
// Pixels are stored row-major; the dimensions are fixed at construction and
// are always at least 1x1. Picture implements image.Image.
//
// Thread safety: Picture is not safe for concurrent mutation.
type Picture struct {
	width  int
	height int
	pix    []Pixel // pix[y*width+x]
	rng    *rand.Rand
}

// New creates a solid white picture.
func New(width, height int, opts ...Option) (*Picture, error) {
	return NewFilled(width, height, White, opts...)
}

// NewFilled creates a picture with every pixel set to c.
// Returns ErrInvalidDimensions if width or height is not positive.
func NewFilled(width, height int, c Pixel, opts ...Option) (*Picture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	p := newPicture(width, height, applyOptions(opts))
	for i := range p.pix {
		p.pix[i] = c
	}
	return p, nil
}

// FromPixels creates a picture from a rectangular grid of rows.
// The pixels are copied; later changes to rows do not affect the picture.
func FromPixels(rows [][]Pixel, opts ...Option) (*Picture, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyImage
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, &NonRectangularError{Row: i, Len: len(row), Want: width}
		}
	}

	p := newPicture(width, len(rows), applyOptions(opts))
	for y, row := range rows {
		copy(p.pix[y*width:(y+1)*width], row)
	}
	return p, nil
}

// FromImage creates a picture from any image, discarding alpha.
// Returns ErrEmptyImage if img has empty bounds.
func FromImage(img image.Image, opts ...Option) (*Picture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	p := newPicture(b.Dx(), b.Dy(), applyOptions(opts))

	if n, ok := img.(*image.NRGBA); ok {
		for y := range p.height {
			row := n.Pix[n.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range p.width {
				p.pix[y*p.width+x] = Pixel{R: row[x*4], G: row[x*4+1], B: row[x*4+2]}
			}
		}
		return p, nil
	}

	for y := range p.height {
		for x := range p.width {
			p.pix[y*p.width+x] = PixelFromColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return p, nil
}

func newPicture(width, height int, o pictureOptions) *Picture {
	return &Picture{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
		rng:    o.rng,
	}
}

// Clone returns a deep copy of p. The copy gets its own random source,
// seeded from p's, so its GlassFilter output does not depend on later use
// of p and vice versa.
func (p *Picture) Clone() *Picture {
	c := &Picture{
		width:  p.width,
		height: p.height,
		pix:    make([]Pixel, len(p.pix)),
		rng:    p.childRand(),
	}
	copy(c.pix, p.pix)
	return c
}

// blank returns a new white picture of the same size.
func (p *Picture) blank() *Picture {
	c := &Picture{
		width:  p.width,
		height: p.height,
		pix:    make([]Pixel, len(p.pix)),
		rng:    p.childRand(),
	}
	for i := range c.pix {
		c.pix[i] = White
	}
	return c
}

// childRand returns a new random source seeded from p's.
func (p *Picture) childRand() *rand.Rand {
	return rand.New(rand.NewPCG(p.rng.Uint64(), p.rng.Uint64()))
}

// Width returns the number of columns.
func (p *Picture) Width() int {
	return p.width
}

// Height returns the number of rows.
func (p *Picture) Height() int {
	return p.height
}

// Pixel returns the pixel at column x, row y.
func (p *Picture) Pixel(x, y int) (Pixel, error) {
	if !p.inBounds(x, y) {
		return Pixel{}, p.indexError(x, y)
	}
	return p.pix[y*p.width+x], nil
}

// SetPixel replaces the pixel at column x, row y.
func (p *Picture) SetPixel(x, y int, c Pixel) error {
	if !p.inBounds(x, y) {
		return p.indexError(x, y)
	}
	p.pix[y*p.width+x] = c
	return nil
}

// Pixels returns a copy of the grid as rows.
func (p *Picture) Pixels() [][]Pixel {
	rows := make([][]Pixel, p.height)
	for y := range rows {
		rows[y] = make([]Pixel, p.width)
		copy(rows[y], p.pix[y*p.width:(y+1)*p.width])
	}
	return rows
}

func (p *Picture) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

func (p *Picture) indexError(x, y int) error {
	return &IndexError{X: x, Y: y, Width: p.width, Height: p.height}
}

// at returns a pointer to the pixel at column x, row y without bounds checks.
func (p *Picture) at(x, y int) *Pixel {
	return &p.pix[y*p.width+x]
}

// At implements the image.Image interface.
func (p *Picture) At(x, y int) color.Color {
	if !p.inBounds(x, y) {
		return color.NRGBA{}
	}
	return p.pix[y*p.width+x].Color()
}

// Bounds implements the image.Image interface.
func (p *Picture) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Picture) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage converts the picture to an opaque *image.NRGBA.
func (p *Picture) ToImage() *image.NRGBA {
	img := image.NewNRGBA(p.Bounds())
	for i, c := range p.pix {
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = 255
	}
	return img
}

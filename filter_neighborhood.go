package photolab

// DefaultEdgeThreshold is the color distance below which EdgeDetection
// treats two neighbors as the same region.
const DefaultEdgeThreshold = 25

// EdgeDetection returns a black-on-white edge map of the picture.
//
// Each pixel not on the top, bottom or right border is compared with its
// right, upper-right and lower-right neighbors. Each neighbor's cell in the
// result is painted white when the distance is below threshold and black
// otherwise; later comparisons overwrite earlier ones. Pictures shorter
// than three rows produce an all-white map.
func (p *Picture) EdgeDetection(threshold float64) *Picture {
	out := p.blank()
	for y := 1; y < p.height-1; y++ {
		for x := 0; x < p.width-1; x++ {
			c := *p.at(x, y)
			for _, dy := range [...]int{0, -1, 1} {
				if c.Distance(*p.at(x+1, y+dy)) < threshold {
					*out.at(x+1, y+dy) = White
				} else {
					*out.at(x+1, y+dy) = Black
				}
			}
		}
	}
	return out
}

// Blur returns a box-blurred copy of the picture. Each pixel becomes the
// per-channel truncated mean of all in-bounds pixels in the
// (2*radius+1) x (2*radius+1) square centered on it. Radius 0 returns an
// unchanged copy.
func (p *Picture) Blur(radius int) (*Picture, error) {
	if radius < 0 {
		return nil, ErrInvalidRadius
	}
	out := p.Clone()
	if radius == 0 {
		return out, nil
	}
	// The window is clipped to the picture, so larger radii change nothing.
	radius = min(radius, max(p.width, p.height))

	for y := range p.height {
		y0, y1 := max(y-radius, 0), min(y+radius, p.height-1)
		for x := range p.width {
			x0, x1 := max(x-radius, 0), min(x+radius, p.width-1)

			var r, g, b, n int
			for ny := y0; ny <= y1; ny++ {
				for _, c := range p.row(ny)[x0 : x1+1] {
					r += int(c.R)
					g += int(c.G)
					b += int(c.B)
					n++
				}
			}
			*out.at(x, y) = Pixel{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
		}
	}
	return out, nil
}

// SimpleBlur blurs each pixel with its eight immediate neighbors.
func (p *Picture) SimpleBlur() *Picture {
	out, _ := p.Blur(1)
	return out
}

// GlassFilter simulates looking through a pane of textured glass. Each
// pixel of the result copies a source pixel displaced by a random offset in
// [-dist, dist] on each axis, chosen uniformly among the offsets that land
// inside the picture. Dist 0 returns an unchanged copy.
//
// The random source is the one given by WithRand, if any.
func (p *Picture) GlassFilter(dist int) (*Picture, error) {
	if dist < 0 {
		return nil, ErrInvalidRadius
	}
	out := p.Clone()
	if dist == 0 {
		return out, nil
	}

	for y := range p.height {
		for x := range p.width {
			sy := p.displace(y, dist, p.height)
			sx := p.displace(x, dist, p.width)
			*out.at(x, y) = *p.at(sx, sy)
		}
	}
	return out, nil
}

// displace returns a uniform random position in [v-dist, v+dist] clipped to
// [0, limit).
func (p *Picture) displace(v, dist, limit int) int {
	dist = min(dist, limit)
	lo, hi := max(v-dist, 0), min(v+dist, limit-1)
	return lo + p.rng.IntN(hi-lo+1)
}

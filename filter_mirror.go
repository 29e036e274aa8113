package photolab

// MirrorVertical mirrors about the vertical midline: the left half is
// copied onto the right half. An odd middle column is left unchanged.
func (p *Picture) MirrorVertical() {
	w := p.width
	for y := range p.height {
		for x := 0; x < w/2; x++ {
			*p.at(w-1-x, y) = *p.at(x, y)
		}
	}
}

// MirrorRightToLeft mirrors about the vertical midline: the right half is
// copied onto the left half.
func (p *Picture) MirrorRightToLeft() {
	w := p.width
	for y := range p.height {
		for x := 0; x < w/2; x++ {
			*p.at(x, y) = *p.at(w-1-x, y)
		}
	}
}

// MirrorHorizontal mirrors about the horizontal midline: the top half is
// copied onto the bottom half.
func (p *Picture) MirrorHorizontal() {
	h := p.height
	for y := 0; y < h/2; y++ {
		copy(p.row(h-1-y), p.row(y))
	}
}

// VerticalFlip turns the picture upside down by swapping row y with row
// height-1-y.
func (p *Picture) VerticalFlip() {
	h := p.height
	for y := 0; y < h/2; y++ {
		top, bottom := p.row(y), p.row(h-1-y)
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
}

// row returns the pixels of row y, aliasing the grid.
func (p *Picture) row(y int) []Pixel {
	return p.pix[y*p.width : (y+1)*p.width]
}

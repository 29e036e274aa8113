package photolab

// ZeroBlue sets the blue channel of every pixel to 0.
func (p *Picture) ZeroBlue() {
	for i := range p.pix {
		p.pix[i].B = 0
	}
}

// KeepOnlyBlue sets the red and green channels of every pixel to 0.
func (p *Picture) KeepOnlyBlue() {
	for i := range p.pix {
		p.pix[i].R = 0
		p.pix[i].G = 0
	}
}

// Negate inverts every channel: v becomes 255-v.
//
// The coursework version wrote the inverted green value into blue; Negate
// inverts blue itself.
func (p *Picture) Negate() {
	for i := range p.pix {
		c := &p.pix[i]
		c.R, c.G, c.B = 255-c.R, 255-c.G, 255-c.B
	}
}

// Solarize inverts every channel whose value is below threshold,
// simulating over-exposure in film processing.
func (p *Picture) Solarize(threshold int) {
	for i := range p.pix {
		c := &p.pix[i]
		c.R = solarizeChannel(c.R, threshold)
		c.G = solarizeChannel(c.G, threshold)
		c.B = solarizeChannel(c.B, threshold)
	}
}

func solarizeChannel(v uint8, threshold int) uint8 {
	if int(v) < threshold {
		return 255 - v
	}
	return v
}

// Grayscale replaces every channel with the truncated mean of red, green and blue.
//
// The coursework version averaged red three times, so its output depended
// only on the red channel.
func (p *Picture) Grayscale() {
	for i := range p.pix {
		c := &p.pix[i]
		avg := (int(c.R) + int(c.G) + int(c.B)) / 3
		c.SetColor(avg, avg, avg)
	}
}

// Tint multiplies each channel by its coefficient, truncating toward zero
// and clamping to [0, 255].
func (p *Picture) Tint(red, green, blue float64) {
	for i := range p.pix {
		c := &p.pix[i]
		c.SetColor(
			int(float64(c.R)*red),
			int(float64(c.G)*green),
			int(float64(c.B)*blue),
		)
	}
}

// Posterize reduces the number of color levels by rounding every channel
// down to a multiple of span. Span 1 leaves the picture unchanged.
func (p *Picture) Posterize(span int) error {
	if span <= 0 {
		return ErrInvalidSpan
	}
	for i := range p.pix {
		c := &p.pix[i]
		c.SetColor(
			int(c.R)/span*span,
			int(c.G)/span*span,
			int(c.B)/span*span,
		)
	}
	return nil
}

package photolab

// StegoThreshold is the red level below which a message pixel counts as ink.
const StegoThreshold = 30

// Chromakey replaces every pixel whose distance to key is below dist with
// the pixel at the same position in background.
// Returns ErrSizeMismatch if background is smaller than p.
func (p *Picture) Chromakey(background *Picture, key Pixel, dist float64) error {
	if err := p.checkCovers(background); err != nil {
		return err
	}
	for y := range p.height {
		for x := range p.width {
			c := p.at(x, y)
			if c.Distance(key) < dist {
				*c = *background.at(x, y)
			}
		}
	}
	return nil
}

// Encode hides msg in the least significant bit of the red channel.
// Every red value is made even, then made odd wherever the message pixel's
// red is below StegoThreshold.
// Returns ErrSizeMismatch if msg is smaller than p.
func (p *Picture) Encode(msg *Picture) error {
	if err := p.checkCovers(msg); err != nil {
		return err
	}
	for y := range p.height {
		for x := range p.width {
			c := p.at(x, y)
			c.R &^= 1
			if msg.at(x, y).R < StegoThreshold {
				c.R |= 1
			}
		}
	}
	return nil
}

// Decode recovers a message hidden by Encode: the result is white with
// black wherever the red channel of p is odd.
func (p *Picture) Decode() *Picture {
	out := p.blank()
	for i, c := range p.pix {
		if c.R&1 == 1 {
			out.pix[i] = Black
		}
	}
	return out
}

// checkCovers returns an error unless other is at least as large as p.
func (p *Picture) checkCovers(other *Picture) error {
	if other == nil {
		return ErrNilPicture
	}
	if other.width < p.width || other.height < p.height {
		return ErrSizeMismatch
	}
	return nil
}

package photolab

import (
	"image/color"
	"math"
	"testing"
)

func TestNewPixel(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    Pixel
	}{
		{"in range", 10, 20, 30, Pixel{R: 10, G: 20, B: 30}},
		{"clamp low", -5, -1, 0, Pixel{}},
		{"clamp high", 256, 1000, 255, White},
		{"mixed", -5, 300, 128, Pixel{R: 0, G: 255, B: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPixel(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("NewPixel(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestPixelSetters(t *testing.T) {
	var p Pixel

	p.SetRed(300)
	p.SetGreen(-20)
	p.SetBlue(77)
	if p.Red() != 255 || p.Green() != 0 || p.Blue() != 77 {
		t.Errorf("after setters = %v, want Pixel(255, 0, 77)", p)
	}

	p.SetColor(1, 2, 999)
	if p != (Pixel{R: 1, G: 2, B: 255}) {
		t.Errorf("SetColor(1, 2, 999) = %v, want Pixel(1, 2, 255)", p)
	}
}

func TestPixelDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Pixel
		want float64
	}{
		{"equal", NewPixel(5, 6, 7), NewPixel(5, 6, 7), 0},
		{"3-4-5", Black, NewPixel(3, 4, 0), 5},
		{"black to white", Black, White, math.Sqrt(3 * 255 * 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Distance(tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance = %v, want %v", got, tt.want)
			}
			if got, back := tt.a.Distance(tt.b), tt.b.Distance(tt.a); got != back {
				t.Errorf("Distance not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestPixelDistanceMonotonic(t *testing.T) {
	base := NewPixel(100, 100, 100)
	prev := 0.0
	for d := 1; d <= 155; d++ {
		got := base.Distance(NewPixel(100+d, 100, 100))
		if got <= prev {
			t.Fatalf("Distance at d=%d = %v, not greater than %v", d, got, prev)
		}
		prev = got
	}
}

func TestPixelFromColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want Pixel
	}{
		{"opaque RGBA", color.RGBA{R: 100, G: 50, B: 0, A: 255}, NewPixel(100, 50, 0)},
		{"translucent NRGBA keeps channels", color.NRGBA{R: 100, G: 50, B: 10, A: 128}, NewPixel(100, 50, 10)},
		{"gray", color.Gray{Y: 42}, NewPixel(42, 42, 42)},
		{"pixel", NewPixel(1, 2, 3), NewPixel(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelFromColor(tt.c); got != tt.want {
				t.Errorf("PixelFromColor(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestPixelColor(t *testing.T) {
	c := NewPixel(9, 8, 7).Color()
	if c != (color.NRGBA{R: 9, G: 8, B: 7, A: 255}) {
		t.Errorf("Color() = %v, want opaque {9 8 7}", c)
	}
}

func TestPixelString(t *testing.T) {
	if got := NewPixel(1, 22, 255).String(); got != "Pixel(1, 22, 255)" {
		t.Errorf("String() = %q", got)
	}
}

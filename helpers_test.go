package photolab

import (
	"math/rand/v2"
	"testing"
)

// Test helper functions shared across photolab tests.

// mustFilled creates a solid picture or fails the test.
func mustFilled(t testing.TB, w, h int, c Pixel, opts ...Option) *Picture {
	t.Helper()
	p, err := NewFilled(w, h, c, opts...)
	if err != nil {
		t.Fatalf("NewFilled(%d, %d) error = %v", w, h, err)
	}
	return p
}

// mustFromPixels creates a picture from rows or fails the test.
func mustFromPixels(t testing.TB, rows [][]Pixel, opts ...Option) *Picture {
	t.Helper()
	p, err := FromPixels(rows, opts...)
	if err != nil {
		t.Fatalf("FromPixels() error = %v", err)
	}
	return p
}

// gradient creates a picture where every pixel is unique for w, h <= 25:
// red encodes the column and green the row.
func gradient(t testing.TB, w, h int, opts ...Option) *Picture {
	t.Helper()
	rows := make([][]Pixel, h)
	for y := range rows {
		rows[y] = make([]Pixel, w)
		for x := range rows[y] {
			rows[y][x] = NewPixel(x*10, y*10, (x+y)*5)
		}
	}
	return mustFromPixels(t, rows, opts...)
}

// seeded returns a deterministic random source.
func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// reds builds a single-row picture from red channel values.
func reds(t testing.TB, values ...int) *Picture {
	t.Helper()
	row := make([]Pixel, len(values))
	for i, v := range values {
		row[i] = NewPixel(v, 0, 0)
	}
	return mustFromPixels(t, [][]Pixel{row})
}

// redsOf returns the red channels of row y.
func redsOf(p *Picture, y int) []int {
	out := make([]int, p.Width())
	for x := range out {
		out[x] = p.at(x, y).Red()
	}
	return out
}

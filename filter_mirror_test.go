package photolab

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMirrorsOnRow(t *testing.T) {
	tests := []struct {
		name  string
		apply func(p *Picture)
		in    []int
		want  []int
	}{
		{"MirrorVertical odd", (*Picture).MirrorVertical, []int{1, 2, 3, 4, 5}, []int{1, 2, 3, 2, 1}},
		{"MirrorVertical even", (*Picture).MirrorVertical, []int{1, 2, 3, 4}, []int{1, 2, 2, 1}},
		{"MirrorVertical single", (*Picture).MirrorVertical, []int{9}, []int{9}},
		{"MirrorRightToLeft odd", (*Picture).MirrorRightToLeft, []int{1, 2, 3, 4, 5}, []int{5, 4, 3, 4, 5}},
		{"MirrorRightToLeft even", (*Picture).MirrorRightToLeft, []int{1, 2, 3, 4}, []int{4, 3, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := reds(t, tt.in...)
			tt.apply(p)
			if diff := cmp.Diff(tt.want, redsOf(p, 0)); diff != "" {
				t.Errorf("reds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMirrorVerticalThenRightToLeftOnSymmetric(t *testing.T) {
	p := gradient(t, 6, 4)
	p.MirrorVertical()
	want := p.Pixels()

	p.MirrorVertical()
	p.MirrorRightToLeft()
	if diff := cmp.Diff(want, p.Pixels()); diff != "" {
		t.Errorf("symmetric picture changed (-want +got):\n%s", diff)
	}
}

func TestMirrorHorizontal(t *testing.T) {
	p := gradient(t, 3, 5)
	orig := p.Pixels()
	p.MirrorHorizontal()
	got := p.Pixels()

	want := [][]Pixel{orig[0], orig[1], orig[2], orig[1], orig[0]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MirrorHorizontal mismatch (-want +got):\n%s", diff)
	}
}

func TestVerticalFlip(t *testing.T) {
	p := gradient(t, 3, 4)
	orig := p.Pixels()
	p.VerticalFlip()

	want := [][]Pixel{orig[3], orig[2], orig[1], orig[0]}
	if diff := cmp.Diff(want, p.Pixels()); diff != "" {
		t.Errorf("VerticalFlip mismatch (-want +got):\n%s", diff)
	}
	if p.Width() != 3 || p.Height() != 4 {
		t.Errorf("size = %dx%d, want 3x4", p.Width(), p.Height())
	}
}

func TestVerticalFlipTwiceIsIdentity(t *testing.T) {
	for _, h := range []int{1, 2, 5} {
		p := gradient(t, 4, h)
		p.VerticalFlip()
		p.VerticalFlip()
		if diff := cmp.Diff(gradient(t, 4, h).Pixels(), p.Pixels()); diff != "" {
			t.Errorf("height %d: VerticalFlip twice mismatch (-want +got):\n%s", h, diff)
		}
	}
}

package photolab

import (
	"errors"
	"fmt"

	"github.com/gogpu/photolab/internal/imageio"
)

// Errors returned by Picture construction and filters.
var (
	// ErrLoad matches every *LoadError.
	ErrLoad = errors.New("photolab: cannot load picture")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("photolab: invalid dimensions")

	// ErrEmptyImage is returned when a source grid has no rows or no columns.
	ErrEmptyImage = errors.New("photolab: empty image")

	// ErrNonRectangular matches every *NonRectangularError.
	ErrNonRectangular = errors.New("photolab: rows differ in length")

	// ErrOutOfBounds matches every *IndexError.
	ErrOutOfBounds = errors.New("photolab: coordinates out of bounds")

	// ErrInvalidSpan is returned by Posterize for a non-positive span.
	ErrInvalidSpan = errors.New("photolab: posterize span must be positive")

	// ErrInvalidRadius is returned by Blur and GlassFilter for a negative radius.
	ErrInvalidRadius = errors.New("photolab: radius must not be negative")

	// ErrSizeMismatch is returned when a second picture is smaller than the receiver.
	ErrSizeMismatch = errors.New("photolab: picture sizes do not match")

	// ErrNilPicture is returned when a required picture argument is nil.
	ErrNilPicture = errors.New("photolab: nil picture")

	// ErrUnsupportedFormat is returned by Save for an unknown file extension.
	ErrUnsupportedFormat = imageio.ErrUnsupportedFormat
)

// LoadError reports a picture that could not be read or decoded.
type LoadError struct {
	Path string // empty when decoding from a reader
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "photolab: load: " + e.Err.Error()
	}
	return fmt.Sprintf("photolab: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrLoad.
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// NonRectangularError reports a source grid whose rows differ in length.
type NonRectangularError struct {
	Row  int // first offending row
	Len  int // its length
	Want int // length of row 0
}

func (e *NonRectangularError) Error() string {
	return fmt.Sprintf("photolab: pictures must be rectangles: len(rows[%d]) = %d, want %d",
		e.Row, e.Len, e.Want)
}

// Is reports whether target is ErrNonRectangular.
func (e *NonRectangularError) Is(target error) bool { return target == ErrNonRectangular }

// IndexError reports access to a pixel outside the picture.
type IndexError struct {
	X, Y          int
	Width, Height int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("photolab: no pixel at (%d, %d) in %dx%d picture", e.X, e.Y, e.Width, e.Height)
}

// Is reports whether target is ErrOutOfBounds.
func (e *IndexError) Is(target error) bool { return target == ErrOutOfBounds }

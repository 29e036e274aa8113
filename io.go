package photolab

import (
	"fmt"
	"io"

	"github.com/gogpu/photolab/internal/imageio"
)

// Load reads and decodes the image file at path.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
// Any failure is reported as a *LoadError.
func Load(path string, opts ...Option) (*Picture, error) {
	img, format, err := imageio.Load(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	p, err := FromImage(img, opts...)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	Logger().Debug("photolab: picture loaded",
		"path", path, "format", format, "width", p.width, "height", p.height)
	return p, nil
}

// Decode reads a picture from r, auto-detecting the format.
// Any failure is reported as a *LoadError with an empty Path.
func Decode(r io.Reader, opts ...Option) (*Picture, error) {
	img, format, err := imageio.Decode(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	p, err := FromImage(img, opts...)
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	Logger().Debug("photolab: picture decoded",
		"format", format, "width", p.width, "height", p.height)
	return p, nil
}

// Save writes the picture to path. The codec is chosen by extension:
// .png, .jpg/.jpeg, .gif, .bmp, .tif/.tiff.
func (p *Picture) Save(path string) error {
	if err := imageio.Save(path, p.ToImage()); err != nil {
		return fmt.Errorf("photolab: save %s: %w", path, err)
	}
	Logger().Debug("photolab: picture saved", "path", path, "width", p.width, "height", p.height)
	return nil
}

// EncodePNG writes the picture to w as PNG.
func (p *Picture) EncodePNG(w io.Writer) error {
	return imageio.Encode(w, p.ToImage(), imageio.FormatPNG)
}

// EncodeJPEG writes the picture to w as JPEG with the given quality (1-100).
func (p *Picture) EncodeJPEG(w io.Writer, quality int) error {
	return imageio.EncodeJPEG(w, p.ToImage(), quality)
}

// Package photolab provides a small pixel-level image manipulation library.
//
// # Overview
//
// A [Picture] owns a rectangular grid of opaque RGB [Pixel] values. Filters
// are methods on *Picture: color filters and mirrors change the picture in
// place, neighborhood filters return a new Picture of the same size.
// Filters compose by calling them one after another.
//
// # Quick Start
//
//	import "github.com/gogpu/photolab"
//
//	pic, err := photolab.Load("beach.jpg")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	pic.Grayscale()
//	pic.Solarize(64)
//	blurred, _ := pic.Blur(2)
//
//	if err := blurred.Save("beach_out.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Filters
//
// In place:
//   - ZeroBlue, KeepOnlyBlue, Negate, Solarize, Grayscale, Tint, Posterize
//   - MirrorVertical, MirrorRightToLeft, MirrorHorizontal, VerticalFlip
//   - Chromakey, Encode (least-significant-bit steganography)
//
// New picture:
//   - EdgeDetection, Blur, SimpleBlur, GlassFilter
//   - Decode (recover a message hidden by Encode)
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel; x grows right, y grows down.
//
// # Errors
//
// Constructors and accessors return sentinel errors ([ErrInvalidDimensions],
// [ErrEmptyImage]) or typed errors ([*LoadError], [*NonRectangularError],
// [*IndexError]) that match their sentinels with errors.Is.
package photolab

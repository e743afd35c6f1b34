package ioutils

import (
	"bytes"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// jpegQuality is used for every cover art encode.
const jpegQuality = 90

// ImageService provides image processing for podcast cover art.
//
// ImageService is used to:
//   - Convert downloaded cover art to JPEG (feeds serve PNG/GIF too)
//   - Produce a bounded thumbnail preserving aspect ratio
//
// Example usage:
//
//	svc := NewImageService()
//
//	full, _ := svc.ToJPEG(coverData)
//	small, _ := svc.Thumbnail(coverData, 1000, 1000)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// ToJPEG converts an image to JPEG format.
//
// Used for the full-size cover art so the output tree always carries a
// cover_art.jpg regardless of the format the feed served.
//
// Returns an error if the bytes do not decode as an image.
func (s *ImageService) ToJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Thumbnail produces a JPEG bounded to maxWidth x maxHeight.
//
// The aspect ratio is preserved and the image is only ever scaled down:
// an image already within the bounds is re-encoded as JPEG without
// scaling, never upscaled.
//
// The Catmull-Rom algorithm is used for high-quality downscaling.
//
// Example:
//
//	small, err := svc.Thumbnail(coverData, 1000, 1000)
//	// A 3000x1500 cover becomes 1000x500
//	// A 800x600 cover stays 800x600
func (s *ImageService) Thumbnail(data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth && height <= maxHeight {
		// Already within bounds, re-encode only.
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	// Calculate new dimensions maintaining aspect ratio
	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		// Height is the limiting factor
		width = int(float64(maxHeight) * ratio)
		height = maxHeight
	} else {
		// Width is the limiting factor
		height = int(float64(maxWidth) / ratio)
		width = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

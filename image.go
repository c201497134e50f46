package spritefont

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	// webp sources are decoded through the standard image registry,
	// bmp and tiff are registered by imaging.
	_ "golang.org/x/image/webp"
)

// LoadError is returned when the source bitmap cannot be opened or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load '%s': %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// loadImg opens and decodes the image file found at path.
func loadImg(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return img, nil
}

// decodeImg decodes an image from r. The name is only used for error reporting.
func decodeImg(r io.Reader, name string) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	return img, nil
}

// encodeImg encodes an image to a destination of type io.Writer.
// Files are encoded in the format matching their extension, anything else as PNG.
func encodeImg(w io.Writer, img image.Image) error {
	format := imaging.PNG

	if f, ok := w.(*os.File); ok {
		if ext := filepath.Ext(f.Name()); ext != "" {
			fm, err := imaging.FormatFromExtension(ext)
			if err != nil {
				return fmt.Errorf("cannot encode %s: %w", f.Name(), err)
			}
			format = fm
		}
	}
	return imaging.Encode(w, img, format)
}

// ToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
// An *image.NRGBA already anchored at the origin is returned as is.
func ToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}

	switch src := img.(type) {
	case *image.YCbCr:
		dst := image.NewNRGBA(srcBounds.Sub(srcBounds.Min))
		dstW, dstH := dst.Bounds().Dx(), dst.Bounds().Dy()

		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				srcX := srcBounds.Min.X + dstX
				srcY := srcBounds.Min.Y + dstY
				siy := src.YOffset(srcX, srcY)
				sic := src.COffset(srcX, srcY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = b
				dst.Pix[di+3] = 0xff
				di += 4
			}
		}
		return dst
	default:
		// imaging handles the remaining pixel layouts (paletted, gray, rgba, 16 bit...).
		return imaging.Clone(img)
	}
}

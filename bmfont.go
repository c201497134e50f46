package spritefont

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
)

// BMFontOptions configures the AngelCode BMFont descriptor.
type BMFontOptions struct {
	// Face is written in the info block.
	Face string
	// PageFile is the file name of the glyph page referenced by the descriptor.
	PageFile string
}

// WriteBMFont writes the font as an AngelCode BMFont text descriptor.
// The glyph page is the normalized source bitmap, so the glyph coordinates
// are the cell coordinates found in the source image.
func WriteBMFont(w io.Writer, f *Font, opts BMFontOptions) error {
	var scaleW, scaleH int
	if page := f.Bitmap(); page != nil {
		scaleW, scaleH = page.Bounds().Dx(), page.Bounds().Dy()
	}
	lineHeight := int(math.Ceil(float64(f.LineSpacing)))

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "info face=%q size=%d bold=0 italic=0 charset=\"\" unicode=1 stretchH=100 smooth=0 aa=1 padding=0,0,0,0 spacing=0,0\n",
		opts.Face, lineHeight)
	fmt.Fprintf(bw, "common lineHeight=%d base=%d scaleW=%d scaleH=%d pages=1 packed=0\n",
		lineHeight, lineHeight, scaleW, scaleH)
	fmt.Fprintf(bw, "page id=0 file=%q\n", opts.PageFile)
	fmt.Fprintf(bw, "chars count=%d\n", len(f.Glyphs))

	for _, g := range f.Glyphs {
		fmt.Fprintf(bw, "char id=%d x=%d y=%d width=%d height=%d xoffset=%d yoffset=%d xadvance=%d page=0 chnl=15\n",
			g.Character, g.Subrect.Min.X, g.Subrect.Min.Y, g.Width(), g.Height(),
			int(g.XOffset), int(g.YOffset), int(g.XAdvance),
		)
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "cannot write the font descriptor")
	}
	return nil
}

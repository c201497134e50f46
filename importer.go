package spritefont

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/disintegration/imaging"
	"github.com/esimov/spritefont/utils"
)

// ErrDefaultCharacter is returned when the requested default character has no glyph.
var ErrDefaultCharacter = errors.New("default character is not included in the font")

// FontDescription holds the import options.
type FontDescription struct {
	// FontName is the path of the source bitmap.
	FontName string
	// CharacterRegions lists the characters assigned to the glyphs, in discovery order.
	CharacterRegions []CharacterRegion
	// DefaultCharacter, when not zero, must be one of the imported characters.
	DefaultCharacter rune
}

// Font is the result of an import pass.
type Font struct {
	Glyphs           []Glyph
	LineSpacing      float32
	DefaultCharacter rune

	// Source is a copy of the bitmap taken before the alpha conversion.
	// It is only set when the importer runs with KeepSource.
	Source *image.NRGBA

	page *image.NRGBA
}

// Glyph returns the glyph assigned to ch.
func (f *Font) Glyph(ch rune) (Glyph, bool) {
	for _, g := range f.Glyphs {
		if g.Character == ch {
			return g, true
		}
	}
	return Glyph{}, false
}

// Bitmap returns the normalized bitmap the glyphs refer to.
func (f *Font) Bitmap() *image.NRGBA {
	if f.page == nil && len(f.Glyphs) > 0 {
		return f.Glyphs[0].Source
	}
	return f.page
}

// BitmapImporter extracts font glyphs from a bitmap where the glyph cells are
// separated by the marker color.
type BitmapImporter struct {
	// Logger receives progress messages. A nil Logger disables them.
	Logger *log.Logger
	// KeepSource retains an untouched copy of the bitmap in Font.Source.
	KeepSource bool
}

// Import loads the bitmap named by desc.FontName and imports its glyphs.
func (b *BitmapImporter) Import(desc FontDescription) (*Font, error) {
	src, err := loadImg(desc.FontName)
	if err != nil {
		return nil, err
	}
	return b.build(ToNRGBA(src), desc)
}

// Decode imports the glyphs of the bitmap read from r.
// desc.FontName is only used to name the source in errors.
func (b *BitmapImporter) Decode(r io.Reader, desc FontDescription) (*Font, error) {
	src, err := decodeImg(r, desc.FontName)
	if err != nil {
		return nil, err
	}
	return b.build(ToNRGBA(src), desc)
}

// build splits the normalized bitmap into glyphs.
func (b *BitmapImporter) build(img *image.NRGBA, desc FontDescription) (*Font, error) {
	view := NewPixelView(img)
	rects := FindGlyphs(view)
	view.Close()

	font := &Font{
		Glyphs:           AssignCharacters(img, rects, Flatten(desc.CharacterRegions)),
		LineSpacing:      LineSpacing(rects),
		DefaultCharacter: desc.DefaultCharacter,
		page:             img,
	}
	b.logf("%s: found %d glyphs, line spacing %v", desc.FontName, len(font.Glyphs), font.LineSpacing)

	if b.KeepSource {
		font.Source = imaging.Clone(img)
	}

	// If the bitmap doesn't already have an alpha channel, create one now.
	if IsAlphaEntirely(0xff, img) {
		b.logf("%s: opaque bitmap, converting grey levels to alpha", desc.FontName)
		ConvertGreyToAlpha(img)
	}

	if desc.DefaultCharacter != 0 {
		if _, ok := font.Glyph(desc.DefaultCharacter); !ok {
			return nil, fmt.Errorf("%w: %q", ErrDefaultCharacter, desc.DefaultCharacter)
		}
	}
	return font, nil
}

// AssignCharacters creates one glyph per rectangle. The characters are taken from
// chars in order; once they run out every further glyph gets the previous character plus one.
func AssignCharacters(src *image.NRGBA, rects []image.Rectangle, chars []rune) []Glyph {
	glyphs := make([]Glyph, 0, len(rects))

	var current rune
	for i, r := range rects {
		if i < len(chars) {
			current = chars[i]
		} else {
			current++
		}
		glyphs = append(glyphs, NewGlyph(current, src, r))
	}
	return glyphs
}

// LineSpacing returns the height of the tallest rectangle, or 0 when there is none.
func LineSpacing(rects []image.Rectangle) float32 {
	var spacing int
	for _, r := range rects {
		spacing = utils.Max(spacing, r.Dy())
	}
	return float32(spacing)
}

func (b *BitmapImporter) logf(format string, v ...any) {
	if b.Logger != nil {
		b.Logger.Printf(format, v...)
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"
	"unicode/utf8"

	"github.com/esimov/spritefont"
	"github.com/esimov/spritefont/imop"
	"github.com/esimov/spritefont/utils"
)

const helpBanner = `
┌─┐┌─┐┬─┐┬┌┬┐┌─┐┌─┐┌─┐┌┐┌┌┬┐
└─┐├─┘├┬┘│ │ ├┤ ├┤ │ ││││ │
└─┘┴  ┴└─┴ ┴ └─┘└  └─┘┘└┘ ┴

Bitmap font importer.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source image, directory or URL")
	destination = flag.String("out", pipeName, "Destination font descriptor (.fnt) or directory")
	regions     = flag.String("regions", "", "Character regions assigned to the glyphs, e.g. \"A-Z,a-z,0x30-0x39\" (default \" -~\")")
	defaultChar = flag.String("default", "", "Default character, must be part of the font")
	page        = flag.Bool("page", false, "Write the glyph page image next to the descriptor")
	debug       = flag.Bool("debug", false, "Write a debug overlay with the detected glyph cells")
	highlight   = flag.String("color", "#00c80080", "Glyph cell highlight color used by the debug overlay")
	blendMode   = flag.String("blend", imop.Multiply, "Blend mode used by the debug overlay")
	labels      = flag.Bool("labels", true, "Print the assigned characters on the debug overlay")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to import concurrently")
	verbose     = flag.Bool("v", false, "Verbose output")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	regs, err := spritefont.ParseRegions(*regions)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid -regions value: %v", utils.ErrorMessage), err)
	}

	desc := spritefont.FontDescription{CharacterRegions: regs}
	if *defaultChar != "" {
		r, size := utf8.DecodeRuneInString(*defaultChar)
		if size != len(*defaultChar) {
			log.Fatalf(utils.DecorateText("The default character should be a single character, got %q", utils.ErrorMessage), *defaultChar)
		}
		desc.DefaultCharacter = r
	}

	col, err := utils.HexToRGBA(*highlight)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid -color value: %v", utils.ErrorMessage), err)
	}

	imp := &spritefont.BitmapImporter{}
	if *verbose {
		imp.Logger = log.New(os.Stderr, "", 0)
	}

	spinnerText := utils.StatusLine("⇢ importing the font...", utils.DefaultMessage)

	op := &spritefont.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
		Page:     *page,
		Debug:    *debug,
		Overlay: spritefont.OverlayOptions{
			Color:     col,
			BlendMode: *blendMode,
			Outline:   true,
			Labels:    *labels,
		},
	}
	if !*verbose {
		op.Spinner = utils.NewSpinner(spinnerText, time.Millisecond*80, true)
	}

	if err := imp.Execute(op, desc); err != nil {
		log.Fatalf(
			utils.DecorateText("\nFailed to import the font: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}

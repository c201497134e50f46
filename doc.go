/*
Package spritefont imports bitmap fonts from specially marked images.

The source image holds the glyphs arranged in a grid, ordered from top left to
bottom right. The space between the glyphs and around the edges of the grid
must be filled with bright magenta (red=255, green=0, blue=255). Monochrome
glyphs use white for solid areas and black for transparent ones; if the image
already has an alpha channel it is used as is.

The package provides a command line interface, supporting various flags for
selecting the character regions and the generated outputs. To check the
supported commands type:

	$ spritefont --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/spritefont"
	)

	func main() {
		imp := &spritefont.BitmapImporter{}
		font, err := imp.Import(spritefont.FontDescription{
			FontName: "font.png",
			CharacterRegions: []spritefont.CharacterRegion{{Start: 'A', End: 'Z'}},
		})
		if err != nil {
			fmt.Printf("Error importing the font: %s", err.Error())
		}
		fmt.Println(len(font.Glyphs), font.LineSpacing)
	}
*/
package spritefont

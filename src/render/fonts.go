package render

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts are parsed once per process; the embedded Go fonts cover Latin and Cyrillic,
// so localized quadrant names render without system fonts.
var (
	fontsOnce   sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
	fontsErr    error
)

func loadFonts() (regular, bold *truetype.Font, err error) {
	fontsOnce.Do(func() {
		regularFont, fontsErr = truetype.Parse(goregular.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("parse regular font: %w", fontsErr)
			return
		}
		boldFont, fontsErr = truetype.Parse(gobold.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("parse bold font: %w", fontsErr)
		}
	})
	return regularFont, boldFont, fontsErr
}

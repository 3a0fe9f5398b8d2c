package sim

// Terminal cells carry their own glyphs so the font resource for the FPS
// overlay reduces to a fixed cell geometry.  Loading never fails here,
// the fallback path in the rendered sink is exercised by handing it a
// loader that errors instead.

import (
	"github.com/karlmutch/ledwave"
)

type cellFont struct {
	w int
	h int
}

func (f cellFont) Size() (w, h int) {
	return f.w, f.h
}

// LoadFont satisfies ledwave.FontLoader with a fixed 5x8 cell font.
func LoadFont(name string) (font ledwave.Font, err error) {
	return cellFont{w: 5, h: 8}, nil
}

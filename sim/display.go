package sim

// This module implements the pixel display contract on top of a terminal
// using tcell.  Every terminal cell stands in for one pixel, colors map
// from the packed 5/6/5 values onto 24 bit terminal colors.  It is coarse
// but it lets the rendered sink run anywhere a terminal does.

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/karlmutch/ledwave"
)

// TerminalDisplay adapts a tcell screen to the ledwave.Display contract.
type TerminalDisplay struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalDisplay takes over the current terminal.  Callers must invoke
// Fini before exiting so the terminal state is restored.
func NewTerminalDisplay() (d *TerminalDisplay, err error) {
	screen, errGo := tcell.NewScreen()
	if errGo != nil {
		return nil, errGo
	}
	if errGo = screen.Init(); errGo != nil {
		return nil, errGo
	}
	return newTerminalDisplay(screen), nil
}

func newTerminalDisplay(screen tcell.Screen) (d *TerminalDisplay) {
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	d = &TerminalDisplay{screen: screen}
	d.width, d.height = screen.Size()
	return d
}

// Fini releases the terminal.
func (d *TerminalDisplay) Fini() {
	d.screen.Fini()
}

// WatchKeys blocks reading terminal events and calls stop once when the
// user asks to leave with Ctrl-C, ESC or q.  Run it on its own goroutine.
func (d *TerminalDisplay) WatchKeys(stop func()) {
	for {
		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				stop()
				return
			}
		case nil:
			// Screen finalized
			return
		}
	}
}

func (d *TerminalDisplay) Size() (width, height int) {
	return d.width, d.height
}

func (d *TerminalDisplay) Clear(c ledwave.Color565) (err error) {
	style := tcell.StyleDefault.Background(cellColor(c))
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			d.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	d.screen.Show()
	return nil
}

func (d *TerminalDisplay) Block(x0, y0, x1, y1 int, pixels []byte) (err error) {
	cols := x1 - x0 + 1
	rows := y1 - y0 + 1
	if cols <= 0 || rows <= 0 || len(pixels) < cols*rows*2 {
		return fmt.Errorf("block %d,%d to %d,%d does not match a %d byte buffer", x0, y0, x1, y1, len(pixels))
	}

	i := 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c := ledwave.Color565(uint16(pixels[i])<<8 | uint16(pixels[i+1]))
			i += 2
			d.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(cellColor(c)))
		}
	}
	d.screen.Show()
	return nil
}

func (d *TerminalDisplay) FillRectangle(x, y, w, h int, c ledwave.Color565) (err error) {
	style := tcell.StyleDefault.Background(cellColor(c))
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			d.screen.SetContent(col, row, ' ', nil, style)
		}
	}
	d.screen.Show()
	return nil
}

// DrawText ignores the bitmap font geometry, a terminal draws text in its
// own cells regardless.
func (d *TerminalDisplay) DrawText(x, y int, text string, font ledwave.Font, fg, bg ledwave.Color565) (err error) {
	return d.DrawText8x8(x, y, text, fg, bg)
}

func (d *TerminalDisplay) DrawText8x8(x, y int, text string, fg, bg ledwave.Color565) (err error) {
	style := tcell.StyleDefault.Foreground(cellColor(fg)).Background(cellColor(bg))
	for i, r := range text {
		d.screen.SetContent(x+i, y, r, nil, style)
	}
	d.screen.Show()
	return nil
}

func cellColor(c ledwave.Color565) (col tcell.Color) {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

package term

import (
	fatihcolor "github.com/fatih/color"

	"github.com/moltenlabs/molten-brand/pkg/color"
	"github.com/moltenlabs/molten-brand/pkg/palette"
	"github.com/moltenlabs/molten-brand/pkg/semantic"
)

// Printer returns a fatih/color printer carrying the brand color as a
// 24-bit foreground attribute. Printers drop their escape codes on
// non-terminal writers and when NO_COLOR is set.
func Printer(c color.Color) *fatihcolor.Color {
	rgb := c.ToRGB()
	return fatihcolor.RGB(int(rgb.R), int(rgb.G), int(rgb.B))
}

// Ready-made printers for plain (non-TUI) command line output.
var (
	Molten = Printer(palette.ForgeMolten)
	Ember  = Printer(palette.ForgeEmber)
	Iron   = Printer(palette.ForgeIron)

	Success = Printer(semantic.Success)
	Warning = Printer(semantic.Warning)
	Error   = Printer(semantic.Error)
	Info    = Printer(semantic.Info)
)

// Package theme supplies the ANSI palettes used to resolve terminal output
// colors. Palettes are read-only; the session picks one by name at
// construction time.
package theme

import (
	"pkt.systems/scratchdock/internal/ansi"
	"pkt.systems/scratchdock/schema"
)

// Palette is a 16-entry ANSI color table plus the default text color used
// when no explicit color code is active.
type Palette struct {
	Name schema.ThemeName

	Black   schema.RGBColor
	Red     schema.RGBColor
	Green   schema.RGBColor
	Yellow  schema.RGBColor
	Blue    schema.RGBColor
	Magenta schema.RGBColor
	Cyan    schema.RGBColor
	White   schema.RGBColor

	BrightBlack   schema.RGBColor
	BrightRed     schema.RGBColor
	BrightGreen   schema.RGBColor
	BrightYellow  schema.RGBColor
	BrightBlue    schema.RGBColor
	BrightMagenta schema.RGBColor
	BrightCyan    schema.RGBColor
	BrightWhite   schema.RGBColor

	DefaultFG schema.RGBColor
}

// Indexed returns the palette entry for a 16-color index.
func (p Palette) Indexed(index uint8) (schema.RGBColor, bool) {
	switch index {
	case 0:
		return p.Black, true
	case 1:
		return p.Red, true
	case 2:
		return p.Green, true
	case 3:
		return p.Yellow, true
	case 4:
		return p.Blue, true
	case 5:
		return p.Magenta, true
	case 6:
		return p.Cyan, true
	case 7:
		return p.White, true
	case 8:
		return p.BrightBlack, true
	case 9:
		return p.BrightRed, true
	case 10:
		return p.BrightGreen, true
	case 11:
		return p.BrightYellow, true
	case 12:
		return p.BrightBlue, true
	case 13:
		return p.BrightMagenta, true
	case 14:
		return p.BrightCyan, true
	case 15:
		return p.BrightWhite, true
	default:
		return schema.RGBColor{}, false
	}
}

// Resolve maps a parsed color through the palette, falling back to def when
// the color is absent or out of the 16-color range.
func (p Palette) Resolve(c *ansi.Color, def schema.RGBColor) schema.RGBColor {
	if c == nil {
		return def
	}
	if c.RGB {
		return schema.RGBColor{R: c.R, G: c.G, B: c.B}
	}
	if rgb, ok := p.Indexed(c.Index); ok {
		return rgb
	}
	return def
}

var palettes = map[schema.ThemeName]Palette{
	"outrun": {
		Name:          "outrun",
		Black:         schema.RGBColor{R: 10, G: 13, B: 23},
		Red:           schema.RGBColor{R: 255, G: 107, B: 107},
		Green:         schema.RGBColor{R: 0, G: 245, B: 155},
		Yellow:        schema.RGBColor{R: 255, G: 211, B: 105},
		Blue:          schema.RGBColor{R: 110, G: 136, B: 255},
		Magenta:       schema.RGBColor{R: 255, G: 91, B: 189},
		Cyan:          schema.RGBColor{R: 0, G: 229, B: 255},
		White:         schema.RGBColor{R: 240, G: 241, B: 255},
		BrightBlack:   schema.RGBColor{R: 60, G: 79, B: 184},
		BrightRed:     schema.RGBColor{R: 255, G: 139, B: 139},
		BrightGreen:   schema.RGBColor{R: 112, G: 255, B: 189},
		BrightYellow:  schema.RGBColor{R: 255, G: 229, B: 153},
		BrightBlue:    schema.RGBColor{R: 154, G: 182, B: 255},
		BrightMagenta: schema.RGBColor{R: 255, G: 141, B: 213},
		BrightCyan:    schema.RGBColor{R: 112, G: 214, B: 255},
		BrightWhite:   schema.RGBColor{R: 255, G: 255, B: 255},
		DefaultFG:     schema.RGBColor{R: 240, G: 241, B: 255},
	},
	"gruvbox": {
		Name:          "gruvbox",
		Black:         schema.RGBColor{R: 40, G: 40, B: 40},
		Red:           schema.RGBColor{R: 204, G: 36, B: 29},
		Green:         schema.RGBColor{R: 152, G: 151, B: 26},
		Yellow:        schema.RGBColor{R: 215, G: 153, B: 33},
		Blue:          schema.RGBColor{R: 69, G: 133, B: 136},
		Magenta:       schema.RGBColor{R: 177, G: 98, B: 134},
		Cyan:          schema.RGBColor{R: 104, G: 157, B: 106},
		White:         schema.RGBColor{R: 168, G: 153, B: 132},
		BrightBlack:   schema.RGBColor{R: 146, G: 131, B: 116},
		BrightRed:     schema.RGBColor{R: 251, G: 73, B: 52},
		BrightGreen:   schema.RGBColor{R: 184, G: 187, B: 38},
		BrightYellow:  schema.RGBColor{R: 250, G: 189, B: 47},
		BrightBlue:    schema.RGBColor{R: 131, G: 165, B: 152},
		BrightMagenta: schema.RGBColor{R: 211, G: 134, B: 155},
		BrightCyan:    schema.RGBColor{R: 142, G: 192, B: 124},
		BrightWhite:   schema.RGBColor{R: 235, G: 219, B: 178},
		DefaultFG:     schema.RGBColor{R: 235, G: 219, B: 178},
	},
	"tokyo-midnight": {
		Name:          "tokyo-midnight",
		Black:         schema.RGBColor{R: 26, G: 27, B: 38},
		Red:           schema.RGBColor{R: 247, G: 118, B: 142},
		Green:         schema.RGBColor{R: 158, G: 206, B: 106},
		Yellow:        schema.RGBColor{R: 224, G: 175, B: 104},
		Blue:          schema.RGBColor{R: 122, G: 162, B: 247},
		Magenta:       schema.RGBColor{R: 187, G: 154, B: 247},
		Cyan:          schema.RGBColor{R: 125, G: 207, B: 255},
		White:         schema.RGBColor{R: 192, G: 202, B: 245},
		BrightBlack:   schema.RGBColor{R: 65, G: 72, B: 104},
		BrightRed:     schema.RGBColor{R: 255, G: 122, B: 147},
		BrightGreen:   schema.RGBColor{R: 185, G: 242, B: 124},
		BrightYellow:  schema.RGBColor{R: 255, G: 158, B: 100},
		BrightBlue:    schema.RGBColor{R: 125, G: 166, B: 255},
		BrightMagenta: schema.RGBColor{R: 157, G: 124, B: 216},
		BrightCyan:    schema.RGBColor{R: 180, G: 249, B: 248},
		BrightWhite:   schema.RGBColor{R: 169, G: 177, B: 214},
		DefaultFG:     schema.RGBColor{R: 192, G: 202, B: 245},
	},
}

// ForName returns the palette for a theme name, falling back to the default
// theme when the name is unknown.
func ForName(name schema.ThemeName) Palette {
	if name == "" {
		name = schema.DefaultTheme
	}
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[schema.DefaultTheme]
}

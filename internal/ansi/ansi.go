// Package ansi parses SGR escape sequences into styled runs over the
// escape-free plain text. Cursor movement, erase, and OSC sequences are
// consumed and dropped; only rendition state is tracked.
package ansi

import "strings"

// Color is a semantic terminal color: a 16-color palette index or a direct
// 24-bit value. Palette resolution happens in the caller.
type Color struct {
	RGB     bool
	Index   uint8
	R, G, B uint8
}

// Indexed returns a palette-indexed color.
func Indexed(index uint8) Color {
	return Color{Index: index}
}

// TrueColor returns a direct 24-bit color.
func TrueColor(r, g, b uint8) Color {
	return Color{RGB: true, R: r, G: g, B: b}
}

// Style is the rendition state active over a run. Nil FG/BG mean "no
// explicit color", resolved to the caller's defaults.
type Style struct {
	FG            *Color
	BG            *Color
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

func (s Style) equal(o Style) bool {
	return colorEqual(s.FG, o.FG) && colorEqual(s.BG, o.BG) &&
		s.Bold == o.Bold && s.Italic == o.Italic &&
		s.Underline == o.Underline && s.Strikethrough == o.Strikethrough
}

func colorEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Run is a contiguous byte range of the plain text with one style.
type Run struct {
	Start int
	End   int
	Style Style
}

// Parsed is the result of parsing one raw stream.
type Parsed struct {
	Plain string
	Runs  []Run
}

type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateCSI
	stateOSC
	stateOSCEscape
)

// Parse walks raw once, producing the plain text and the styled runs
// covering it. Parsing is pure: identical input yields identical output.
func Parse(raw string) Parsed {
	var plain strings.Builder
	plain.Grow(len(raw))

	var runs []Run
	var current Style
	runStart := 0

	closeRun := func(next Style) {
		end := plain.Len()
		if end > runStart {
			if n := len(runs); n > 0 && runs[n-1].End == runStart && runs[n-1].Style.equal(current) {
				runs[n-1].End = end
			} else {
				runs = append(runs, Run{Start: runStart, End: end, Style: current})
			}
			runStart = end
		}
		current = next
	}

	state := stateGround
	var params []byte
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		switch state {
		case stateGround:
			if b == 0x1b {
				state = stateEscape
				continue
			}
			plain.WriteByte(b)
		case stateEscape:
			switch b {
			case '[':
				state = stateCSI
				params = params[:0]
			case ']':
				state = stateOSC
			default:
				state = stateGround
			}
		case stateCSI:
			switch {
			case b >= 0x30 && b <= 0x3f, b >= 0x20 && b <= 0x2f:
				params = append(params, b)
			case b >= 0x40 && b <= 0x7e:
				if b == 'm' {
					closeRun(applySGR(current, parseParams(string(params))))
				}
				state = stateGround
			default:
				state = stateGround
			}
		case stateOSC:
			switch b {
			case 0x07:
				state = stateGround
			case 0x1b:
				state = stateOSCEscape
			}
		case stateOSCEscape:
			// ESC \ (ST) ends the OSC; anything else resumes it.
			if b == '\\' {
				state = stateGround
			} else {
				state = stateOSC
			}
		}
	}
	closeRun(Style{})

	return Parsed{Plain: plain.String(), Runs: runs}
}

// Strip returns raw with every escape sequence removed. Text without
// escapes comes back unchanged.
func Strip(raw string) string {
	if !strings.ContainsRune(raw, 0x1b) {
		return raw
	}
	return Parse(raw).Plain
}

func parseParams(raw string) []int {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	params := make([]int, 0, len(parts))
	for _, part := range parts {
		n := 0
		for i := 0; i < len(part); i++ {
			c := part[i]
			if c < '0' || c > '9' {
				n = 0
				break
			}
			n = n*10 + int(c-'0')
		}
		params = append(params, n)
	}
	return params
}

func applySGR(style Style, params []int) Style {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			style = Style{}
		case p == 1:
			style.Bold = true
		case p == 3:
			style.Italic = true
		case p == 4:
			style.Underline = true
		case p == 9:
			style.Strikethrough = true
		case p == 22:
			style.Bold = false
		case p == 23:
			style.Italic = false
		case p == 24:
			style.Underline = false
		case p == 29:
			style.Strikethrough = false
		case p >= 30 && p <= 37:
			c := Indexed(uint8(p - 30))
			style.FG = &c
		case p == 38:
			if c, skip := extendedColor(params[i+1:]); c != nil {
				style.FG = c
				i += skip
			}
		case p == 39:
			style.FG = nil
		case p >= 40 && p <= 47:
			c := Indexed(uint8(p - 40))
			style.BG = &c
		case p == 48:
			if c, skip := extendedColor(params[i+1:]); c != nil {
				style.BG = c
				i += skip
			}
		case p == 49:
			style.BG = nil
		case p >= 90 && p <= 97:
			c := Indexed(uint8(p - 90 + 8))
			style.FG = &c
		case p >= 100 && p <= 107:
			c := Indexed(uint8(p - 100 + 8))
			style.BG = &c
		}
	}
	return style
}

// extendedColor decodes the tail of a 38/48 sequence: 5;n (256-color) or
// 2;r;g;b (truecolor). Returns the color and how many params it consumed.
func extendedColor(rest []int) (*Color, int) {
	if len(rest) >= 2 && rest[0] == 5 {
		c := Indexed(uint8(rest[1]))
		return &c, 2
	}
	if len(rest) >= 4 && rest[0] == 2 {
		c := TrueColor(uint8(rest[1]), uint8(rest[2]), uint8(rest[3]))
		return &c, 4
	}
	return nil, 0
}

// Package colors resolves the color values found in document drawings and
// text into normalized hex strings.
//
// Drawing colors arrive in several shapes depending on the producer: packed
// 24-bit integers, float RGB triples in the 0..1 range, hex strings, or CSS
// color names. [Resolve] accepts any of them through the [Value] sum type
// and reports "#rrggbb" in lowercase, or ok=false when the value cannot be
// interpreted as a color.
package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/runnerback/stitchery/model"
)

// Value is a color in one of the source representations. Implementations
// are [Packed], [FloatRGB] and [Text].
type Value interface {
	colorValue()
}

// Packed is a color packed into the low 24 bits of an integer, 0xRRGGBB.
type Packed uint32

// FloatRGB is a color with components in the 0..1 range.
type FloatRGB colorful.Color

// Text is a textual color: either a "#rrggbb" hex string or a CSS color
// name such as "red".
type Text string

func (Packed) colorValue()   {}
func (FloatRGB) colorValue() {}
func (Text) colorValue()     {}

// Float builds a FloatRGB value from components in the 0..1 range.
func Float(r, g, b float64) FloatRGB {
	return FloatRGB{R: r, G: g, B: b}
}

// Resolve normalizes a color value to a lowercase "#rrggbb" string.
// It returns ok=false for nil values and for text that is neither a
// well-formed hex string nor a known color name.
func Resolve(v Value) (hex string, ok bool) {
	switch c := v.(type) {
	case Packed:
		return fmt.Sprintf("#%06x", uint32(c)&0xffffff), true
	case FloatRGB:
		cc := colorful.Color(c).Clamped()
		// Components truncate rather than round, matching the packed form
		return fmt.Sprintf("#%02x%02x%02x", int(cc.R*255), int(cc.G*255), int(cc.B*255)), true
	case Text:
		return resolveText(string(c))
	default:
		return "", false
	}
}

func resolveText(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if isHex(s) {
		return strings.ToLower(s), true
	}
	if c, found := colornames.Map[strings.ToLower(s)]; found {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), true
	}
	return "", false
}

func isHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// HexToRGB converts a "#rrggbb" string to its component triple. Malformed
// input yields the zero triple rather than an error, so downstream
// consumers always have usable components.
func HexToRGB(hex string) model.RGB {
	if len(hex) != 7 || hex[0] != '#' {
		return model.RGB{}
	}
	r, err := strconv.ParseUint(hex[1:3], 16, 8)
	if err != nil {
		return model.RGB{}
	}
	g, err := strconv.ParseUint(hex[3:5], 16, 8)
	if err != nil {
		return model.RGB{}
	}
	b, err := strconv.ParseUint(hex[5:7], 16, 8)
	if err != nil {
		return model.RGB{}
	}
	return model.RGB{R: int(r), G: int(g), B: int(b)}
}

package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color that may also be "default", meaning the
// terminal's own color.
type Color struct {
	c   colorful.Color
	set bool
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{}

// ParseColor parses a hex color string such as "#61afef".
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return Color{c: c, set: true}, nil
}

// RGB returns the 8-bit color components. Only meaningful when the
// color is not the default.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c.c.R*255 + 0.5), uint8(c.c.G*255 + 0.5), uint8(c.c.B*255 + 0.5)
}

// IsDefault reports whether this is the terminal's default color.
func (c Color) IsDefault() bool {
	return !c.set
}

// Hex returns the color as a "#rrggbb" string, or "default".
func (c Color) Hex() string {
	if !c.set {
		return "default"
	}
	return c.c.Hex()
}

// Blend mixes the color with other in Lab space. t is the weight of
// other in [0,1]. Blending with a default color returns the other
// color unchanged.
func (c Color) Blend(other Color, t float64) Color {
	if !c.set {
		return other
	}
	if !other.set {
		return c
	}
	return Color{c: c.c.BlendLab(other.c, t).Clamped(), set: true}
}

// Attribute is a set of text attribute flags.
type Attribute uint8

const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrItalic              // Italic text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video
)

// Has reports whether the attribute set contains attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Style is the visual style of a span of text.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return Style{}
}

// WithForeground returns a copy of the style with the given foreground.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a copy of the style with the given background.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns a copy of the style with the bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Package theme maps highlighting tags to terminal styles.
//
// Themes are JSON files with a styles object keyed by tag:
//
//	{
//	  "name": "dusk",
//	  "styles": {
//	    "kw":  {"fg": "#c678dd", "attrs": ["bold"]},
//	    "str": {"fg": "#98c379"},
//	    "sel": {"bg": "#3e4451"}
//	  }
//	}
package theme

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/quorik/veil/internal/highlight"
)

// Theme resolves highlighting tags to styles.
type Theme struct {
	name   string
	styles map[string]Style
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// Style returns the style for a highlighting tag. Unknown tags get
// the default style.
func (t *Theme) Style(tag string) Style {
	if s, ok := t.styles[tag]; ok {
		return s
	}
	return DefaultStyle()
}

// Selected overlays the selection style onto a base style. If the
// selection style has a background it replaces the base background;
// otherwise the base background is blended toward the foreground.
func (t *Theme) Selected(base Style) Style {
	sel := t.Style(highlight.TagSelected)
	if !sel.Background.IsDefault() {
		base.Background = sel.Background
		return base
	}
	base.Background = base.Background.Blend(base.Foreground, 0.3)
	return base
}

// Default returns the built-in theme.
func Default() *Theme {
	mustColor := func(hex string) Color {
		c, err := ParseColor(hex)
		if err != nil {
			panic(err)
		}
		return c
	}

	return &Theme{
		name: "veil",
		styles: map[string]Style{
			highlight.TagKeyword:  {Foreground: mustColor("#c678dd"), Attributes: AttrBold},
			highlight.TagString:   {Foreground: mustColor("#98c379")},
			highlight.TagComment:  {Foreground: mustColor("#5c6370"), Attributes: AttrItalic},
			highlight.TagNumber:   {Foreground: mustColor("#d19a66")},
			highlight.TagConceal:  {Foreground: mustColor("#61afef")},
			highlight.TagSelected: {Background: mustColor("#3e4451")},
		},
	}
}

// Load reads a theme from a JSON file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing theme file %s: %w", path, err)
	}
	return t, nil
}

// Parse parses a theme from JSON. Styles omitted by the file fall
// back to the built-in theme.
func Parse(data []byte) (*Theme, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("theme is not valid JSON")
	}

	t := Default()
	if name := gjson.GetBytes(data, "name"); name.Exists() {
		t.name = name.String()
	}

	var parseErr error
	gjson.GetBytes(data, "styles").ForEach(func(tag, raw gjson.Result) bool {
		style, err := parseStyle(raw)
		if err != nil {
			parseErr = fmt.Errorf("style %q: %w", tag.String(), err)
			return false
		}
		t.styles[tag.String()] = style
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return t, nil
}

func parseStyle(raw gjson.Result) (Style, error) {
	s := DefaultStyle()

	if fg := raw.Get("fg"); fg.Exists() {
		c, err := ParseColor(fg.String())
		if err != nil {
			return Style{}, err
		}
		s.Foreground = c
	}
	if bg := raw.Get("bg"); bg.Exists() {
		c, err := ParseColor(bg.String())
		if err != nil {
			return Style{}, err
		}
		s.Background = c
	}

	var attrErr error
	raw.Get("attrs").ForEach(func(_, attr gjson.Result) bool {
		switch attr.String() {
		case "bold":
			s.Attributes |= AttrBold
		case "italic":
			s.Attributes |= AttrItalic
		case "underline":
			s.Attributes |= AttrUnderline
		case "reverse":
			s.Attributes |= AttrReverse
		default:
			attrErr = fmt.Errorf("unknown attribute %q", attr.String())
			return false
		}
		return true
	})
	if attrErr != nil {
		return Style{}, attrErr
	}

	return s, nil
}

package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/quorik/veil/internal/config"
	"github.com/quorik/veil/internal/document"
	"github.com/quorik/veil/internal/theme"
	"github.com/quorik/veil/internal/view"
	"github.com/quorik/veil/internal/wrap"
)

// pager displays a document read-only, one screen at a time.
type pager struct {
	screen tcell.Screen
	doc    *document.Document
	cfg    config.Config
	th     *theme.Theme

	// row is the index of the wrapped line shown at the top of the
	// screen. The rune offset passed to the view is derived from it
	// on every draw so resizes keep the position stable.
	row int

	// Set by draw, used by the key handlers.
	pageRows  int
	totalRows int

	finiOnce sync.Once
}

func newPager(doc *document.Document, cfg config.Config, th *theme.Theme) (*pager, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &pager{
		screen: screen,
		doc:    doc,
		cfg:    cfg,
		th:     th,
	}, nil
}

// Close restores the terminal.
func (p *pager) Close() {
	p.finiOnce.Do(p.screen.Fini)
}

// Quit stops the event loop from another goroutine.
func (p *pager) Quit() {
	p.Close()
}

// PostConfig delivers a reloaded configuration to the event loop.
func (p *pager) PostConfig(cfg config.Config) {
	_ = p.screen.PostEvent(tcell.NewEventInterrupt(cfg))
}

// Run draws the document and processes key events until quit.
func (p *pager) Run() error {
	for {
		if err := p.draw(); err != nil {
			return err
		}

		switch ev := p.screen.PollEvent().(type) {
		case nil:
			// Screen finalized.
			return nil
		case *tcell.EventResize:
			p.screen.Sync()
		case *tcell.EventInterrupt:
			if cfg, ok := ev.Data().(config.Config); ok {
				p.applyConfig(cfg)
			}
		case *tcell.EventKey:
			if p.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey reports whether the pager should quit.
func (p *pager) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyDown, tcell.KeyEnter:
		p.scroll(1)
	case tcell.KeyUp:
		p.scroll(-1)
	case tcell.KeyPgDn, tcell.KeyCtrlF:
		p.scroll(p.pageRows)
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		p.scroll(-p.pageRows)
	case tcell.KeyHome:
		p.row = 0
	case tcell.KeyEnd:
		p.row = p.totalRows - 1
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'j':
			p.scroll(1)
		case 'k':
			p.scroll(-1)
		case ' ', 'f':
			p.scroll(p.pageRows)
		case 'b':
			p.scroll(-p.pageRows)
		case 'g':
			p.row = 0
		case 'G':
			p.row = p.totalRows - 1
		}
	}
	return false
}

func (p *pager) scroll(n int) {
	p.row += n
	if p.row >= p.totalRows {
		p.row = p.totalRows - 1
	}
	if p.row < 0 {
		p.row = 0
	}
}

func (p *pager) applyConfig(cfg config.Config) {
	p.cfg = cfg
	if cfg.ThemePath == "" {
		p.th = theme.Default()
		return
	}
	if th, err := theme.Load(cfg.ThemePath); err == nil {
		p.th = th
	}
}

func (p *pager) draw() error {
	screenW, screenH := p.screen.Size()
	if screenW < 1 || screenH < 2 {
		return nil
	}
	pageRows := screenH - 1

	width := p.cfg.View.Width
	if width <= 0 || width > screenW {
		width = screenW
	}

	text := p.doc.Text().String()
	p.pageRows = pageRows
	p.totalRows = wrap.CountWrappedLines(text, width) + 1
	if p.row >= p.totalRows {
		p.row = p.totalRows - 1
	}

	offset := wrap.MoveNWrappedLinesDown(text, width, 0, p.row)
	v, err := view.ForScreen(p.doc, width, pageRows, offset)
	if err != nil {
		return err
	}

	p.screen.Clear()

	row, col, vpos := 0, 0, 0
	for _, r := range v.Text {
		if r == '\n' {
			row++
			col = 0
			vpos++
			continue
		}
		if col == width {
			row++
			col = 0
		}
		if row >= pageRows {
			break
		}
		p.screen.SetContent(col, row, r, nil, p.styleAt(v, vpos))
		col++
		vpos++
	}

	p.drawStatus(screenW, screenH-1)
	p.screen.Show()
	return nil
}

func (p *pager) styleAt(v *view.View, vpos int) tcell.Style {
	s := theme.DefaultStyle()
	if vpos < len(v.Highlighting) && v.Highlighting[vpos] != "" {
		s = p.th.Style(v.Highlighting[vpos])
	}
	if v.Selection.Contains(vpos) {
		s = p.th.Selected(s)
	}
	return toTcell(s)
}

func (p *pager) drawStatus(width, y int) {
	status := fmt.Sprintf(" %s  %d/%d ", p.doc.Path(), p.row+1, p.totalRows)
	style := tcell.StyleDefault.Reverse(true)

	col := 0
	for _, cluster := range clusters(status) {
		w := uniseg.StringWidth(cluster)
		if col+w > width {
			break
		}
		runes := []rune(cluster)
		p.screen.SetContent(col, y, runes[0], runes[1:], style)
		col += w
	}
	for ; col < width; col++ {
		p.screen.SetContent(col, y, ' ', nil, style)
	}
}

// clusters splits a string into grapheme clusters.
func clusters(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

func toTcell(s theme.Style) tcell.Style {
	st := tcell.StyleDefault
	if !s.Foreground.IsDefault() {
		r, g, b := s.Foreground.RGB()
		st = st.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	if !s.Background.IsDefault() {
		r, g, b := s.Background.RGB()
		st = st.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	if s.Attributes.Has(theme.AttrBold) {
		st = st.Bold(true)
	}
	if s.Attributes.Has(theme.AttrItalic) {
		st = st.Italic(true)
	}
	if s.Attributes.Has(theme.AttrUnderline) {
		st = st.Underline(true)
	}
	if s.Attributes.Has(theme.AttrReverse) {
		st = st.Reverse(true)
	}
	return st
}

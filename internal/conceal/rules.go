package conceal

import (
	"sort"
	"strings"

	"github.com/quorik/veil/internal/interval"
	"github.com/quorik/veil/internal/text"
)

// Rule computes window-local substitutions. It receives the content of the
// queried window and the absolute position of its first rune, and returns
// substitutions in absolute coordinates, restricted to that window.
type Rule func(content string, begin int) []Substitution

// RuleSource is a Source backed by a global substitution set plus a list of
// local rules evaluated per query. It holds a snapshot of the document text;
// the owner must call SetText after every transformation.
type RuleSource struct {
	text   text.Text
	rules  []Rule
	global *GlobalSet
}

// NewRuleSource creates a rule source over the given text.
func NewRuleSource(t text.Text, rules ...Rule) *RuleSource {
	return &RuleSource{
		text:   t,
		rules:  rules,
		global: NewGlobalSet(),
	}
}

// SetText replaces the text snapshot the rules run against.
func (s *RuleSource) SetText(t text.Text) {
	s.text = t
}

// Global returns the mutable global substitution set.
func (s *RuleSource) Global() *GlobalSet {
	return s.global
}

// GlobalSubstitutions returns the document-wide ordered substitution list.
func (s *RuleSource) GlobalSubstitutions() []Substitution {
	return s.global.All()
}

// LocalSubstitutions runs every rule over the original range
// [begin, begin+length) and returns the results in ascending order.
func (s *RuleSource) LocalSubstitutions(begin, length int) []Substitution {
	end := begin + length
	if end > s.text.Len() {
		end = s.text.Len()
	}
	if begin >= end {
		return nil
	}
	content := s.text.SubstringOf(interval.New(begin, end))

	var subs []Substitution
	for _, rule := range s.rules {
		subs = append(subs, rule(content, begin)...)
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].Compare(subs[j]) < 0
	})
	return subs
}

// TabRule returns a rule that displays each tab as a marker followed by
// padding spaces up to the given width.
func TabRule(width int) Rule {
	if width < 1 {
		width = 1
	}
	replacement := "»" + strings.Repeat(" ", width-1)
	return func(content string, begin int) []Substitution {
		var subs []Substitution
		for i, r := range []rune(content) {
			if r == '\t' {
				subs = append(subs, Substitution{
					Interval:    interval.New(begin+i, begin+i+1),
					Replacement: replacement,
				})
			}
		}
		return subs
	}
}

// NonPrintableRule returns a rule that substitutes control runes (other
// than tab and newline) with their control-picture placeholder, so stray
// bytes stay visible instead of garbling the view.
func NonPrintableRule() Rule {
	return func(content string, begin int) []Substitution {
		var subs []Substitution
		for i, r := range []rune(content) {
			if r < 0x20 && r != '\n' && r != '\t' {
				subs = append(subs, Substitution{
					Interval:    interval.New(begin+i, begin+i+1),
					Replacement: string(rune(0x2400 + r)),
				})
			}
		}
		return subs
	}
}

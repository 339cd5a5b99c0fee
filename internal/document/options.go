package document

import "github.com/quorik/veil/internal/conceal"

// DefaultMaxUndoEntries bounds the undo history unless overridden.
const DefaultMaxUndoEntries = 1000

// Option configures a Document during creation.
type Option func(*Document)

// WithConcealRules installs local concealment rules on the document's
// substitution source.
func WithConcealRules(rules ...conceal.Rule) Option {
	return func(d *Document) {
		d.conceal = conceal.NewRuleSource(d.text, rules...)
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.maxUndo = n
		}
	}
}

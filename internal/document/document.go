// Package document combines a text, its selection, its highlighting table
// and its concealment source into the editable unit the view engine and the
// session layer work with. Edits go through transformations exclusively;
// every applied transformation is recorded so it can be undone by applying
// its inverse.
//
// A document is not safe for concurrent use. The owner must serialize
// access, including while views are being built from it.
package document

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/quorik/veil/internal/conceal"
	"github.com/quorik/veil/internal/highlight"
	"github.com/quorik/veil/internal/interval"
	"github.com/quorik/veil/internal/text"
)

// Document is one open text with everything attached to it.
type Document struct {
	id           string
	path         string
	text         text.Text
	selection    interval.Selection
	highlighting highlight.Map
	conceal      *conceal.RuleSource

	undo    []text.Transformation
	redo    []text.Transformation
	maxUndo int
}

// New creates a document over the given content.
func New(content string, opts ...Option) *Document {
	d := &Document{
		id:           uuid.New().String(),
		text:         text.New(content),
		highlighting: highlight.Map{},
		maxUndo:      DefaultMaxUndoEntries,
	}
	d.conceal = conceal.NewRuleSource(d.text)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load creates a document from the contents of a file.
func Load(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: reading %s: %w", path, err)
	}
	d := New(string(data), opts...)
	d.path = path
	return d, nil
}

// ID returns the document's unique identifier.
func (d *Document) ID() string {
	return d.id
}

// Path returns the file the document was loaded from, if any.
func (d *Document) Path() string {
	return d.path
}

// Text returns the current document text.
func (d *Document) Text() text.Text {
	return d.text
}

// Selection returns the document's absolute selection.
func (d *Document) Selection() interval.Selection {
	return d.selection
}

// SetSelection replaces the document's selection.
func (d *Document) SetSelection(sel interval.Selection) {
	d.selection = sel
}

// Highlighting returns the sparse position-to-tag table.
func (d *Document) Highlighting() highlight.Map {
	return d.highlighting
}

// SetHighlighting replaces the highlighting table, typically with the
// finished snapshot of an asynchronous highlighter.
func (d *Document) SetHighlighting(m highlight.Map) {
	if m == nil {
		m = highlight.Map{}
	}
	d.highlighting = m
}

// Conceal returns the document's substitution source.
func (d *Document) Conceal() conceal.Source {
	return d.conceal
}

// ConcealRules returns the mutable rule source, for registering global
// substitutions.
func (d *Document) ConcealRules() *conceal.RuleSource {
	return d.conceal
}

// Apply applies a transformation to the document text. On success the
// transformation is recorded for undo and the redo stack is cleared. On
// failure the document is left fully intact.
func (d *Document) Apply(tr text.Transformation) error {
	applied, err := d.text.Transform(tr)
	if err != nil {
		return err
	}
	d.setText(applied)

	d.undo = append(d.undo, tr)
	if len(d.undo) > d.maxUndo {
		copy(d.undo, d.undo[1:])
		d.undo = d.undo[:len(d.undo)-1]
	}
	d.redo = d.redo[:0]
	return nil
}

// Undo reverts the most recently applied transformation.
func (d *Document) Undo() error {
	if len(d.undo) == 0 {
		return ErrNothingToUndo
	}
	tr := d.undo[len(d.undo)-1]
	reverted, err := d.text.Transform(tr.Inverse())
	if err != nil {
		return err
	}
	d.setText(reverted)
	d.undo = d.undo[:len(d.undo)-1]
	d.redo = append(d.redo, tr)
	return nil
}

// Redo re-applies the most recently undone transformation.
func (d *Document) Redo() error {
	if len(d.redo) == 0 {
		return ErrNothingToRedo
	}
	tr := d.redo[len(d.redo)-1]
	applied, err := d.text.Transform(tr)
	if err != nil {
		return err
	}
	d.setText(applied)
	d.redo = d.redo[:len(d.redo)-1]
	d.undo = append(d.undo, tr)
	return nil
}

// CanUndo returns true if an applied transformation can be undone.
func (d *Document) CanUndo() bool {
	return len(d.undo) > 0
}

// CanRedo returns true if an undone transformation can be re-applied.
func (d *Document) CanRedo() bool {
	return len(d.redo) > 0
}

// setText swaps in a new text value and keeps the conceal source's
// snapshot in sync.
func (d *Document) setText(t text.Text) {
	d.text = t
	d.conceal.SetText(t)
}

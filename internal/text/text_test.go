package text

import (
	"errors"
	"testing"

	"github.com/quorik/veil/internal/interval"
)

func TestCharAt(t *testing.T) {
	txt := New("hello")
	r, err := txt.CharAt(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != 'e' {
		t.Errorf("expected 'e', got %q", r)
	}

	if _, err := txt.CharAt(5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := txt.CharAt(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestSubstringOf(t *testing.T) {
	txt := New("hello world")
	if got := txt.SubstringOf(interval.New(6, 11)); got != "world" {
		t.Errorf("expected %q, got %q", "world", got)
	}
	// Exclusive end clamps, slicing semantics.
	if got := txt.SubstringOf(interval.New(6, 99)); got != "world" {
		t.Errorf("expected clamped %q, got %q", "world", got)
	}
	if got := txt.SubstringOf(interval.New(4, 4)); got != "" {
		t.Errorf("expected empty substring, got %q", got)
	}
}

func TestSubstringsOf(t *testing.T) {
	txt := New("one two three")
	sel := interval.NewSelection(interval.New(0, 3), interval.New(4, 7))
	got := txt.SubstringsOf(sel)
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("expected [one two], got %v", got)
	}
}

func TestTransform(t *testing.T) {
	txt := New("one two three")
	sel := interval.NewSelection(interval.New(0, 3), interval.New(4, 7))
	tr := NewTransformation(txt, sel, []string{"ONE", "2"})

	out, err := txt.Transform(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "ONE 2 three" {
		t.Errorf("expected %q, got %q", "ONE 2 three", out.String())
	}
	// Original value untouched.
	if txt.String() != "one two three" {
		t.Errorf("receiver mutated: %q", txt.String())
	}
}

func TestTransformInsertAtEmptyInterval(t *testing.T) {
	txt := New("ab")
	sel := interval.NewSelection(interval.New(1, 1))
	tr := NewTransformation(txt, sel, []string{"X"})

	out, err := txt.Transform(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "aXb" {
		t.Errorf("expected %q, got %q", "aXb", out.String())
	}
}

func TestTransformStale(t *testing.T) {
	txt := New("one two three")
	sel := interval.NewSelection(interval.New(0, 3))
	tr := NewTransformation(txt, sel, []string{"ONE"})

	changed := New("xne two three")
	if _, err := changed.Transform(tr); !errors.Is(err, ErrStaleTransformation) {
		t.Errorf("expected ErrStaleTransformation, got %v", err)
	}
}

func TestTransformValidationHook(t *testing.T) {
	txt := New("abc")
	sel := interval.NewSelection(interval.New(0, 1))
	tr := NewTransformation(txt, sel, []string{"x"})
	tr.Validate = func(Text) error { return errors.New("rejected") }

	if _, err := txt.Transform(tr); !errors.Is(err, ErrStaleTransformation) {
		t.Errorf("expected ErrStaleTransformation from hook, got %v", err)
	}
}

func TestTransformReplacementCountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on replacement count mismatch")
		}
	}()
	sel := interval.NewSelection(interval.New(0, 1), interval.New(2, 3))
	NewTransformation(New("abc"), sel, []string{"x"})
}

func TestInverseRoundTrip(t *testing.T) {
	cases := []struct {
		name         string
		content      string
		sel          interval.Selection
		replacements []string
	}{
		{
			"replace two words",
			"one two three",
			interval.NewSelection(interval.New(0, 3), interval.New(4, 7)),
			[]string{"first", ""},
		},
		{
			"insert at empty interval",
			"ab",
			interval.NewSelection(interval.New(1, 1)),
			[]string{"inserted"},
		},
		{
			"delete everything",
			"gone",
			interval.NewSelection(interval.New(0, 4)),
			[]string{""},
		},
		{
			"multibyte runes",
			"héllo wörld",
			interval.NewSelection(interval.New(1, 2), interval.New(7, 8)),
			[]string{"e", "ø"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			txt := New(tc.content)
			tr := NewTransformation(txt, tc.sel, tc.replacements)

			applied, err := txt.Transform(tr)
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			restored, err := applied.Transform(tr.Inverse())
			if err != nil {
				t.Fatalf("undo: %v", err)
			}
			if restored.String() != tc.content {
				t.Errorf("round trip produced %q, expected %q", restored.String(), tc.content)
			}
		})
	}
}

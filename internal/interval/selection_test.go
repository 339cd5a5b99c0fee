package interval

import "testing"

func TestSelectionAddKeepsOrder(t *testing.T) {
	s := NewSelection(New(10, 12), New(2, 4))
	ivs := s.All()
	if len(ivs) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(ivs))
	}
	if ivs[0] != New(2, 4) || ivs[1] != New(10, 12) {
		t.Errorf("expected ordered intervals, got %s", s)
	}
}

func TestSelectionAddMergesOverlapping(t *testing.T) {
	s := NewSelection(New(2, 5), New(4, 8))
	if s.Len() != 1 || s.At(0) != New(2, 8) {
		t.Errorf("expected merged {[2:8)}, got %s", s)
	}
}

func TestSelectionAddMergesAdjacent(t *testing.T) {
	s := NewSelection(New(2, 5), New(5, 8))
	if s.Len() != 1 || s.At(0) != New(2, 8) {
		t.Errorf("expected merged {[2:8)}, got %s", s)
	}
}

func TestSelectionEmptyIntervalPreserved(t *testing.T) {
	s := NewSelection(New(3, 3))
	if s.Len() != 1 || !s.At(0).IsEmpty() {
		t.Errorf("expected single empty interval, got %s", s)
	}
}

func TestSelectionContains(t *testing.T) {
	s := NewSelection(New(2, 4), New(8, 10))
	if !s.Contains(3) || !s.Contains(8) {
		t.Error("expected positions 3 and 8 to be selected")
	}
	if s.Contains(4) || s.Contains(5) {
		t.Error("expected positions 4 and 5 to be unselected")
	}
	if !s.ContainsInterval(New(8, 10)) {
		t.Error("expected [8:10) to be contained")
	}
	if s.ContainsInterval(New(3, 9)) {
		t.Error("expected [3:9) not to be contained")
	}
}

func TestPartitionCoversText(t *testing.T) {
	cases := []struct {
		name    string
		sel     Selection
		textLen int
	}{
		{"empty selection", NewSelection(), 10},
		{"single interval", NewSelection(New(2, 4)), 10},
		{"interval at start", NewSelection(New(0, 3)), 10},
		{"interval at end", NewSelection(New(7, 10)), 10},
		{"multiple intervals", NewSelection(New(1, 3), New(5, 5), New(8, 9)), 12},
		{"zero length text", NewSelection(), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runs := tc.sel.Partition(tc.textLen)

			total := 0
			pos := 0
			for i, run := range runs {
				if run.InSelection != (i%2 == 1) {
					t.Errorf("run %d: expected alternation starting unselected", i)
				}
				if run.Interval.Begin != pos {
					t.Errorf("run %d begins at %d, expected %d", i, run.Interval.Begin, pos)
				}
				pos = run.Interval.End
				total += run.Interval.Len()
			}
			if total != tc.textLen {
				t.Errorf("run lengths sum to %d, expected %d", total, tc.textLen)
			}
			if pos != tc.textLen {
				t.Errorf("partition ends at %d, expected %d", pos, tc.textLen)
			}

			selected := 0
			for _, run := range runs {
				if run.InSelection {
					selected++
				}
			}
			if selected != tc.sel.Len() {
				t.Errorf("expected %d selected runs, got %d", tc.sel.Len(), selected)
			}
		})
	}
}

func TestContentLen(t *testing.T) {
	s := NewSelection(New(1, 3), New(5, 5), New(8, 12))
	if got := s.ContentLen(); got != 6 {
		t.Errorf("expected content length 6, got %d", got)
	}
}

package interval

import "testing"

func TestNewValid(t *testing.T) {
	iv := New(2, 5)
	if iv.Begin != 2 || iv.End != 5 {
		t.Errorf("expected [2:5), got %s", iv)
	}
	if iv.Len() != 3 {
		t.Errorf("expected len 3, got %d", iv.Len())
	}

	empty := New(4, 4)
	if !empty.IsEmpty() {
		t.Error("expected empty interval")
	}
}

func TestNewInvalidPanics(t *testing.T) {
	cases := []struct {
		name       string
		begin, end int
	}{
		{"end before begin", 5, 2},
		{"negative begin", -1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d, %d) did not panic", tc.begin, tc.end)
				}
			}()
			New(tc.begin, tc.end)
		})
	}
}

func TestContains(t *testing.T) {
	iv := New(2, 5)
	for _, pos := range []int{2, 3, 4} {
		if !iv.Contains(pos) {
			t.Errorf("expected %s to contain %d", iv, pos)
		}
	}
	for _, pos := range []int{1, 5, 6} {
		if iv.Contains(pos) {
			t.Errorf("expected %s not to contain %d", iv, pos)
		}
	}
}

func TestContainsInterval(t *testing.T) {
	iv := New(2, 8)
	if !iv.ContainsInterval(New(2, 8)) {
		t.Error("interval should contain itself")
	}
	if !iv.ContainsInterval(New(3, 5)) {
		t.Error("interval should contain strict sub-interval")
	}
	if !iv.ContainsInterval(New(8, 8)) {
		t.Error("interval should contain empty interval at its end")
	}
	if iv.ContainsInterval(New(1, 5)) || iv.ContainsInterval(New(5, 9)) {
		t.Error("interval should not contain partially overlapping interval")
	}
}

func TestOverlapsAndTouches(t *testing.T) {
	a := New(2, 5)
	if !a.Overlaps(New(4, 7)) {
		t.Error("expected overlap")
	}
	if a.Overlaps(New(5, 7)) {
		t.Error("adjacent intervals do not overlap")
	}
	if !a.Touches(New(5, 7)) {
		t.Error("adjacent intervals touch")
	}
	if a.Touches(New(6, 7)) {
		t.Error("disjoint intervals do not touch")
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b Interval
		want int
	}{
		{New(1, 3), New(2, 3), -1},
		{New(2, 3), New(1, 9), 1},
		{New(1, 3), New(1, 5), -1},
		{New(1, 5), New(1, 3), 1},
		{New(1, 3), New(1, 3), 0},
	}
	for _, tc := range cases {
		if got := tc.a.Compare(tc.b); got != tc.want {
			t.Errorf("%s.Compare(%s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

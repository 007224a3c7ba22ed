package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	t.Parallel()

	if got := NormalizeLimit(0); got != DefaultLimit {
		t.Fatalf("zero limit should default, got %d", got)
	}
	if got := NormalizeLimit(-5); got != DefaultLimit {
		t.Fatalf("negative limit should default, got %d", got)
	}
	if got := NormalizeLimit(MaxLimit + 1); got != MaxLimit {
		t.Fatalf("oversized limit should cap, got %d", got)
	}
	if got := NormalizeLimit(10); got != 10 {
		t.Fatalf("valid limit should pass through, got %d", got)
	}
}

func TestWindow(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		params    Params
		total     int
		wantStart int
		wantEnd   int
	}{
		{"first page", Params{Limit: 10, Offset: 0}, 25, 0, 10},
		{"middle page", Params{Limit: 10, Offset: 10}, 25, 10, 20},
		{"short last page", Params{Limit: 10, Offset: 20}, 25, 20, 25},
		{"offset past end", Params{Limit: 10, Offset: 100}, 25, 25, 25},
		{"negative offset", Params{Limit: 10, Offset: -3}, 25, 0, 10},
		{"empty result", Params{Limit: 10, Offset: 0}, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := Window(tc.params, tc.total)
			if start != tc.wantStart || end != tc.wantEnd {
				t.Fatalf("Window(%+v, %d) = (%d, %d), want (%d, %d)",
					tc.params, tc.total, start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

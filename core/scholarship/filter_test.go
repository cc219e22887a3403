package scholarship

import (
	"testing"
	"time"
)

func intp(n int) *int { return &n }

func ids(listings []Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	// anchored before the earliest deadline so every record is upcoming
	now := time.Date(2025, time.August, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		qf   QueryFilter
		want []string // expected IDs, in deadline order
	}{
		{
			name: "no criteria returns all, sorted by deadline",
			qf:   QueryFilter{},
			want: []string{"flg-001", "stem-203", "arts-110", "rural-550"},
		},
		{
			name: "level narrows",
			qf:   QueryFilter{Level: "Undergraduate"},
			want: []string{"flg-001", "stem-203", "arts-110"},
		},
		{
			name: "level and amount ceiling conjoin",
			qf:   QueryFilter{Level: "Undergraduate", Max: intp(6000)},
			want: []string{"flg-001", "arts-110"},
		},
		{
			name: "amount floor",
			qf:   QueryFilter{Min: intp(5000)},
			want: []string{"flg-001", "stem-203"},
		},
		{
			name: "field",
			qf:   QueryFilter{Field: "STEM"},
			want: []string{"stem-203"},
		},
		{
			name: "region",
			qf:   QueryFilter{Region: "Ashanti"},
			want: []string{"arts-110"},
		},
		{
			name: "type",
			qf:   QueryFilter{Type: "Merit-based"},
			want: []string{"stem-203"},
		},
		{
			name: "the All sentinel disables a criterion",
			qf:   QueryFilter{Level: "All", Region: "All"},
			want: []string{"flg-001", "stem-203", "arts-110", "rural-550"},
		},
		{
			name: "due within 30 days",
			qf:   QueryFilter{Due: DueNext30},
			want: []string{"flg-001"},
		},
		{
			name: "due this month",
			qf:   QueryFilter{Due: DueThisMonth},
			want: []string{"flg-001"},
		},
		{
			name: "due next month",
			qf:   QueryFilter{Due: DueNextMonth},
			want: []string{"stem-203"},
		},
		{
			name: "search matches titles",
			qf:   QueryFilter{Search: "rural"},
			want: []string{"rural-550"},
		},
		{
			name: "search matches tags, case-insensitive",
			qf:   QueryFilter{Search: "MENTORSHIP"},
			want: []string{"flg-001"},
		},
		{
			name: "search matches overviews",
			qf:   QueryFilter{Search: "first-generation"},
			want: []string{"flg-001"},
		},
		{
			name: "contradictory criteria return empty, not nil error",
			qf:   QueryFilter{Field: "STEM", Max: intp(1000)},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(Listings, tt.qf, now))
			if !equalIDs(got, tt.want...) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_deadlineOrderIsStable(t *testing.T) {
	now := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)

	got := Filter(Listings, QueryFilter{}, now)
	for i := 1; i < len(got); i++ {
		if got[i].Deadline.Before(got[i-1].Deadline) {
			t.Fatalf("Filter() out of order: %s before %s", got[i].ID, got[i-1].ID)
		}
	}
}

func TestFeatured(t *testing.T) {
	got := ids(Featured(Listings))
	if !equalIDs(got, "flg-001", "stem-203") {
		t.Errorf("Featured() = %v, want the two featured records", got)
	}
}

func TestDueInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  []string
	}{
		{name: "october has two deadlines", year: 2025, month: time.October, want: []string{"arts-110", "rural-550"}},
		{name: "september", year: 2025, month: time.September, want: []string{"stem-203"}},
		{name: "empty month", year: 2025, month: time.December, want: []string{}},
		{name: "wrong year", year: 2024, month: time.October, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(DueInMonth(Listings, tt.year, tt.month))
			if !equalIDs(got, tt.want...) {
				t.Errorf("DueInMonth() = %v, want %v", got, tt.want)
			}
		})
	}
}

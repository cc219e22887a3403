package scholarship

import (
	"sort"
	"strings"
	"time"

	"github.com/uyznfoundation/portal/core"
)

// Deadline windows
const (
	DueAll       = "All"
	DueNext30    = "30days"
	DueThisMonth = "ThisMonth"
	DueNextMonth = "NextMonth"
)

// QueryFilter narrows the Listing directory. The sentinel "All" (or an
// empty string / nil bound) disables the corresponding predicate.
type QueryFilter struct {
	Level  string `query:"level"`
	Field  string `query:"field"`
	Region string `query:"region"`
	Type   string `query:"type"`
	Min    *int   `query:"min"`
	Max    *int   `query:"max"`
	Due    string `query:"due"`
	Search string `query:"q"`
}

func (qf *QueryFilter) Clean() {
	qf.Level = cleanCriterion(qf.Level)
	qf.Field = cleanCriterion(qf.Field)
	qf.Region = cleanCriterion(qf.Region)
	qf.Type = cleanCriterion(qf.Type)
	qf.Due = cleanCriterion(qf.Due)
	qf.Search = core.CleanString(qf.Search)
}

func cleanCriterion(s string) string {
	s = core.CleanString(s)
	if s == DueAll {
		return ""
	}
	return s
}

// Filter applies a conjunction of independent predicates and returns
// the surviving subset sorted ascending by deadline. An item must
// satisfy every active predicate. `now` anchors the deadline windows.
func Filter(listings []Listing, qf QueryFilter, now time.Time) []Listing {
	qf.Clean()
	search := strings.ToLower(qf.Search)

	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if qf.Level != "" && l.Level != qf.Level {
			continue
		}
		if qf.Field != "" && l.Field != qf.Field {
			continue
		}
		if qf.Region != "" && l.Region != qf.Region {
			continue
		}
		if qf.Type != "" && l.Type != qf.Type {
			continue
		}
		if qf.Min != nil && l.Amount < *qf.Min {
			continue
		}
		if qf.Max != nil && l.Amount > *qf.Max {
			continue
		}
		if !dueMatch(l.Deadline, qf.Due, now) {
			continue
		}
		if search != "" {
			blob := strings.ToLower(l.Title + " " + l.Overview + " " + strings.Join(l.Tags, " "))
			if !strings.Contains(blob, search) {
				continue
			}
		}
		out = append(out, l)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Deadline.Before(out[j].Deadline) })
	return out
}

func dueMatch(deadline time.Time, due string, now time.Time) bool {
	switch due {
	case DueNext30:
		in30 := now.AddDate(0, 0, 30)
		return !deadline.Before(now) && !deadline.After(in30)
	case DueThisMonth:
		return deadline.Year() == now.Year() && deadline.Month() == now.Month()
	case DueNextMonth:
		nm := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
		return deadline.Year() == nm.Year() && deadline.Month() == nm.Month()
	default:
		return true
	}
}

// Featured returns the listings highlighted on the landing strip.
func Featured(listings []Listing) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.Featured {
			out = append(out, l)
		}
	}
	return out
}

// DueInMonth returns the listings whose deadline falls within the given
// month, sorted ascending by deadline. Feeds the deadlines calendar.
func DueInMonth(listings []Listing, year int, month time.Month) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.Deadline.Year() == year && l.Deadline.Month() == month {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Deadline.Before(out[j].Deadline) })
	return out
}

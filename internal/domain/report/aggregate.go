// Package report holds the pure aggregation over a registration snapshot.
package report

import (
	"sort"
	"time"

	"esep-backend/internal/domain/registration"

	"github.com/shopspring/decimal"
)

// Range bounds approved_date by whole days in Loc. Nil bounds are open.
type Range struct {
	From *time.Time
	To   *time.Time
	Loc  *time.Location
}

func (r Range) loc() *time.Location {
	if r.Loc == nil {
		return time.UTC
	}
	return r.Loc
}

// Empty is true when neither bound is set. Such a range selects nothing.
func (r Range) Empty() bool { return r.From == nil && r.To == nil }

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func endOfDay(t time.Time, loc *time.Location) time.Time {
	return startOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// Contains applies the inclusive day bounds to t.
func (r Range) Contains(t time.Time) bool {
	if r.Empty() {
		return false
	}
	if r.From != nil && t.Before(startOfDay(*r.From, r.loc())) {
		return false
	}
	if r.To != nil && t.After(endOfDay(*r.To, r.loc())) {
		return false
	}
	return true
}

type CategoryTotal struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Count      int             `json:"count"`
	TotalFees  decimal.Decimal `json:"total_fees"`
}

type Summary struct {
	Count               int             `json:"count"`
	TotalFees           decimal.Decimal `json:"total_fees"`
	DistinctCategories  int             `json:"distinct_categories"`
	DistinctPanchayaths int             `json:"distinct_panchayaths"`
	ByCategory          []CategoryTotal `json:"by_category"`
}

// Eligible keeps approved registrations with an approved date inside rng.
func Eligible(regs []registration.Registration, rng Range) []registration.Registration {
	out := make([]registration.Registration, 0)
	for _, r := range regs {
		if r.Status != registration.StatusApproved || r.ApprovedDate == nil {
			continue
		}
		if rng.Contains(*r.ApprovedDate) {
			out = append(out, r)
		}
	}
	return out
}

// Aggregate counts and sums the eligible registrations.
func Aggregate(regs []registration.Registration, rng Range) Summary {
	s := Summary{TotalFees: decimal.Zero, ByCategory: []CategoryTotal{}}
	cats := map[string]*CategoryTotal{}
	panchayaths := map[string]struct{}{}

	for _, r := range Eligible(regs, rng) {
		s.Count++
		s.TotalFees = s.TotalFees.Add(r.Fee)

		ct, ok := cats[r.CategoryID]
		if !ok {
			ct = &CategoryTotal{CategoryID: r.CategoryID, TotalFees: decimal.Zero}
			if r.Category != nil {
				ct.Name = r.Category.NameEnglish
			}
			cats[r.CategoryID] = ct
		}
		ct.Count++
		ct.TotalFees = ct.TotalFees.Add(r.Fee)

		if r.PanchayathID != nil && *r.PanchayathID != "" {
			panchayaths[*r.PanchayathID] = struct{}{}
		}
	}

	s.DistinctCategories = len(cats)
	s.DistinctPanchayaths = len(panchayaths)
	for _, ct := range cats {
		s.ByCategory = append(s.ByCategory, *ct)
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		if s.ByCategory[i].Count != s.ByCategory[j].Count {
			return s.ByCategory[i].Count > s.ByCategory[j].Count
		}
		return s.ByCategory[i].CategoryID < s.ByCategory[j].CategoryID
	})
	return s
}

// PendingAmount sums fees of pending registrations regardless of dates.
func PendingAmount(regs []registration.Registration) decimal.Decimal {
	total := decimal.Zero
	for _, r := range regs {
		if r.Status == registration.StatusPending {
			total = total.Add(r.Fee)
		}
	}
	return total
}

package registration

import (
	"math"
	"sort"
	"time"

	"esep-backend/internal/domain/category"
)

// Unbounded is returned by DaysRemaining when a registration has no expiry date.
const Unbounded = math.MaxInt32

// DefaultAlertWindowDays is the look-ahead for ListExpiringSoon.
const DefaultAlertWindowDays = 5

const day = 24 * time.Hour

// Approve moves a pending registration to approved. The expiry date is only
// computed when absent; cat may be nil when the category was removed.
func (r *Registration) Approve(by string, cat *category.Category, now time.Time) error {
	if r.Status != StatusPending {
		return ErrInvalidTransition
	}
	r.Status = StatusApproved
	r.ApprovedDate = &now
	r.ApprovedBy = &by
	if r.ExpiryDate == nil {
		exp := now.AddDate(0, 0, category.ExpiryWindow(cat))
		r.ExpiryDate = &exp
	}
	return nil
}

// Reject moves a pending registration to rejected. Expiry is left alone.
func (r *Registration) Reject(by string, now time.Time) error {
	if r.Status != StatusPending {
		return ErrInvalidTransition
	}
	r.Status = StatusRejected
	r.ApprovedDate = &now
	r.ApprovedBy = &by
	return nil
}

// Restore puts an approved or rejected registration back to pending. Payment
// verification is cleared because verified implies approved; expiry is kept.
func (r *Registration) Restore() error {
	if r.Status != StatusApproved && r.Status != StatusRejected {
		return ErrInvalidTransition
	}
	r.Status = StatusPending
	r.ApprovedDate = nil
	r.ApprovedBy = nil
	r.clearVerification()
	return nil
}

// Verify marks the fee as received. Only approved registrations qualify.
func (r *Registration) Verify(by string, now time.Time) error {
	if r.Status != StatusApproved {
		return ErrNotApproved
	}
	r.PaymentVerified = true
	r.VerifiedBy = &by
	r.VerifiedAt = &now
	return nil
}

// Unverify clears verification. It reports false when there was nothing to clear.
func (r *Registration) Unverify() bool {
	if !r.PaymentVerified {
		return false
	}
	r.clearVerification()
	return true
}

func (r *Registration) clearVerification() {
	r.PaymentVerified = false
	r.VerifiedBy = nil
	r.VerifiedAt = nil
}

// DaysRemaining is ceil((expiry - now) / 1 day), or Unbounded without expiry.
func DaysRemaining(r *Registration, now time.Time) int {
	if r.ExpiryDate == nil {
		return Unbounded
	}
	return int(math.Ceil(float64(r.ExpiryDate.Sub(now)) / float64(day)))
}

// IsExpired is true iff the expiry date is set and already in the past.
func IsExpired(r *Registration, now time.Time) bool {
	return r.ExpiryDate != nil && r.ExpiryDate.Before(now)
}

// Expiring pairs a registration with its computed countdown.
type Expiring struct {
	Registration  Registration
	DaysRemaining int
}

// ListExpiringSoon keeps pending registrations with 0 < days remaining <= windowDays,
// soonest first. windowDays <= 0 uses DefaultAlertWindowDays.
func ListExpiringSoon(regs []Registration, now time.Time, windowDays int) []Expiring {
	if windowDays <= 0 {
		windowDays = DefaultAlertWindowDays
	}
	out := make([]Expiring, 0)
	for i := range regs {
		if regs[i].Status != StatusPending {
			continue
		}
		d := DaysRemaining(&regs[i], now)
		if d > 0 && d <= windowDays {
			out = append(out, Expiring{Registration: regs[i], DaysRemaining: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysRemaining < out[j].DaysRemaining })
	return out
}

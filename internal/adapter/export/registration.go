package export

import (
	"strconv"
	"time"

	"esep-backend/internal/domain/registration"
)

const dateLayout = "2006-01-02"

func formatDate(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format(dateLayout)
}

func categoryName(r *registration.Registration) string {
	if r.Category == nil {
		return ""
	}
	return r.Category.NameEnglish
}

func location(r *registration.Registration) string {
	if r.Panchayath == nil {
		return ""
	}
	return r.Panchayath.Name + ", " + r.Panchayath.District
}

// RegistrationColumns is the full registration listing.
func RegistrationColumns(loc *time.Location) []Column[registration.Registration] {
	return []Column[registration.Registration]{
		{"Customer ID", func(r registration.Registration) string { return r.CustomerID }},
		{"Name", func(r registration.Registration) string { return r.FullName }},
		{"Mobile", func(r registration.Registration) string { return r.MobileNumber }},
		{"Address", func(r registration.Registration) string { return r.Address }},
		{"Ward", func(r registration.Registration) string { return r.Ward }},
		{"Category", func(r registration.Registration) string { return categoryName(&r) }},
		{"Location", func(r registration.Registration) string { return location(&r) }},
		{"Fee", func(r registration.Registration) string { return r.Fee.StringFixed(2) }},
		{"Status", func(r registration.Registration) string { return string(r.Status) }},
		{"Payment Verified", func(r registration.Registration) string { return strconv.FormatBool(r.PaymentVerified) }},
		{"Submitted", func(r registration.Registration) string { return formatDate(&r.CreatedAt, loc) }},
		{"Approved", func(r registration.Registration) string { return formatDate(r.ApprovedDate, loc) }},
		{"Expiry", func(r registration.Registration) string { return formatDate(r.ExpiryDate, loc) }},
	}
}

// ExpiringColumns is the layout of the expiry alert export. Location is the
// street address there, not the panchayath.
func ExpiringColumns(loc *time.Location) []Column[registration.Expiring] {
	return []Column[registration.Expiring]{
		{"Name", func(e registration.Expiring) string { return e.Registration.FullName }},
		{"Phone", func(e registration.Expiring) string { return e.Registration.MobileNumber }},
		{"Customer ID", func(e registration.Expiring) string { return e.Registration.CustomerID }},
		{"Category", func(e registration.Expiring) string {
			if name := categoryName(&e.Registration); name != "" {
				return name
			}
			return "Unknown"
		}},
		{"Location", func(e registration.Expiring) string { return e.Registration.Address }},
		{"Created Date", func(e registration.Expiring) string { return formatDate(&e.Registration.CreatedAt, loc) }},
		{"Days Remaining", func(e registration.Expiring) string { return strconv.Itoa(e.DaysRemaining) }},
	}
}

// StatusSummary counts registrations per status for the HTML header.
func StatusSummary(regs []registration.Registration) []string {
	counts := map[registration.Status]int{}
	for _, r := range regs {
		counts[r.Status]++
	}
	return []string{
		"Pending: " + strconv.Itoa(counts[registration.StatusPending]),
		"Approved: " + strconv.Itoa(counts[registration.StatusApproved]),
		"Rejected: " + strconv.Itoa(counts[registration.StatusRejected]),
	}
}

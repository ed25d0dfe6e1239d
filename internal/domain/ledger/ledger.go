// Package ledger derives the cash account from verified registrations. The
// balance is never stored; it is folded from the registration rows on read.
package ledger

import (
	"time"

	"esep-backend/internal/domain/registration"

	"github.com/shopspring/decimal"
)

// AccountName labels the single derived account.
const AccountName = "Registration Fees"

type Entry struct {
	RegistrationID string          `json:"registration_id"`
	CustomerID     string          `json:"customer_id"`
	FullName       string          `json:"full_name"`
	Amount         decimal.Decimal `json:"amount"`
	VerifiedBy     string          `json:"verified_by"`
	VerifiedAt     *time.Time      `json:"verified_at"`
}

type Account struct {
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Verified int             `json:"verified_count"`
	Entries  []Entry         `json:"entries"`
	AsOf     time.Time       `json:"as_of"`
}

// Balance is the sum of fees over registrations whose payment is verified.
func Balance(regs []registration.Registration) decimal.Decimal {
	total := decimal.Zero
	for _, r := range regs {
		if r.PaymentVerified {
			total = total.Add(r.Fee)
		}
	}
	return total
}

// Derive builds the account view for regs at asOf.
func Derive(regs []registration.Registration, asOf time.Time) Account {
	acc := Account{Name: AccountName, Balance: Balance(regs), AsOf: asOf, Entries: []Entry{}}
	for _, r := range regs {
		if !r.PaymentVerified {
			continue
		}
		e := Entry{
			RegistrationID: r.ID,
			CustomerID:     r.CustomerID,
			FullName:       r.FullName,
			Amount:         r.Fee,
			VerifiedAt:     r.VerifiedAt,
		}
		if r.VerifiedBy != nil {
			e.VerifiedBy = *r.VerifiedBy
		}
		acc.Entries = append(acc.Entries, e)
	}
	acc.Verified = len(acc.Entries)
	return acc
}

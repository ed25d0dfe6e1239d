package registration

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubmitInput struct {
	FullName             string  `json:"full_name"`
	MobileNumber         string  `json:"mobile_number"`
	Address              string  `json:"address"`
	Ward                 string  `json:"ward"`
	Agent                *string `json:"agent"`
	CategoryID           string  `json:"category_id"`
	PreferenceCategoryID *string `json:"preference_category_id"`
	PanchayathID         *string `json:"panchayath_id"`
}

// TransitionInput addresses one registration on behalf of an admin. A
// non-nil Version must match the stored version.
type TransitionInput struct {
	ID      string
	Actor   string
	Version *int64
}

// StatusView is what a citizen sees when looking up their registration.
type StatusView struct {
	CustomerID    string          `json:"customer_id"`
	FullName      string          `json:"full_name"`
	Status        string          `json:"status"`
	Category      string          `json:"category"`
	Fee           decimal.Decimal `json:"fee"`
	SubmittedAt   time.Time       `json:"submitted_at"`
	ApprovedDate  *time.Time      `json:"approved_date"`
	ExpiryDate    *time.Time      `json:"expiry_date"`
	DaysRemaining *int            `json:"days_remaining"`
	Expired       bool            `json:"expired"`
}

package registration

import (
	"time"

	"esep-backend/internal/domain/category"
	"esep-backend/internal/domain/errs"
	"esep-backend/internal/domain/panchayath"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

var (
	ErrNotFound          = errs.New(errs.ErrNotFound, "registration not found")
	ErrInvalidTransition = errs.New(errs.ErrInvalidTransition, "registration not in a state that allows this action")
	ErrNotApproved       = errs.New(errs.ErrInvalidTransition, "payment can only be verified on an approved registration")
	ErrStaleVersion      = errs.New(errs.ErrConflict, "registration was modified by someone else")
	ErrDuplicateCustomer = errs.New(errs.ErrDuplicate, "customer id already exists")
)

// Table: registrations
type Registration struct {
	ID                   string          `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	CustomerID           string          `gorm:"column:customer_id;size:32;not null;uniqueIndex:ux_registrations_customer_id" json:"customer_id"`
	FullName             string          `gorm:"column:full_name;size:255;not null" json:"full_name"`
	MobileNumber         string          `gorm:"column:mobile_number;size:20;not null;index" json:"mobile_number"`
	Address              string          `gorm:"column:address;type:text;not null" json:"address"`
	Ward                 string          `gorm:"column:ward;size:64;not null" json:"ward"`
	Agent                *string         `gorm:"column:agent;size:255" json:"agent"`
	CategoryID           string          `gorm:"column:category_id;type:char(36);not null;index" json:"category_id"`
	PreferenceCategoryID *string         `gorm:"column:preference_category_id;type:char(36);index" json:"preference_category_id"`
	PanchayathID         *string         `gorm:"column:panchayath_id;type:char(36);index" json:"panchayath_id"`
	Fee                  decimal.Decimal `gorm:"column:fee;type:decimal(12,2);not null;default:0" json:"fee"`
	Status               Status          `gorm:"column:status;size:16;not null;default:'pending';index" json:"status"`
	ApprovedDate         *time.Time      `gorm:"column:approved_date;index" json:"approved_date"`
	ApprovedBy           *string         `gorm:"column:approved_by;size:64" json:"approved_by"`
	ExpiryDate           *time.Time      `gorm:"column:expiry_date" json:"expiry_date"`
	PaymentVerified      bool            `gorm:"column:payment_verified;not null;default:false;index" json:"payment_verified"`
	VerifiedBy           *string         `gorm:"column:verified_by;size:64" json:"verified_by"`
	VerifiedAt           *time.Time      `gorm:"column:verified_at" json:"verified_at"`
	Version              int64           `gorm:"column:version;not null;default:1" json:"version"`
	CreatedAt            time.Time       `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Category           *category.Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	PreferenceCategory *category.Category     `gorm:"foreignKey:PreferenceCategoryID" json:"preference_category,omitempty"`
	Panchayath         *panchayath.Panchayath `gorm:"foreignKey:PanchayathID" json:"panchayath,omitempty"`
}

func (Registration) TableName() string { return "registrations" }

// Filter narrows list queries. Zero values mean "any".
type Filter struct {
	Status       Status
	CategoryID   string
	PanchayathID string
	// Search matches full name or customer id (case-insensitive) or mobile substring.
	Search string
	// Verified, when set, restricts to payment_verified = *Verified.
	Verified *bool
}

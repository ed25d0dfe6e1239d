package category

import (
	"time"

	"esep-backend/internal/domain/errs"

	"github.com/shopspring/decimal"
)

// DefaultExpiryDays applies when a category is missing or has no window set.
const DefaultExpiryDays = 30

var (
	ErrNotFound = errs.New(errs.ErrNotFound, "category not found")
	ErrInactive = errs.New(errs.ErrValidation, "category is not active")
	ErrInUse    = errs.New(errs.ErrInUse, "category is referenced by registrations")
)

// Table: categories
type Category struct {
	ID            string              `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	NameEnglish   string              `gorm:"column:name_english;size:255;not null" json:"name_english"`
	NameMalayalam string              `gorm:"column:name_malayalam;size:255;not null" json:"name_malayalam"`
	Description   string              `gorm:"column:description;type:text" json:"description"`
	ActualFee     decimal.NullDecimal `gorm:"column:actual_fee;type:decimal(12,2)" json:"actual_fee"`
	OfferFee      decimal.NullDecimal `gorm:"column:offer_fee;type:decimal(12,2)" json:"offer_fee"`
	ExpiryDays    *int                `gorm:"column:expiry_days;default:30" json:"expiry_days"`
	IsActive      bool                `gorm:"column:is_active;not null;index" json:"is_active"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Category) TableName() string { return "categories" }

// Validate checks the fee and expiry invariants.
func (c *Category) Validate() error {
	if c.NameEnglish == "" || c.NameMalayalam == "" {
		return errs.Validation("name_english and name_malayalam are required")
	}
	if c.ExpiryDays != nil && *c.ExpiryDays <= 0 {
		return errs.Validation("expiry_days must be greater than 0")
	}
	if c.ActualFee.Valid && c.ActualFee.Decimal.IsNegative() {
		return errs.Validation("actual_fee must not be negative")
	}
	if c.OfferFee.Valid && c.OfferFee.Decimal.IsNegative() {
		return errs.Validation("offer_fee must not be negative")
	}
	if c.ActualFee.Valid && c.OfferFee.Valid && c.OfferFee.Decimal.GreaterThan(c.ActualFee.Decimal) {
		return errs.Validation("offer_fee must not exceed actual_fee")
	}
	return nil
}

// ExpiryWindow returns the category's expiry window in days. A nil category
// or an unset window falls back to DefaultExpiryDays.
func ExpiryWindow(c *Category) int {
	if c == nil || c.ExpiryDays == nil || *c.ExpiryDays <= 0 {
		return DefaultExpiryDays
	}
	return *c.ExpiryDays
}

// EffectiveFee is what a citizen pays: the offer fee when it undercuts a
// positive actual fee, otherwise the actual fee, otherwise zero. An offer
// without an actual fee leaves the category free.
func (c *Category) EffectiveFee() decimal.Decimal {
	actual := decimal.Zero
	if c.ActualFee.Valid {
		actual = c.ActualFee.Decimal
	}
	if actual.IsPositive() && c.OfferFee.Valid && c.OfferFee.Decimal.IsPositive() &&
		c.OfferFee.Decimal.LessThan(actual) {
		return c.OfferFee.Decimal
	}
	return actual
}

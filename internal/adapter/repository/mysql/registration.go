package mysql

import (
	"context"
	"strings"

	"esep-backend/internal/domain/registration"

	"gorm.io/gorm"
)

type RegistrationRepository struct{ db *gorm.DB }

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

var _ registration.Repository = (*RegistrationRepository)(nil)

func (r *RegistrationRepository) withAssoc(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("PreferenceCategory").
		Preload("Panchayath")
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *registration.Registration) error {
	ensureID(&reg.ID)
	if reg.Status == "" {
		reg.Status = registration.StatusPending
	}
	if reg.Version == 0 {
		reg.Version = 1
	}
	return translate(insert(r.db.WithContext(ctx), reg), nil, registration.ErrDuplicateCustomer)
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*registration.Registration, error) {
	var out registration.Registration
	err := r.withAssoc(ctx).Where("id = ?", id).First(&out).Error
	if err != nil {
		return nil, translate(err, registration.ErrNotFound, nil)
	}
	return &out, nil
}

// FindByCustomerOrMobile matches the exact customer id or mobile number,
// newest first.
func (r *RegistrationRepository) FindByCustomerOrMobile(ctx context.Context, query string) ([]registration.Registration, error) {
	q := strings.TrimSpace(query)
	var out []registration.Registration
	err := r.withAssoc(ctx).
		Where("customer_id = ? OR mobile_number = ?", strings.ToUpper(q), q).
		Order("created_at DESC").
		Find(&out).Error
	return out, translate(err, nil, nil)
}

func (r *RegistrationRepository) CustomerIDExists(ctx context.Context, customerID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&registration.Registration{}).
		Where("customer_id = ?", customerID).
		Count(&n).Error
	return n > 0, translate(err, nil, nil)
}

func (r *RegistrationRepository) List(ctx context.Context, f registration.Filter) ([]registration.Registration, error) {
	q := r.withAssoc(ctx)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.CategoryID != "" {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.PanchayathID != "" {
		q = q.Where("panchayath_id = ?", f.PanchayathID)
	}
	if f.Verified != nil {
		q = q.Where("payment_verified = ?", *f.Verified)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR LOWER(customer_id) LIKE ? OR mobile_number LIKE ?", like, like, like)
	}
	var out []registration.Registration
	err := q.Order("created_at DESC").Order("id").Find(&out).Error
	return out, translate(err, nil, nil)
}

// SaveVersioned persists the mutable columns only when the stored version
// still matches reg.Version, then advances reg.Version.
func (r *RegistrationRepository) SaveVersioned(ctx context.Context, reg *registration.Registration) error {
	res := r.db.WithContext(ctx).
		Model(&registration.Registration{}).
		Where("id = ? AND version = ?", reg.ID, reg.Version).
		Updates(map[string]any{
			"full_name":              reg.FullName,
			"mobile_number":          reg.MobileNumber,
			"address":                reg.Address,
			"ward":                   reg.Ward,
			"agent":                  reg.Agent,
			"category_id":            reg.CategoryID,
			"preference_category_id": reg.PreferenceCategoryID,
			"panchayath_id":          reg.PanchayathID,
			"fee":                    reg.Fee,
			"status":                 reg.Status,
			"approved_date":          reg.ApprovedDate,
			"approved_by":            reg.ApprovedBy,
			"expiry_date":            reg.ExpiryDate,
			"payment_verified":       reg.PaymentVerified,
			"verified_by":            reg.VerifiedBy,
			"verified_at":            reg.VerifiedAt,
			"version":                reg.Version + 1,
		})
	if res.Error != nil {
		return translate(res.Error, nil, nil)
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := r.db.WithContext(ctx).Model(&registration.Registration{}).Where("id = ?", reg.ID).Count(&n).Error; err != nil {
			return translate(err, nil, nil)
		}
		if n == 0 {
			return registration.ErrNotFound
		}
		return registration.ErrStaleVersion
	}
	reg.Version++
	return nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&registration.Registration{})
	if res.Error != nil {
		return translate(res.Error, nil, nil)
	}
	if res.RowsAffected == 0 {
		return registration.ErrNotFound
	}
	return nil
}

func (r *RegistrationRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&registration.Registration{}).
		Where("category_id = ? OR preference_category_id = ?", categoryID, categoryID).
		Count(&n).Error
	return n, translate(err, nil, nil)
}

func (r *RegistrationRepository) CountByPanchayath(ctx context.Context, panchayathID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&registration.Registration{}).
		Where("panchayath_id = ?", panchayathID).
		Count(&n).Error
	return n, translate(err, nil, nil)
}

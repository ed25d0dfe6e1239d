package registrationmock

import (
	"context"

	domain "esep-backend/internal/domain/registration"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return context.Canceled; unset writes succeed.
type Repo struct {
	CreateFn                 func(ctx context.Context, r *domain.Registration) error
	GetByIDFn                func(ctx context.Context, id string) (*domain.Registration, error)
	FindByCustomerOrMobileFn func(ctx context.Context, query string) ([]domain.Registration, error)
	CustomerIDExistsFn       func(ctx context.Context, customerID string) (bool, error)
	ListFn                   func(ctx context.Context, f domain.Filter) ([]domain.Registration, error)
	SaveVersionedFn          func(ctx context.Context, r *domain.Registration) error
	DeleteFn                 func(ctx context.Context, id string) error
	CountByCategoryFn        func(ctx context.Context, categoryID string) (int64, error)
	CountByPanchayathFn      func(ctx context.Context, panchayathID string) (int64, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Registration) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) FindByCustomerOrMobile(ctx context.Context, query string) ([]domain.Registration, error) {
	if m.FindByCustomerOrMobileFn != nil {
		return m.FindByCustomerOrMobileFn(ctx, query)
	}
	return nil, context.Canceled
}

func (m *Repo) CustomerIDExists(ctx context.Context, customerID string) (bool, error) {
	if m.CustomerIDExistsFn != nil {
		return m.CustomerIDExistsFn(ctx, customerID)
	}
	return false, nil
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Registration, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveVersioned(ctx context.Context, r *domain.Registration) error {
	if m.SaveVersionedFn != nil {
		return m.SaveVersionedFn(ctx, r)
	}
	r.Version++
	return nil
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	if m.CountByCategoryFn != nil {
		return m.CountByCategoryFn(ctx, categoryID)
	}
	return 0, nil
}

func (m *Repo) CountByPanchayath(ctx context.Context, panchayathID string) (int64, error) {
	if m.CountByPanchayathFn != nil {
		return m.CountByPanchayathFn(ctx, panchayathID)
	}
	return 0, nil
}

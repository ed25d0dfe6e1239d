package registration

import "context"

type Repository interface {
	Create(ctx context.Context, r *Registration) error
	GetByID(ctx context.Context, id string) (*Registration, error)
	// FindByCustomerOrMobile matches an exact customer id or mobile number,
	// newest first.
	FindByCustomerOrMobile(ctx context.Context, query string) ([]Registration, error)
	CustomerIDExists(ctx context.Context, customerID string) (bool, error)
	List(ctx context.Context, f Filter) ([]Registration, error)
	// SaveVersioned persists lifecycle fields only if the stored version still
	// equals r.Version, then bumps r.Version. A lost race yields ErrStaleVersion.
	SaveVersioned(ctx context.Context, r *Registration) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	CountByPanchayath(ctx context.Context, panchayathID string) (int64, error)
}

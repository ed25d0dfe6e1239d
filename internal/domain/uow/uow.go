package uow

import (
	"context"

	"esep-backend/internal/domain/admin"
	"esep-backend/internal/domain/category"
	"esep-backend/internal/domain/panchayath"
	"esep-backend/internal/domain/registration"
)

// Repos are bound to the same transaction.
type Repos struct {
	Registrations registration.Repository
	Categories    category.Repository
	Panchayaths   panchayath.Repository
	Users         admin.UserRepository
	Permissions   admin.PermissionRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: load the registration first, then pass it in; a missing
	// row ends the tx with registration.ErrNotFound
	WithinRegistrationTx(ctx context.Context, id string, fn func(r Repos, reg *registration.Registration) error) error
}

package mysql

import (
	"context"

	"esep-backend/internal/domain/registration"
	"esep-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

var _ uow.UnitOfWork = (*GormUoW)(nil)

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Registrations: &RegistrationRepository{db: tx},
		Categories:    &CategoryRepository{db: tx},
		Panchayaths:   &PanchayathRepository{db: tx},
		Users:         &AdminUserRepository{db: tx},
		Permissions:   &PermissionRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

// WithinRegistrationTx loads the registration inside the transaction and
// hands it to fn. Concurrent writers are caught by SaveVersioned, not a row lock.
func (u *GormUoW) WithinRegistrationTx(ctx context.Context, id string, fn func(r uow.Repos, reg *registration.Registration) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		reg, err := r.Registrations.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return fn(r, reg)
	})
}

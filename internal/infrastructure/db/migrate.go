package db

import (
	"context"
	"errors"

	"esep-backend/internal/domain/admin"
	"esep-backend/internal/domain/category"
	"esep-backend/internal/domain/content"
	"esep-backend/internal/domain/panchayath"
	"esep-backend/internal/domain/registration"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Models lists every table the service owns, in dependency order.
func Models() []any {
	return []any{
		&category.Category{},
		&panchayath.Panchayath{},
		&registration.Registration{},
		&admin.AdminUser{},
		&admin.Permission{},
		&admin.UserPermission{},
		&content.Announcement{},
		&content.Utility{},
	}
}

// Migrate creates or alters the schema and seeds the permission catalogue.
// Re-running it is safe: catalogue rows are matched by name.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return err
	}
	return SeedPermissions(ctx, db)
}

func SeedPermissions(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range admin.Catalogue {
			var existing admin.Permission
			err := tx.Where("name = ?", p.Name).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			row := admin.Permission{
				ID:          uuid.NewString(),
				Name:        p.Name,
				Description: p.Description,
				IsActive:    true,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

package mysql

import (
	"errors"

	"esep-backend/internal/domain/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// translate maps gorm sentinels onto domain errors; notFound is returned
// for a missing row and dup for a unique-key violation.
func translate(err, notFound, dup error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey) && dup != nil:
		return dup
	}
	return errs.Store(err)
}

// insert creates the row only; preloaded associations are never upserted.
func insert(db *gorm.DB, v any) error {
	return db.Omit(clause.Associations).Create(v).Error
}

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

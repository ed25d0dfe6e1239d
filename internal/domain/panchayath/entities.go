package panchayath

import (
	"context"
	"time"

	"esep-backend/internal/domain/errs"
)

var (
	ErrNotFound = errs.New(errs.ErrNotFound, "panchayath not found")
	ErrInUse    = errs.New(errs.ErrInUse, "panchayath is referenced by registrations")
)

// Table: panchayaths
type Panchayath struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	District  string    `gorm:"column:district;size:255;not null" json:"district"`
	IsActive  bool      `gorm:"column:is_active;not null;index" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Panchayath) TableName() string { return "panchayaths" }

type Repository interface {
	Create(ctx context.Context, p *Panchayath) error
	Save(ctx context.Context, p *Panchayath) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Panchayath, error)
	List(ctx context.Context, activeOnly bool) ([]Panchayath, error)
}

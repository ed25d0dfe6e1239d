package mysql

import (
	"context"

	"esep-backend/internal/domain/panchayath"

	"gorm.io/gorm"
)

type PanchayathRepository struct{ db *gorm.DB }

func NewPanchayathRepository(db *gorm.DB) *PanchayathRepository {
	return &PanchayathRepository{db: db}
}

var _ panchayath.Repository = (*PanchayathRepository)(nil)

func (r *PanchayathRepository) Create(ctx context.Context, p *panchayath.Panchayath) error {
	ensureID(&p.ID)
	return translate(insert(r.db.WithContext(ctx), p), nil, nil)
}

func (r *PanchayathRepository) Save(ctx context.Context, p *panchayath.Panchayath) error {
	return translate(r.db.WithContext(ctx).Save(p).Error, nil, nil)
}

func (r *PanchayathRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&panchayath.Panchayath{})
	if res.Error != nil {
		return translate(res.Error, nil, nil)
	}
	if res.RowsAffected == 0 {
		return panchayath.ErrNotFound
	}
	return nil
}

func (r *PanchayathRepository) GetByID(ctx context.Context, id string) (*panchayath.Panchayath, error) {
	var out panchayath.Panchayath
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, panchayath.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *PanchayathRepository) List(ctx context.Context, activeOnly bool) ([]panchayath.Panchayath, error) {
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []panchayath.Panchayath
	err := q.Order("district").Order("name").Find(&out).Error
	return out, translate(err, nil, nil)
}

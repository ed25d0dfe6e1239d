package mysql

import (
	"context"

	"esep-backend/internal/domain/category"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{db: db} }

var _ category.Repository = (*CategoryRepository)(nil)

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	ensureID(&c.ID)
	if c.ExpiryDays == nil {
		d := category.DefaultExpiryDays
		c.ExpiryDays = &d
	}
	return translate(insert(r.db.WithContext(ctx), c), nil, nil)
}

func (r *CategoryRepository) Save(ctx context.Context, c *category.Category) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error, nil, nil)
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&category.Category{})
	if res.Error != nil {
		return translate(res.Error, nil, nil)
	}
	if res.RowsAffected == 0 {
		return category.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*category.Category, error) {
	var out category.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, category.ErrNotFound, nil)
	}
	return &out, nil
}

func (r *CategoryRepository) List(ctx context.Context, activeOnly bool) ([]category.Category, error) {
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []category.Category
	err := q.Order("name_english").Find(&out).Error
	return out, translate(err, nil, nil)
}

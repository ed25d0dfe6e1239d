package mysql

import (
	"context"

	"esep-backend/internal/domain/content"

	"gorm.io/gorm"
)

type ContentRepository struct{ db *gorm.DB }

func NewContentRepository(db *gorm.DB) *ContentRepository { return &ContentRepository{db: db} }

var _ content.Repository = (*ContentRepository)(nil)

func (r *ContentRepository) CreateAnnouncement(ctx context.Context, a *content.Announcement) error {
	ensureID(&a.ID)
	return translate(insert(r.db.WithContext(ctx), a), nil, nil)
}

func (r *ContentRepository) SaveAnnouncement(ctx context.Context, a *content.Announcement) error {
	return translate(r.db.WithContext(ctx).Save(a).Error, nil, nil)
}

func (r *ContentRepository) DeleteAnnouncement(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&content.Announcement{})
	return res.RowsAffected, translate(res.Error, nil, nil)
}

func (r *ContentRepository) GetAnnouncement(ctx context.Context, id string) (*content.Announcement, error) {
	var out content.Announcement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, content.ErrAnnouncementNotFound, nil)
	}
	return &out, nil
}

// ListAnnouncements returns newest first; limit <= 0 means no limit.
func (r *ContentRepository) ListAnnouncements(ctx context.Context, activeOnly bool, limit int) ([]content.Announcement, error) {
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []content.Announcement
	err := q.Order("created_at DESC").Find(&out).Error
	return out, translate(err, nil, nil)
}

func (r *ContentRepository) CreateUtility(ctx context.Context, u *content.Utility) error {
	ensureID(&u.ID)
	return translate(insert(r.db.WithContext(ctx), u), nil, nil)
}

func (r *ContentRepository) SaveUtility(ctx context.Context, u *content.Utility) error {
	return translate(r.db.WithContext(ctx).Save(u).Error, nil, nil)
}

func (r *ContentRepository) DeleteUtility(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&content.Utility{})
	return res.RowsAffected, translate(res.Error, nil, nil)
}

func (r *ContentRepository) GetUtility(ctx context.Context, id string) (*content.Utility, error) {
	var out content.Utility
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, content.ErrUtilityNotFound, nil)
	}
	return &out, nil
}

func (r *ContentRepository) ListUtilities(ctx context.Context, activeOnly bool, limit int) ([]content.Utility, error) {
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []content.Utility
	err := q.Order("name").Find(&out).Error
	return out, translate(err, nil, nil)
}

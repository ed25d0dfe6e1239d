package mysql

import (
	"context"

	"esep-backend/internal/domain/admin"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AdminUserRepository struct{ db *gorm.DB }

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository { return &AdminUserRepository{db: db} }

var _ admin.UserRepository = (*AdminUserRepository)(nil)

func (r *AdminUserRepository) Create(ctx context.Context, u *admin.AdminUser) error {
	ensureID(&u.ID)
	return translate(insert(r.db.WithContext(ctx), u), nil, admin.ErrUsernameTaken)
}

func (r *AdminUserRepository) Save(ctx context.Context, u *admin.AdminUser) error {
	return translate(r.db.WithContext(ctx).Save(u).Error, nil, admin.ErrUsernameTaken)
}

func (r *AdminUserRepository) GetByID(ctx context.Context, id string) (*admin.AdminUser, error) {
	var out admin.AdminUser
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, admin.ErrUserNotFound, nil)
	}
	return &out, nil
}

func (r *AdminUserRepository) GetByUsername(ctx context.Context, username string) (*admin.AdminUser, error) {
	var out admin.AdminUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&out).Error; err != nil {
		return nil, translate(err, admin.ErrUserNotFound, nil)
	}
	return &out, nil
}

func (r *AdminUserRepository) List(ctx context.Context) ([]admin.AdminUser, error) {
	var out []admin.AdminUser
	err := r.db.WithContext(ctx).Order("username").Find(&out).Error
	return out, translate(err, nil, nil)
}

func (r *AdminUserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&admin.AdminUser{}).Count(&n).Error
	return n, translate(err, nil, nil)
}

type PermissionRepository struct{ db *gorm.DB }

func NewPermissionRepository(db *gorm.DB) *PermissionRepository { return &PermissionRepository{db: db} }

var _ admin.PermissionRepository = (*PermissionRepository)(nil)

func (r *PermissionRepository) Create(ctx context.Context, p *admin.Permission) error {
	ensureID(&p.ID)
	return translate(insert(r.db.WithContext(ctx), p), nil, nil)
}

func (r *PermissionRepository) GetByID(ctx context.Context, id string) (*admin.Permission, error) {
	var out admin.Permission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, admin.ErrPermissionNotFound, nil)
	}
	return &out, nil
}

func (r *PermissionRepository) GetByName(ctx context.Context, name string) (*admin.Permission, error) {
	var out admin.Permission
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error; err != nil {
		return nil, translate(err, admin.ErrPermissionNotFound, nil)
	}
	return &out, nil
}

func (r *PermissionRepository) List(ctx context.Context, activeOnly bool) ([]admin.Permission, error) {
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []admin.Permission
	err := q.Order("name").Find(&out).Error
	return out, translate(err, nil, nil)
}

func (r *PermissionRepository) GrantsForUser(ctx context.Context, adminUserID string) ([]admin.UserPermission, error) {
	var out []admin.UserPermission
	err := r.db.WithContext(ctx).
		Preload("Permission").
		Where("admin_user_id = ?", adminUserID).
		Find(&out).Error
	return out, translate(err, nil, nil)
}

func (r *PermissionRepository) ListGrants(ctx context.Context) ([]admin.UserPermission, error) {
	var out []admin.UserPermission
	err := r.db.WithContext(ctx).
		Preload("AdminUser").
		Preload("Permission").
		Order("granted_at DESC").
		Find(&out).Error
	return out, translate(err, nil, nil)
}

func (r *PermissionRepository) GetGrant(ctx context.Context, adminUserID, permissionID string) (*admin.UserPermission, error) {
	var out admin.UserPermission
	err := r.db.WithContext(ctx).
		Where("admin_user_id = ? AND permission_id = ?", adminUserID, permissionID).
		First(&out).Error
	if err != nil {
		return nil, translate(err, admin.ErrPermissionNotFound, nil)
	}
	return &out, nil
}

func (r *PermissionRepository) CreateGrant(ctx context.Context, g *admin.UserPermission) error {
	ensureID(&g.ID)
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(g).Error
	return translate(err, nil, admin.ErrAlreadyGranted)
}

// DeleteGrant reports how many rows went away; zero is not an error.
func (r *PermissionRepository) DeleteGrant(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&admin.UserPermission{})
	return res.RowsAffected, translate(res.Error, nil, nil)
}

package adminmock

import (
	"context"

	"esep-backend/internal/domain/admin"
)

var (
	_ admin.UserRepository       = (*UserRepo)(nil)
	_ admin.PermissionRepository = (*PermissionRepo)(nil)
)

// UserRepo is a function-backed mock that satisfies admin.UserRepository.
type UserRepo struct {
	CreateFn        func(ctx context.Context, u *admin.AdminUser) error
	SaveFn          func(ctx context.Context, u *admin.AdminUser) error
	GetByIDFn       func(ctx context.Context, id string) (*admin.AdminUser, error)
	GetByUsernameFn func(ctx context.Context, username string) (*admin.AdminUser, error)
	ListFn          func(ctx context.Context) ([]admin.AdminUser, error)
	CountFn         func(ctx context.Context) (int64, error)
}

func (m *UserRepo) Create(ctx context.Context, u *admin.AdminUser) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *UserRepo) Save(ctx context.Context, u *admin.AdminUser) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *UserRepo) GetByID(ctx context.Context, id string) (*admin.AdminUser, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, admin.ErrUserNotFound
}

func (m *UserRepo) GetByUsername(ctx context.Context, username string) (*admin.AdminUser, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, admin.ErrUserNotFound
}

func (m *UserRepo) List(ctx context.Context) ([]admin.AdminUser, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *UserRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

// PermissionRepo is a function-backed mock that satisfies admin.PermissionRepository.
type PermissionRepo struct {
	CreateFn        func(ctx context.Context, p *admin.Permission) error
	GetByIDFn       func(ctx context.Context, id string) (*admin.Permission, error)
	GetByNameFn     func(ctx context.Context, name string) (*admin.Permission, error)
	ListFn          func(ctx context.Context, activeOnly bool) ([]admin.Permission, error)
	GrantsForUserFn func(ctx context.Context, adminUserID string) ([]admin.UserPermission, error)
	ListGrantsFn    func(ctx context.Context) ([]admin.UserPermission, error)
	GetGrantFn      func(ctx context.Context, adminUserID, permissionID string) (*admin.UserPermission, error)
	CreateGrantFn   func(ctx context.Context, g *admin.UserPermission) error
	DeleteGrantFn   func(ctx context.Context, id string) (int64, error)
}

func (m *PermissionRepo) Create(ctx context.Context, p *admin.Permission) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *PermissionRepo) GetByID(ctx context.Context, id string) (*admin.Permission, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, admin.ErrPermissionNotFound
}

func (m *PermissionRepo) GetByName(ctx context.Context, name string) (*admin.Permission, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, admin.ErrPermissionNotFound
}

func (m *PermissionRepo) List(ctx context.Context, activeOnly bool) ([]admin.Permission, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, activeOnly)
	}
	return nil, nil
}

func (m *PermissionRepo) GrantsForUser(ctx context.Context, adminUserID string) ([]admin.UserPermission, error) {
	if m.GrantsForUserFn != nil {
		return m.GrantsForUserFn(ctx, adminUserID)
	}
	return nil, nil
}

func (m *PermissionRepo) ListGrants(ctx context.Context) ([]admin.UserPermission, error) {
	if m.ListGrantsFn != nil {
		return m.ListGrantsFn(ctx)
	}
	return nil, nil
}

func (m *PermissionRepo) GetGrant(ctx context.Context, adminUserID, permissionID string) (*admin.UserPermission, error) {
	if m.GetGrantFn != nil {
		return m.GetGrantFn(ctx, adminUserID, permissionID)
	}
	return nil, admin.ErrPermissionNotFound
}

func (m *PermissionRepo) CreateGrant(ctx context.Context, g *admin.UserPermission) error {
	if m.CreateGrantFn != nil {
		return m.CreateGrantFn(ctx, g)
	}
	return nil
}

func (m *PermissionRepo) DeleteGrant(ctx context.Context, id string) (int64, error) {
	if m.DeleteGrantFn != nil {
		return m.DeleteGrantFn(ctx, id)
	}
	return 0, nil
}

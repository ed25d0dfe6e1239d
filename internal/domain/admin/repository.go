package admin

import "context"

type UserRepository interface {
	Create(ctx context.Context, u *AdminUser) error
	Save(ctx context.Context, u *AdminUser) error
	GetByID(ctx context.Context, id string) (*AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*AdminUser, error)
	List(ctx context.Context) ([]AdminUser, error)
	Count(ctx context.Context) (int64, error)
}

type PermissionRepository interface {
	Create(ctx context.Context, p *Permission) error
	GetByID(ctx context.Context, id string) (*Permission, error)
	GetByName(ctx context.Context, name string) (*Permission, error)
	List(ctx context.Context, activeOnly bool) ([]Permission, error)

	// Grants preloads Permission on every row.
	GrantsForUser(ctx context.Context, adminUserID string) ([]UserPermission, error)
	// ListGrants preloads AdminUser and Permission, newest first.
	ListGrants(ctx context.Context) ([]UserPermission, error)
	GetGrant(ctx context.Context, adminUserID, permissionID string) (*UserPermission, error)
	CreateGrant(ctx context.Context, g *UserPermission) error
	// DeleteGrant reports how many rows were removed.
	DeleteGrant(ctx context.Context, id string) (int64, error)
}

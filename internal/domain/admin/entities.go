package admin

import (
	"time"

	"esep-backend/internal/domain/errs"
)

var (
	ErrUserNotFound       = errs.New(errs.ErrNotFound, "admin user not found")
	ErrPermissionNotFound = errs.New(errs.ErrNotFound, "permission not found")
	ErrAlreadyGranted     = errs.New(errs.ErrDuplicate, "user already has this permission")
	ErrUsernameTaken      = errs.New(errs.ErrDuplicate, "username already exists")
	ErrInvalidCredentials = errs.New(errs.ErrUnauthorized, "invalid username or password")
	ErrInactive           = errs.New(errs.ErrUnauthorized, "admin user is not active")
	ErrMissingCapability  = errs.New(errs.ErrForbidden, "missing required permission")
	ErrPermissionInactive = errs.New(errs.ErrValidation, "permission is not active")
	ErrGranteeInactive    = errs.New(errs.ErrValidation, "admin user is not active")
)

// Table: admin_users
type AdminUser struct {
	ID           string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Username     string    `gorm:"column:username;size:64;not null;uniqueIndex:ux_admin_users_username" json:"username"`
	FullName     string    `gorm:"column:full_name;size:255;not null" json:"full_name"`
	Email        string    `gorm:"column:email;size:255" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	IsActive     bool      `gorm:"column:is_active;not null" json:"is_active"`
	IsSuperAdmin bool      `gorm:"column:is_super_admin;not null;default:false" json:"is_super_admin"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdminUser) TableName() string { return "admin_users" }

// Table: admin_permissions
type Permission struct {
	ID          string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Name        string    `gorm:"column:name;size:64;not null;uniqueIndex:ux_admin_permissions_name" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	IsActive    bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Permission) TableName() string { return "admin_permissions" }

// Table: admin_user_permissions, unique per (admin_user_id, permission_id).
type UserPermission struct {
	ID           string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	AdminUserID  string    `gorm:"column:admin_user_id;type:char(36);not null;uniqueIndex:ux_user_permission_pair" json:"admin_user_id"`
	PermissionID string    `gorm:"column:permission_id;type:char(36);not null;uniqueIndex:ux_user_permission_pair" json:"permission_id"`
	GrantedBy    string    `gorm:"column:granted_by;size:64" json:"granted_by"`
	GrantedAt    time.Time `gorm:"column:granted_at;not null" json:"granted_at"`

	AdminUser  *AdminUser  `gorm:"foreignKey:AdminUserID" json:"admin_user,omitempty"`
	Permission *Permission `gorm:"foreignKey:PermissionID" json:"permission,omitempty"`
}

func (UserPermission) TableName() string { return "admin_user_permissions" }

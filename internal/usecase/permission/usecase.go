package permission

import (
	"context"
	"errors"
	"time"

	"esep-backend/internal/domain/admin"
	"esep-backend/internal/domain/errs"
	"esep-backend/internal/domain/uow"
	"esep-backend/internal/infrastructure/logger"

	"github.com/sirupsen/logrus"
)

const module = "usecase.permission"

type Usecase struct {
	users admin.UserRepository
	perms admin.PermissionRepository
	uow   uow.UnitOfWork
	log   logrus.FieldLogger
	now   func() time.Time
}

type Option func(*Usecase)

func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

func WithLogger(l logrus.FieldLogger) Option { return func(u *Usecase) { u.log = l } }

func NewUsecase(users admin.UserRepository, perms admin.PermissionRepository, tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{
		users: users,
		perms: perms,
		uow:   tx,
		log:   logrus.StandardLogger(),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// PermissionsFor resolves the capability names an admin holds right now.
func (u *Usecase) PermissionsFor(ctx context.Context, adminID string) (admin.CapabilitySet, error) {
	user, err := u.users.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	return u.resolve(ctx, user)
}

// PermissionsForUser is PermissionsFor when the user row is already loaded.
func (u *Usecase) PermissionsForUser(ctx context.Context, user *admin.AdminUser) (admin.CapabilitySet, error) {
	return u.resolve(ctx, user)
}

func (u *Usecase) resolve(ctx context.Context, user *admin.AdminUser) (admin.CapabilitySet, error) {
	if !user.IsActive {
		return admin.CapabilitySet{}, nil
	}
	var (
		active []admin.Permission
		grants []admin.UserPermission
		err    error
	)
	if user.IsSuperAdmin {
		active, err = u.perms.List(ctx, true)
	} else {
		grants, err = u.perms.GrantsForUser(ctx, user.ID)
	}
	if err != nil {
		u.logStore("PermissionsFor", user.ID, err)
		return nil, err
	}
	return admin.Resolve(user, active, grants), nil
}

func (u *Usecase) HasAny(ctx context.Context, adminID string, required ...string) (bool, error) {
	set, err := u.PermissionsFor(ctx, adminID)
	if err != nil {
		return false, err
	}
	return set.HasAny(required...), nil
}

// Grant gives an admin one permission; granting the same pair twice fails.
func (u *Usecase) Grant(ctx context.Context, adminID, permissionID, grantor string) (*admin.UserPermission, error) {
	if adminID == "" || permissionID == "" {
		return nil, errs.Validation("admin_user_id and permission_id are required")
	}
	var out *admin.UserPermission
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		user, err := r.Users.GetByID(ctx, adminID)
		if err != nil {
			return err
		}
		if !user.IsActive {
			return admin.ErrGranteeInactive
		}
		perm, err := r.Permissions.GetByID(ctx, permissionID)
		if err != nil {
			return err
		}
		if !perm.IsActive {
			return admin.ErrPermissionInactive
		}
		if _, err := r.Permissions.GetGrant(ctx, adminID, permissionID); err == nil {
			return admin.ErrAlreadyGranted
		} else if !errors.Is(err, admin.ErrPermissionNotFound) {
			return err
		}
		g := &admin.UserPermission{
			AdminUserID:  adminID,
			PermissionID: permissionID,
			GrantedBy:    grantor,
			GrantedAt:    u.now(),
		}
		if err := r.Permissions.CreateGrant(ctx, g); err != nil {
			return err
		}
		g.AdminUser = user
		g.Permission = perm
		out = g
		return nil
	})
	if err != nil {
		u.logStore("Grant", map[string]string{"admin_user_id": adminID, "permission_id": permissionID}, err)
		return nil, err
	}
	return out, nil
}

// Revoke removes a grant. Revoking an absent grant is a no-op.
func (u *Usecase) Revoke(ctx context.Context, userPermissionID string) error {
	if _, err := u.perms.DeleteGrant(ctx, userPermissionID); err != nil {
		u.logStore("Revoke", userPermissionID, err)
		return err
	}
	return nil
}

func (u *Usecase) ListPermissions(ctx context.Context) ([]admin.Permission, error) {
	return u.perms.List(ctx, false)
}

func (u *Usecase) ListGrants(ctx context.Context) ([]admin.UserPermission, error) {
	return u.perms.ListGrants(ctx)
}

func (u *Usecase) logStore(funcName string, data any, err error) {
	if errors.Is(err, errs.ErrStore) {
		logger.LogError(u.log, module, funcName, "store", data, err)
	}
}

package permission

import (
	"context"
	"errors"
	"testing"
	"time"

	"esep-backend/internal/adapter/repository/mysql"
	"esep-backend/internal/domain/admin"
	"esep-backend/internal/domain/errs"
	"esep-backend/internal/domain/uow"
	dbinfra "esep-backend/internal/infrastructure/db"
	"esep-backend/internal/testutil/adminmock"
	"esep-backend/internal/testutil/testdb"
	"esep-backend/internal/testutil/uowmock"

	"gorm.io/gorm"
)

func newGate(t *testing.T) (*Usecase, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t)
	if err := dbinfra.SeedPermissions(context.Background(), db); err != nil {
		t.Fatalf("seed permissions: %v", err)
	}
	uc := NewUsecase(mysql.NewAdminUserRepository(db), mysql.NewPermissionRepository(db), mysql.NewGormUoW(db),
		WithClock(func() time.Time { return time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC) }))
	return uc, db
}

func createUser(t *testing.T, db *gorm.DB, username string, super bool) *admin.AdminUser {
	t.Helper()
	u := &admin.AdminUser{Username: username, FullName: username, PasswordHash: "x", IsActive: true, IsSuperAdmin: super}
	if err := mysql.NewAdminUserRepository(db).Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func permID(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()
	p, err := mysql.NewPermissionRepository(db).GetByName(context.Background(), name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	return p.ID
}

func TestSuperAdmin_GetsAllActiveWithoutGrants(t *testing.T) {
	uc, db := newGate(t)
	ctx := context.Background()
	root := createUser(t, db, "root", true)

	// deactivate one catalogue entry
	if err := db.Model(&admin.Permission{}).Where("name = ?", admin.CapManageContent).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	set, err := uc.PermissionsFor(ctx, root.ID)
	if err != nil {
		t.Fatalf("PermissionsFor: %v", err)
	}
	if len(set) != len(admin.Catalogue)-1 || set.Has(admin.CapManageContent) {
		t.Fatalf("super-admin set = %v", set.Names())
	}
}

func TestGrantRevoke_RoundTrip(t *testing.T) {
	uc, db := newGate(t)
	ctx := context.Background()
	clerk := createUser(t, db, "clerk", false)
	reports := permID(t, db, admin.CapViewReports)

	set, err := uc.PermissionsFor(ctx, clerk.ID)
	if err != nil || len(set) != 0 {
		t.Fatalf("fresh user set = %v, %v", set, err)
	}

	g, err := uc.Grant(ctx, clerk.ID, reports, "root")
	if err != nil {
		t.Fatalf("Grant: %v", err)
	}
	if g.GrantedBy != "root" || g.GrantedAt.IsZero() {
		t.Fatalf("unexpected grant: %+v", g)
	}
	if _, err := uc.Grant(ctx, clerk.ID, reports, "root"); !errors.Is(err, errs.ErrDuplicate) {
		t.Fatalf("second grant: want ErrDuplicate, got %v", err)
	}

	ok, err := uc.HasAny(ctx, clerk.ID, admin.CapManagePermissions, admin.CapViewReports)
	if err != nil || !ok {
		t.Fatalf("HasAny = %v, %v", ok, err)
	}

	if err := uc.Revoke(ctx, g.ID); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	var rows int64
	db.Model(&admin.UserPermission{}).Count(&rows)
	if rows != 0 {
		t.Fatalf("revoke must remove exactly one row, %d left", rows)
	}
	if ok, _ := uc.HasAny(ctx, clerk.ID, admin.CapViewReports); ok {
		t.Fatalf("permission still present after revoke")
	}

	// revoking again is a no-op
	if err := uc.Revoke(ctx, g.ID); err != nil {
		t.Fatalf("second Revoke: %v", err)
	}
}

func TestGrant_Preconditions(t *testing.T) {
	uc, db := newGate(t)
	ctx := context.Background()
	clerk := createUser(t, db, "clerk", false)
	reports := permID(t, db, admin.CapViewReports)

	if _, err := uc.Grant(ctx, "", reports, "root"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("blank admin: want ErrValidation, got %v", err)
	}
	if _, err := uc.Grant(ctx, "missing", reports, "root"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("missing admin: want ErrNotFound, got %v", err)
	}
	if _, err := uc.Grant(ctx, clerk.ID, "missing", "root"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("missing permission: want ErrNotFound, got %v", err)
	}

	db.Model(&admin.Permission{}).Where("id = ?", reports).Update("is_active", false)
	if _, err := uc.Grant(ctx, clerk.ID, reports, "root"); !errors.Is(err, admin.ErrPermissionInactive) {
		t.Fatalf("inactive permission: want ErrPermissionInactive, got %v", err)
	}
}

func TestPermissionsFor_InactiveUserHasNothing(t *testing.T) {
	users := &adminmock.UserRepo{
		GetByIDFn: func(context.Context, string) (*admin.AdminUser, error) {
			return &admin.AdminUser{ID: "u1", IsActive: false, IsSuperAdmin: true}, nil
		},
	}
	perms := &adminmock.PermissionRepo{
		ListFn: func(context.Context, bool) ([]admin.Permission, error) {
			t.Fatalf("inactive users must not load permissions")
			return nil, nil
		},
	}
	uc := NewUsecase(users, perms, uowmock.Passthrough(uow.Repos{Users: users, Permissions: perms}))
	set, err := uc.PermissionsFor(context.Background(), "u1")
	if err != nil || len(set) != 0 {
		t.Fatalf("set = %v, %v", set, err)
	}
}

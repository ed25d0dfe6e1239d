package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"esep-backend/internal/domain/registration"

	"github.com/shopspring/decimal"
)

func TestRegistration_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewRegistrationRepository(db)
	ctx := context.Background()

	cat := seedCategory(t, db, "Farmer", 250)
	p := seedPanchayath(t, db, "Tirur")

	in := makeRegistration("Anu", "9876543210", cat.ID, time.Now())
	in.PanchayathID = &p.ID
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(in.ID) != 36 || in.Version != 1 {
		t.Fatalf("Create did not assign id/version: %+v", in)
	}

	got, err := repo.GetByID(ctx, in.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.CustomerID != in.CustomerID || got.Status != registration.StatusPending {
		t.Errorf("unexpected row: %+v", got)
	}
	if got.Category == nil || got.Category.NameEnglish != "Farmer" {
		t.Errorf("category not preloaded: %+v", got.Category)
	}
	if got.Panchayath == nil || got.Panchayath.Name != "Tirur" {
		t.Errorf("panchayath not preloaded: %+v", got.Panchayath)
	}
	if !got.Fee.Equal(decimal.NewFromInt(100)) {
		t.Errorf("fee = %s, want 100", got.Fee)
	}
}

func TestRegistration_GetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	_, err := NewRegistrationRepository(db).GetByID(context.Background(), "nope")
	if !errors.Is(err, registration.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistration_DuplicateCustomerID(t *testing.T) {
	db := openTestDB(t)
	repo := NewRegistrationRepository(db)
	ctx := context.Background()
	cat := seedCategory(t, db, "Farmer", 250)

	a := makeRegistration("A", "9000000001", cat.ID, time.Now())
	b := makeRegistration("B", "9000000001", cat.ID, time.Now())
	b.CustomerID = a.CustomerID

	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create a: %v", err)
	}
	if err := repo.Create(ctx, b); !errors.Is(err, registration.ErrDuplicateCustomer) {
		t.Fatalf("expected ErrDuplicateCustomer, got %v", err)
	}

	exists, err := repo.CustomerIDExists(ctx, a.CustomerID)
	if err != nil || !exists {
		t.Fatalf("CustomerIDExists = %v, %v", exists, err)
	}
	exists, err = repo.CustomerIDExists(ctx, "ESEP0000XXXXXX")
	if err != nil || exists {
		t.Fatalf("CustomerIDExists(unknown) = %v, %v", exists, err)
	}
}

func TestRegistration_FindByCustomerOrMobile(t *testing.T) {
	db := openTestDB(t)
	repo := NewRegistrationRepository(db)
	ctx := context.Background()
	cat := seedCategory(t, db, "Farmer", 250)
	now := time.Now()

	older := makeRegistration("Old", "9111111111", cat.ID, now.Add(-time.Hour))
	newer := makeRegistration("New", "9111111111", cat.ID, now)
	other := makeRegistration("Other", "9222222222", cat.ID, now)
	for _, r := range []*registration.Registration{older, newer, other} {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	byMobile, err := repo.FindByCustomerOrMobile(ctx, " 9111111111 ")
	if err != nil {
		t.Fatalf("FindByCustomerOrMobile: %v", err)
	}
	if len(byMobile) != 2 || byMobile[0].ID != newer.ID {
		t.Fatalf("by mobile: got %d rows, first=%v", len(byMobile), byMobile)
	}

	byCustomer, err := repo.FindByCustomerOrMobile(ctx, other.CustomerID)
	if err != nil {
		t.Fatalf("FindByCustomerOrMobile: %v", err)
	}
	if len(byCustomer) != 1 || byCustomer[0].ID != other.ID {
		t.Fatalf("by customer: %+v", byCustomer)
	}

	none, err := repo.FindByCustomerOrMobile(ctx, "0000")
	if err != nil || len(none) != 0 {
		t.Fatalf("expected no rows, got %d (%v)", len(none), err)
	}
}

func TestRegistration_ListFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewRegistrationRepository(db)
	ctx := context.Background()
	farm := seedCategory(t, db, "Farmer", 250)
	shop := seedCategory(t, db, "Shop", 500)
	p := seedPanchayath(t, db, "Tirur")
	now := time.Now()

	a := makeRegistration("Anu Thomas", "9000000001", farm.ID, now.Add(-2*time.Hour))
	a.PanchayathID = &p.ID
	b := makeRegistration("Biju", "9000000002", shop.ID, now.Add(-time.Hour))
	b.Status = registration.StatusApproved
	b.PaymentVerified = true
	c := makeRegistration("Chithra", "9000000003", farm.ID, now)
	c.Status = registration.StatusRejected
	for _, r := range []*registration.Registration{a, b, c} {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	verified := true
	tests := []struct {
		name   string
		filter registration.Filter
		want   []string
	}{
		{"all newest first", registration.Filter{}, []string{c.ID, b.ID, a.ID}},
		{"status", registration.Filter{Status: registration.StatusApproved}, []string{b.ID}},
		{"category", registration.Filter{CategoryID: farm.ID}, []string{c.ID, a.ID}},
		{"panchayath", registration.Filter{PanchayathID: p.ID}, []string{a.ID}},
		{"verified", registration.Filter{Verified: &verified}, []string{b.ID}},
		{"search name case-insensitive", registration.Filter{Search: "THOMAS"}, []string{a.ID}},
		{"search mobile", registration.Filter{Search: "0003"}, []string{c.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rows, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].ID != tt.want[i] {
					t.Fatalf("row %d = %s, want %s", i, got[i].ID, tt.want[i])
				}
			}
		})
	}
}

func TestRegistration_SaveVersioned(t *testing.T) {
	db := openTestDB(t)
	repo := NewRegistrationRepository(db)
	ctx := context.Background()
	cat := seedCategory(t, db, "Farmer", 250)

	r := makeRegistration("Anu", "9000000001", cat.ID, time.Now())
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// a second reader holding the same version
	stale, err := repo.GetByID(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	now := time.Now().UTC()
	if err := r.Approve("admin", cat, now); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if err := repo.SaveVersioned(ctx, r); err != nil {
		t.Fatalf("SaveVersioned: %v", err)
	}
	if r.Version != 2 {
		t.Fatalf("version = %d, want 2", r.Version)
	}

	if err := stale.Reject("other", now); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if err := repo.SaveVersioned(ctx, stale); !errors.Is(err, registration.ErrStaleVersion) {
		t.Fatalf("expected ErrStaleVersion, got %v", err)
	}

	got, err := repo.GetByID(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != registration.StatusApproved || got.ApprovedBy == nil || *got.ApprovedBy != "admin" {
		t.Fatalf("unexpected persisted row: %+v", got)
	}
	if got.ExpiryDate == nil || got.Version != 2 {
		t.Fatalf("expiry/version not persisted: %+v", got)
	}

	missing := *r
	missing.ID = "missing"
	if err := repo.SaveVersioned(ctx, &missing); !errors.Is(err, registration.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistration_DeleteAndCounts(t *testing.T) {
	db := openTestDB(t)
	repo := NewRegistrationRepository(db)
	ctx := context.Background()
	cat := seedCategory(t, db, "Farmer", 250)
	pref := seedCategory(t, db, "Shop", 100)
	p := seedPanchayath(t, db, "Tirur")

	r := makeRegistration("Anu", "9000000001", cat.ID, time.Now())
	r.PreferenceCategoryID = &pref.ID
	r.PanchayathID = &p.ID
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if n, err := repo.CountByCategory(ctx, cat.ID); err != nil || n != 1 {
		t.Fatalf("CountByCategory = %d, %v", n, err)
	}
	if n, err := repo.CountByCategory(ctx, pref.ID); err != nil || n != 1 {
		t.Fatalf("CountByCategory(preference) = %d, %v", n, err)
	}
	if n, err := repo.CountByPanchayath(ctx, p.ID); err != nil || n != 1 {
		t.Fatalf("CountByPanchayath = %d, %v", n, err)
	}

	if err := repo.Delete(ctx, r.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, r.ID); !errors.Is(err, registration.ErrNotFound) {
		t.Fatalf("second Delete: expected ErrNotFound, got %v", err)
	}
}

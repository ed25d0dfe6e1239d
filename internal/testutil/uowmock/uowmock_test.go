package uowmock

import (
	"context"
	"errors"
	"testing"

	"esep-backend/internal/domain/registration"
	"esep-backend/internal/domain/uow"
	"esep-backend/internal/testutil/registrationmock"
)

func TestUoW_Default_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := New()
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinRegistrationTx(ctx, "r1", func(uow.Repos, *registration.Registration) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinRegistrationTx default: want errUnimplemented, got %v", err)
	}
}

func TestPassthrough_LoadsRegistration(t *testing.T) {
	ctx := context.Background()
	regs := &registrationmock.Repo{
		GetByIDFn: func(_ context.Context, id string) (*registration.Registration, error) {
			if id != "r1" {
				return nil, registration.ErrNotFound
			}
			return &registration.Registration{ID: "r1"}, nil
		},
	}
	m := Passthrough(uow.Repos{Registrations: regs})

	called := false
	err := m.WithinRegistrationTx(ctx, "r1", func(r uow.Repos, reg *registration.Registration) error {
		called = true
		if r.Registrations != regs || reg.ID != "r1" {
			t.Fatalf("repos/registration not forwarded: %+v", reg)
		}
		return nil
	})
	if err != nil || !called {
		t.Fatalf("WithinRegistrationTx: err=%v called=%v", err, called)
	}

	err = m.WithinRegistrationTx(ctx, "missing", func(uow.Repos, *registration.Registration) error {
		t.Fatalf("callback must not run for a missing registration")
		return nil
	})
	if !errors.Is(err, registration.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUoW_FluentSetters_And_Reset(t *testing.T) {
	m := New().
		WithWithinTx(func(context.Context, func(uow.Repos) error) error { return nil }).
		WithWithinRegistrationTx(func(context.Context, string, func(uow.Repos, *registration.Registration) error) error { return nil })
	if m.WithinTxFn == nil || m.WithinRegistrationTxFn == nil {
		t.Fatalf("fluent setters didn't assign funcs")
	}
	m.Reset()
	if m.WithinTxFn != nil || m.WithinRegistrationTxFn != nil {
		t.Fatalf("Reset should clear function fields")
	}
}

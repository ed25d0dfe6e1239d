package uowmock

import (
	"context"
	"errors"

	"esep-backend/internal/domain/registration"
	"esep-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn             func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinRegistrationTxFn func(ctx context.Context, id string, fn func(r uow.Repos, reg *registration.Registration) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough runs callbacks directly against repos, loading the
// registration for WithinRegistrationTx from repos.Registrations.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinRegistrationTxFn: func(ctx context.Context, id string, fn func(uow.Repos, *registration.Registration) error) error {
			reg, err := repos.Registrations.GetByID(ctx, id)
			if err != nil {
				return err
			}
			return fn(repos, reg)
		},
	}
}

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}

func (m *UoW) WithWithinRegistrationTx(fn func(context.Context, string, func(uow.Repos, *registration.Registration) error) error) *UoW {
	m.WithinRegistrationTxFn = fn
	return m
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinRegistrationTx(ctx context.Context, id string, fn func(r uow.Repos, reg *registration.Registration) error) error {
	if m.WithinRegistrationTxFn != nil {
		return m.WithinRegistrationTxFn(ctx, id, fn)
	}
	return errUnimplemented
}

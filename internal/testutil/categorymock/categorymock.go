package categorymock

import (
	"context"

	"esep-backend/internal/domain/category"
	"esep-backend/internal/domain/panchayath"
)

var (
	_ category.Repository   = (*Repo)(nil)
	_ panchayath.Repository = (*PanchayathRepo)(nil)
)

// Repo is a function-backed mock that satisfies category.Repository.
type Repo struct {
	CreateFn  func(ctx context.Context, c *category.Category) error
	SaveFn    func(ctx context.Context, c *category.Category) error
	DeleteFn  func(ctx context.Context, id string) error
	GetByIDFn func(ctx context.Context, id string) (*category.Category, error)
	ListFn    func(ctx context.Context, activeOnly bool) ([]category.Category, error)
}

func (m *Repo) Create(ctx context.Context, c *category.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, c *category.Category) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*category.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, category.ErrNotFound
}

func (m *Repo) List(ctx context.Context, activeOnly bool) ([]category.Category, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, activeOnly)
	}
	return nil, nil
}

// PanchayathRepo is a function-backed mock that satisfies panchayath.Repository.
type PanchayathRepo struct {
	CreateFn  func(ctx context.Context, p *panchayath.Panchayath) error
	SaveFn    func(ctx context.Context, p *panchayath.Panchayath) error
	DeleteFn  func(ctx context.Context, id string) error
	GetByIDFn func(ctx context.Context, id string) (*panchayath.Panchayath, error)
	ListFn    func(ctx context.Context, activeOnly bool) ([]panchayath.Panchayath, error)
}

func (m *PanchayathRepo) Create(ctx context.Context, p *panchayath.Panchayath) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *PanchayathRepo) Save(ctx context.Context, p *panchayath.Panchayath) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *PanchayathRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *PanchayathRepo) GetByID(ctx context.Context, id string) (*panchayath.Panchayath, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, panchayath.ErrNotFound
}

func (m *PanchayathRepo) List(ctx context.Context, activeOnly bool) ([]panchayath.Panchayath, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, activeOnly)
	}
	return nil, nil
}

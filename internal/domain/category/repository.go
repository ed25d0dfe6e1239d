package category

import "context"

type Repository interface {
	Create(ctx context.Context, c *Category) error
	Save(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Category, error)
	// List orders by english name; activeOnly hides deactivated rows.
	List(ctx context.Context, activeOnly bool) ([]Category, error)
}

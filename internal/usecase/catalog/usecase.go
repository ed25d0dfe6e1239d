package catalog

import (
	"context"
	"errors"
	"strings"

	"esep-backend/internal/domain/category"
	"esep-backend/internal/domain/errs"
	"esep-backend/internal/domain/panchayath"
	"esep-backend/internal/domain/uow"
	"esep-backend/internal/infrastructure/logger"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const module = "usecase.catalog"

type CategoryInput struct {
	NameEnglish   string           `json:"name_english"`
	NameMalayalam string           `json:"name_malayalam"`
	Description   string           `json:"description"`
	ActualFee     *decimal.Decimal `json:"actual_fee"`
	OfferFee      *decimal.Decimal `json:"offer_fee"`
	ExpiryDays    *int             `json:"expiry_days"`
	IsActive      *bool            `json:"is_active"`
}

type PanchayathInput struct {
	Name     string `json:"name"`
	District string `json:"district"`
	IsActive *bool  `json:"is_active"`
}

// Usecase manages the reference data registrations point at.
type Usecase struct {
	categories  category.Repository
	panchayaths panchayath.Repository
	tx          uow.UnitOfWork
	log         logrus.FieldLogger
}

func NewUsecase(categories category.Repository, panchayaths panchayath.Repository, tx uow.UnitOfWork, l logrus.FieldLogger) *Usecase {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Usecase{categories: categories, panchayaths: panchayaths, tx: tx, log: l}
}

func nullable(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func (in CategoryInput) apply(c *category.Category) {
	c.NameEnglish = strings.TrimSpace(in.NameEnglish)
	c.NameMalayalam = strings.TrimSpace(in.NameMalayalam)
	c.Description = strings.TrimSpace(in.Description)
	c.ActualFee = nullable(in.ActualFee)
	c.OfferFee = nullable(in.OfferFee)
	c.ExpiryDays = in.ExpiryDays
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
}

func (u *Usecase) CreateCategory(ctx context.Context, in CategoryInput) (*category.Category, error) {
	c := &category.Category{IsActive: true}
	in.apply(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := u.categories.Create(ctx, c); err != nil {
		u.logStore("CreateCategory", in, err)
		return nil, err
	}
	return c, nil
}

func (u *Usecase) UpdateCategory(ctx context.Context, id string, in CategoryInput) (*category.Category, error) {
	c, err := u.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := u.categories.Save(ctx, c); err != nil {
		u.logStore("UpdateCategory", id, err)
		return nil, err
	}
	return c, nil
}

func (u *Usecase) SetCategoryActive(ctx context.Context, id string, active bool) (*category.Category, error) {
	c, err := u.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.IsActive = active
	if err := u.categories.Save(ctx, c); err != nil {
		u.logStore("SetCategoryActive", id, err)
		return nil, err
	}
	return c, nil
}

// DeleteCategory refuses while any registration still references the category.
func (u *Usecase) DeleteCategory(ctx context.Context, id string) error {
	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Categories.GetByID(ctx, id); err != nil {
			return err
		}
		n, err := r.Registrations.CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return category.ErrInUse
		}
		return r.Categories.Delete(ctx, id)
	})
	u.logStore("DeleteCategory", id, err)
	return err
}

func (u *Usecase) GetCategory(ctx context.Context, id string) (*category.Category, error) {
	return u.categories.GetByID(ctx, id)
}

func (u *Usecase) ListCategories(ctx context.Context, activeOnly bool) ([]category.Category, error) {
	return u.categories.List(ctx, activeOnly)
}

func (in PanchayathInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.District) == "" {
		return errs.Validation("name and district are required")
	}
	return nil
}

func (u *Usecase) CreatePanchayath(ctx context.Context, in PanchayathInput) (*panchayath.Panchayath, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	p := &panchayath.Panchayath{
		Name:     strings.TrimSpace(in.Name),
		District: strings.TrimSpace(in.District),
		IsActive: in.IsActive == nil || *in.IsActive,
	}
	if err := u.panchayaths.Create(ctx, p); err != nil {
		u.logStore("CreatePanchayath", in, err)
		return nil, err
	}
	return p, nil
}

func (u *Usecase) UpdatePanchayath(ctx context.Context, id string, in PanchayathInput) (*panchayath.Panchayath, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	p, err := u.panchayaths.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = strings.TrimSpace(in.Name)
	p.District = strings.TrimSpace(in.District)
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if err := u.panchayaths.Save(ctx, p); err != nil {
		u.logStore("UpdatePanchayath", id, err)
		return nil, err
	}
	return p, nil
}

func (u *Usecase) DeletePanchayath(ctx context.Context, id string) error {
	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Panchayaths.GetByID(ctx, id); err != nil {
			return err
		}
		n, err := r.Registrations.CountByPanchayath(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return panchayath.ErrInUse
		}
		return r.Panchayaths.Delete(ctx, id)
	})
	u.logStore("DeletePanchayath", id, err)
	return err
}

func (u *Usecase) GetPanchayath(ctx context.Context, id string) (*panchayath.Panchayath, error) {
	return u.panchayaths.GetByID(ctx, id)
}

func (u *Usecase) ListPanchayaths(ctx context.Context, activeOnly bool) ([]panchayath.Panchayath, error) {
	return u.panchayaths.List(ctx, activeOnly)
}

func (u *Usecase) logStore(funcName string, data any, err error) {
	if errors.Is(err, errs.ErrStore) {
		logger.LogError(u.log, module, funcName, "store", data, err)
	}
}

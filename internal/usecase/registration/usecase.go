package registration

import (
	"context"
	"errors"
	"strings"
	"time"

	"esep-backend/internal/domain/category"
	"esep-backend/internal/domain/errs"
	"esep-backend/internal/domain/panchayath"
	"esep-backend/internal/domain/registration"
	"esep-backend/internal/domain/uow"
	"esep-backend/internal/infrastructure/logger"
	"esep-backend/internal/infrastructure/metrics"
	"esep-backend/pkg/id"

	"github.com/sirupsen/logrus"
)

const module = "usecase.registration"

// customerIDAttempts bounds regeneration when a random suffix collides.
const customerIDAttempts = 5

type Usecase struct {
	repo      registration.Repository
	uow       uow.UnitOfWork
	log       logrus.FieldLogger
	metrics   *metrics.Metrics
	now       func() time.Time
	alertDays int
	// expiryDays applies when the category is gone, inactive or has no window.
	expiryDays int
	newID      func(mobile string) string
}

type Option func(*Usecase)

func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

func WithLogger(l logrus.FieldLogger) Option { return func(u *Usecase) { u.log = l } }

func WithMetrics(m *metrics.Metrics) Option { return func(u *Usecase) { u.metrics = m } }

func WithAlertDays(days int) Option { return func(u *Usecase) { u.alertDays = days } }

func WithDefaultExpiryDays(days int) Option { return func(u *Usecase) { u.expiryDays = days } }

// WithCustomerIDs replaces the customer id generator.
func WithCustomerIDs(gen func(mobile string) string) Option {
	return func(u *Usecase) { u.newID = gen }
}

func NewUsecase(repo registration.Repository, tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{
		repo:       repo,
		uow:        tx,
		log:        logrus.StandardLogger(),
		now:        func() time.Time { return time.Now().UTC() },
		alertDays:  registration.DefaultAlertWindowDays,
		expiryDays: category.DefaultExpiryDays,
		newID:      id.NewCustomerID,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (in *SubmitInput) normalize() {
	in.FullName = strings.TrimSpace(in.FullName)
	in.MobileNumber = strings.TrimSpace(in.MobileNumber)
	in.Address = strings.TrimSpace(in.Address)
	in.Ward = strings.TrimSpace(in.Ward)
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	in.Agent = blankToNil(in.Agent)
	in.PreferenceCategoryID = blankToNil(in.PreferenceCategoryID)
	in.PanchayathID = blankToNil(in.PanchayathID)
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (in SubmitInput) validate() error {
	var missing []string
	for _, f := range []struct{ name, v string }{
		{"full_name", in.FullName},
		{"mobile_number", in.MobileNumber},
		{"address", in.Address},
		{"ward", in.Ward},
		{"category_id", in.CategoryID},
	} {
		if f.v == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return errs.Validation("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Submit records a citizen registration as pending with a fresh customer id.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*registration.Registration, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	var out *registration.Registration
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cat, err := r.Categories.GetByID(ctx, in.CategoryID)
		if errors.Is(err, category.ErrNotFound) {
			return errs.Validation("category %s does not exist", in.CategoryID)
		}
		if err != nil {
			return err
		}
		if !cat.IsActive {
			return category.ErrInactive
		}
		if in.PreferenceCategoryID != nil {
			if _, err := r.Categories.GetByID(ctx, *in.PreferenceCategoryID); errors.Is(err, category.ErrNotFound) {
				return errs.Validation("preference category %s does not exist", *in.PreferenceCategoryID)
			} else if err != nil {
				return err
			}
		}
		if in.PanchayathID != nil {
			if _, err := r.Panchayaths.GetByID(ctx, *in.PanchayathID); errors.Is(err, panchayath.ErrNotFound) {
				return errs.Validation("panchayath %s does not exist", *in.PanchayathID)
			} else if err != nil {
				return err
			}
		}

		customerID, err := u.freeCustomerID(ctx, r.Registrations, in.MobileNumber)
		if err != nil {
			return err
		}

		now := u.now()
		expiry := now.AddDate(0, 0, u.expiryWindow(cat))
		reg := &registration.Registration{
			CustomerID:           customerID,
			FullName:             in.FullName,
			MobileNumber:         in.MobileNumber,
			Address:              in.Address,
			Ward:                 in.Ward,
			Agent:                in.Agent,
			CategoryID:           cat.ID,
			PreferenceCategoryID: in.PreferenceCategoryID,
			PanchayathID:         in.PanchayathID,
			Fee:                  cat.EffectiveFee(),
			Status:               registration.StatusPending,
			ExpiryDate:           &expiry,
			Version:              1,
			CreatedAt:            now,
		}
		if err := r.Registrations.Create(ctx, reg); err != nil {
			return err
		}
		reg.Category = cat
		out = reg
		return nil
	})
	if err != nil {
		u.logStore("Submit", in.MobileNumber, err)
		return nil, err
	}
	u.metrics.IncSubmitted()
	return out, nil
}

func (u *Usecase) freeCustomerID(ctx context.Context, repo registration.Repository, mobile string) (string, error) {
	for i := 0; i < customerIDAttempts; i++ {
		cid := u.newID(mobile)
		taken, err := repo.CustomerIDExists(ctx, cid)
		if err != nil {
			return "", err
		}
		if !taken {
			return cid, nil
		}
	}
	return "", registration.ErrDuplicateCustomer
}

// transition loads, checks the caller's version, mutates and saves in one tx.
func (u *Usecase) transition(ctx context.Context, funcName string, in TransitionInput, mutate func(reg *registration.Registration) error) (*registration.Registration, error) {
	var out *registration.Registration
	err := u.uow.WithinRegistrationTx(ctx, in.ID, func(r uow.Repos, reg *registration.Registration) error {
		if in.Version != nil && *in.Version != reg.Version {
			return registration.ErrStaleVersion
		}
		if err := mutate(reg); err != nil {
			return err
		}
		if err := r.Registrations.SaveVersioned(ctx, reg); err != nil {
			return err
		}
		out = reg
		return nil
	})
	if err != nil {
		u.logStore(funcName, in.ID, err)
		return nil, err
	}
	return out, nil
}

// expiryWindow is the category's window, or the configured default when the
// category is gone, inactive or has none.
func (u *Usecase) expiryWindow(cat *category.Category) int {
	if cat == nil || !cat.IsActive || cat.ExpiryDays == nil || *cat.ExpiryDays <= 0 {
		return u.expiryDays
	}
	return *cat.ExpiryDays
}

// Approve moves a pending registration to approved. Registrations submitted
// with an expiry keep it; older rows without one get the category window.
func (u *Usecase) Approve(ctx context.Context, in TransitionInput) (*registration.Registration, error) {
	reg, err := u.transition(ctx, "Approve", in, func(reg *registration.Registration) error {
		days := u.expiryWindow(reg.Category)
		return reg.Approve(in.Actor, &category.Category{ExpiryDays: &days}, u.now())
	})
	if err == nil {
		u.metrics.IncTransition(string(registration.StatusApproved))
	}
	return reg, err
}

func (u *Usecase) Reject(ctx context.Context, in TransitionInput) (*registration.Registration, error) {
	reg, err := u.transition(ctx, "Reject", in, func(reg *registration.Registration) error {
		return reg.Reject(in.Actor, u.now())
	})
	if err == nil {
		u.metrics.IncTransition(string(registration.StatusRejected))
	}
	return reg, err
}

func (u *Usecase) Restore(ctx context.Context, in TransitionInput) (*registration.Registration, error) {
	reg, err := u.transition(ctx, "Restore", in, func(reg *registration.Registration) error {
		return reg.Restore()
	})
	if err == nil {
		u.metrics.IncTransition(string(registration.StatusPending))
	}
	return reg, err
}

// Delete removes the row for good.
func (u *Usecase) Delete(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		u.logStore("Delete", id, err)
		return err
	}
	return nil
}

func (u *Usecase) Get(ctx context.Context, id string) (*registration.Registration, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *Usecase) List(ctx context.Context, f registration.Filter) ([]registration.Registration, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, errs.Validation("unknown status %q", f.Status)
	}
	regs, err := u.repo.List(ctx, f)
	if err != nil {
		u.logStore("List", f, err)
		return nil, err
	}
	return regs, nil
}

// ExpiringSoon returns pending registrations inside the alert window,
// narrowed by the category/panchayath/search parts of f.
func (u *Usecase) ExpiringSoon(ctx context.Context, f registration.Filter) ([]registration.Expiring, error) {
	f.Status = registration.StatusPending
	regs, err := u.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return registration.ListExpiringSoon(regs, u.now(), u.alertDays), nil
}

// Lookup finds registrations by customer id or mobile number for the public status page.
func (u *Usecase) Lookup(ctx context.Context, query string) ([]StatusView, error) {
	q := strings.TrimSpace(query)
	if len(q) < 4 {
		return nil, errs.Validation("query must be a customer id or mobile number")
	}
	regs, err := u.repo.FindByCustomerOrMobile(ctx, q)
	if err != nil {
		u.logStore("Lookup", nil, err)
		return nil, err
	}
	now := u.now()
	out := make([]StatusView, 0, len(regs))
	for i := range regs {
		out = append(out, toStatusView(&regs[i], now))
	}
	return out, nil
}

func toStatusView(r *registration.Registration, now time.Time) StatusView {
	v := StatusView{
		CustomerID:   r.CustomerID,
		FullName:     r.FullName,
		Status:       string(r.Status),
		Fee:          r.Fee,
		SubmittedAt:  r.CreatedAt,
		ApprovedDate: r.ApprovedDate,
		ExpiryDate:   r.ExpiryDate,
		Expired:      registration.IsExpired(r, now),
	}
	if r.Category != nil {
		v.Category = r.Category.NameEnglish
	}
	if d := registration.DaysRemaining(r, now); d != registration.Unbounded {
		v.DaysRemaining = &d
	}
	return v
}

// logStore records persistence failures; domain outcomes are left to the caller.
func (u *Usecase) logStore(funcName string, data any, err error) {
	if errors.Is(err, errs.ErrStore) {
		logger.LogError(u.log, module, funcName, "store", data, err)
	}
}

package ledger

import (
	"context"
	"errors"
	"time"

	"esep-backend/internal/domain/errs"
	"esep-backend/internal/domain/ledger"
	"esep-backend/internal/domain/registration"
	"esep-backend/internal/domain/uow"
	"esep-backend/internal/infrastructure/logger"
	"esep-backend/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

const module = "usecase.ledger"

type Usecase struct {
	repo    registration.Repository
	uow     uow.UnitOfWork
	log     logrus.FieldLogger
	metrics *metrics.Metrics
	now     func() time.Time
}

type Option func(*Usecase)

func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

func WithLogger(l logrus.FieldLogger) Option { return func(u *Usecase) { u.log = l } }

func WithMetrics(m *metrics.Metrics) Option { return func(u *Usecase) { u.metrics = m } }

func NewUsecase(repo registration.Repository, tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{
		repo: repo,
		uow:  tx,
		log:  logrus.StandardLogger(),
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Verify marks an approved registration's fee as received.
func (u *Usecase) Verify(ctx context.Context, id, verifier string, version *int64) (*registration.Registration, error) {
	var out *registration.Registration
	err := u.uow.WithinRegistrationTx(ctx, id, func(r uow.Repos, reg *registration.Registration) error {
		if version != nil && *version != reg.Version {
			return registration.ErrStaleVersion
		}
		if err := reg.Verify(verifier, u.now()); err != nil {
			return err
		}
		if err := r.Registrations.SaveVersioned(ctx, reg); err != nil {
			return err
		}
		out = reg
		return nil
	})
	if err != nil {
		u.logStore("Verify", id, err)
		return nil, err
	}
	u.metrics.IncVerification("verify")
	return out, nil
}

// Unverify clears verification. A registration that is not verified is
// returned unchanged and nothing is written.
func (u *Usecase) Unverify(ctx context.Context, id string, version *int64) (*registration.Registration, error) {
	var out *registration.Registration
	changed := false
	err := u.uow.WithinRegistrationTx(ctx, id, func(r uow.Repos, reg *registration.Registration) error {
		if version != nil && *version != reg.Version {
			return registration.ErrStaleVersion
		}
		out = reg
		if !reg.Unverify() {
			return nil
		}
		changed = true
		return r.Registrations.SaveVersioned(ctx, reg)
	})
	if err != nil {
		u.logStore("Unverify", id, err)
		return nil, err
	}
	if changed {
		u.metrics.IncVerification("unverify")
	}
	return out, nil
}

// Account folds the verified registrations into the cash account.
func (u *Usecase) Account(ctx context.Context) (ledger.Account, error) {
	verified := true
	regs, err := u.repo.List(ctx, registration.Filter{Verified: &verified})
	if err != nil {
		u.logStore("Account", nil, err)
		return ledger.Account{}, err
	}
	return ledger.Derive(regs, u.now()), nil
}

func (u *Usecase) logStore(funcName string, data any, err error) {
	if errors.Is(err, errs.ErrStore) {
		logger.LogError(u.log, module, funcName, "store", data, err)
	}
}

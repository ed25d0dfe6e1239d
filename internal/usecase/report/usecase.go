package report

import (
	"context"
	"errors"
	"time"

	"esep-backend/internal/domain/errs"
	"esep-backend/internal/domain/registration"
	"esep-backend/internal/domain/report"
	"esep-backend/internal/infrastructure/logger"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const module = "usecase.report"

// DateLayout is the accepted form of from/to query bounds.
const DateLayout = "2006-01-02"

type Summary struct {
	report.Summary
	PendingAmount decimal.Decimal `json:"pending_amount"`
	From          *time.Time      `json:"from"`
	To            *time.Time      `json:"to"`
}

type Usecase struct {
	repo registration.Repository
	loc  *time.Location
	log  logrus.FieldLogger
}

func NewUsecase(repo registration.Repository, loc *time.Location, l logrus.FieldLogger) *Usecase {
	if loc == nil {
		loc = time.UTC
	}
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Usecase{repo: repo, loc: loc, log: l}
}

// ParseRange reads optional YYYY-MM-DD bounds in the service time zone.
func (u *Usecase) ParseRange(from, to string) (report.Range, error) {
	rng := report.Range{Loc: u.loc}
	if from != "" {
		t, err := time.ParseInLocation(DateLayout, from, u.loc)
		if err != nil {
			return rng, errs.Validation("from must be YYYY-MM-DD")
		}
		rng.From = &t
	}
	if to != "" {
		t, err := time.ParseInLocation(DateLayout, to, u.loc)
		if err != nil {
			return rng, errs.Validation("to must be YYYY-MM-DD")
		}
		rng.To = &t
	}
	if rng.From != nil && rng.To != nil && rng.To.Before(*rng.From) {
		return rng, errs.Validation("to must not be before from")
	}
	return rng, nil
}

// Summary aggregates approved registrations in rng and the pending amount
// over all registrations. An empty range yields an empty aggregate.
func (u *Usecase) Summary(ctx context.Context, rng report.Range) (*Summary, error) {
	regs, err := u.repo.List(ctx, registration.Filter{})
	if err != nil {
		if errors.Is(err, errs.ErrStore) {
			logger.LogError(u.log, module, "Summary", "store", nil, err)
		}
		return nil, err
	}
	return &Summary{
		Summary:       report.Aggregate(regs, rng),
		PendingAmount: report.PendingAmount(regs),
		From:          rng.From,
		To:            rng.To,
	}, nil
}

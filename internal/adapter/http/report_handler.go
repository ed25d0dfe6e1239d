package http

import (
	"net/http"

	ucReport "esep-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *ucReport.Usecase }

func NewReportHandler(uc *ucReport.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

type summaryReq struct {
	From string `query:"from" validate:"omitempty,date"`
	To   string `query:"to"   validate:"omitempty,date"`
}

// Summary aggregates registrations created inside [from, to]. With neither
// bound the result is empty.
func (h *ReportHandler) Summary(c echo.Context) error {
	var req summaryReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	rng, err := h.uc.ParseRange(req.From, req.To)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Summary(c.Request().Context(), rng)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

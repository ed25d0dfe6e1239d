package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"esep-backend/internal/adapter/export"
	"esep-backend/internal/domain/errs"
	"esep-backend/internal/domain/registration"
	ucLedger "esep-backend/internal/usecase/ledger"
	ucRegistration "esep-backend/internal/usecase/registration"

	"github.com/labstack/echo/v4"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RegistrationHandler serves the admin registration, ledger and export routes.
type RegistrationHandler struct {
	reg    *ucRegistration.Usecase
	ledger *ucLedger.Usecase
	loc    *time.Location
	now    func() time.Time
}

func NewRegistrationHandler(reg *ucRegistration.Usecase, ledger *ucLedger.Usecase, loc *time.Location) *RegistrationHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &RegistrationHandler{reg: reg, ledger: ledger, loc: loc, now: time.Now}
}

func parseFilter(c echo.Context) (registration.Filter, error) {
	f := registration.Filter{
		Status:       registration.Status(strings.ToLower(strings.TrimSpace(c.QueryParam("status")))),
		CategoryID:   strings.TrimSpace(c.QueryParam("category_id")),
		PanchayathID: strings.TrimSpace(c.QueryParam("panchayath_id")),
		Search:       strings.TrimSpace(c.QueryParam("search")),
	}
	if raw := c.QueryParam("verified"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return f, errs.Validation("verified must be true or false")
		}
		f.Verified = &v
	}
	return f, nil
}

type transitionReq struct {
	Version *int64 `json:"version" validate:"omitempty,gte=1"`
}

func (h *RegistrationHandler) transitionInput(c echo.Context) (ucRegistration.TransitionInput, bool, error) {
	var req transitionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return ucRegistration.TransitionInput{}, false, err
	}
	return ucRegistration.TransitionInput{ID: c.Param("id"), Actor: actor(c), Version: req.Version}, true, nil
}

func (h *RegistrationHandler) List(c echo.Context) error {
	f, err := parseFilter(c)
	if err != nil {
		return respondError(c, err)
	}
	regs, err := h.reg.List(c.Request().Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, regs)
}

func (h *RegistrationHandler) Get(c echo.Context) error {
	reg, err := h.reg.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reg)
}

func (h *RegistrationHandler) Approve(c echo.Context) error {
	in, ok, err := h.transitionInput(c)
	if !ok {
		return err
	}
	reg, err := h.reg.Approve(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reg)
}

func (h *RegistrationHandler) Reject(c echo.Context) error {
	in, ok, err := h.transitionInput(c)
	if !ok {
		return err
	}
	reg, err := h.reg.Reject(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reg)
}

func (h *RegistrationHandler) Restore(c echo.Context) error {
	in, ok, err := h.transitionInput(c)
	if !ok {
		return err
	}
	reg, err := h.reg.Restore(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reg)
}

func (h *RegistrationHandler) Delete(c echo.Context) error {
	if err := h.reg.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RegistrationHandler) Expiring(c echo.Context) error {
	f, err := parseFilter(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.reg.ExpiringSoon(c.Request().Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RegistrationHandler) Verify(c echo.Context) error {
	var req transitionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	reg, err := h.ledger.Verify(c.Request().Context(), c.Param("id"), actor(c), req.Version)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reg)
}

func (h *RegistrationHandler) Unverify(c echo.Context) error {
	var version *int64
	if raw := c.QueryParam("version"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 1 {
			return respondError(c, errs.Validation("version must be a positive integer"))
		}
		version = &v
	}
	reg, err := h.ledger.Unverify(c.Request().Context(), c.Param("id"), version)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reg)
}

func (h *RegistrationHandler) Ledger(c echo.Context) error {
	acct, err := h.ledger.Account(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, acct)
}

func (h *RegistrationHandler) attachment(c echo.Context, name, format, mime string, body []byte) error {
	filename := fmt.Sprintf("%s-%s.%s", name, h.now().In(h.loc).Format("20060102"), format)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, mime, body)
}

// Export renders the filtered registration list as csv, html or xlsx.
func (h *RegistrationHandler) Export(format string) echo.HandlerFunc {
	return func(c echo.Context) error {
		f, err := parseFilter(c)
		if err != nil {
			return respondError(c, err)
		}
		regs, err := h.reg.List(c.Request().Context(), f)
		if err != nil {
			return respondError(c, err)
		}

		cols := export.RegistrationColumns(h.loc)
		var buf bytes.Buffer
		var mime string
		switch format {
		case "csv":
			mime = "text/csv; charset=utf-8"
			err = export.WriteCSV(&buf, cols, regs)
		case "html":
			doc := export.Document{
				Title:       "Registrations",
				GeneratedAt: h.now().In(h.loc),
				Summary:     export.StatusSummary(regs),
			}
			mime = echo.MIMETextHTMLCharsetUTF8
			err = export.WriteHTML(&buf, doc, cols, regs)
		case "xlsx":
			mime = mimeXLSX
			err = export.WriteXLSX(&buf, "Registrations", cols, regs)
		default:
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown export format"})
		}
		if err != nil {
			return respondError(c, err)
		}
		return h.attachment(c, "registrations", format, mime, buf.Bytes())
	}
}

// ExportExpiring renders the expiry alert list as csv or html.
func (h *RegistrationHandler) ExportExpiring(format string) echo.HandlerFunc {
	return func(c echo.Context) error {
		f, err := parseFilter(c)
		if err != nil {
			return respondError(c, err)
		}
		rows, err := h.reg.ExpiringSoon(c.Request().Context(), f)
		if err != nil {
			return respondError(c, err)
		}

		cols := export.ExpiringColumns(h.loc)
		var buf bytes.Buffer
		var mime string
		switch format {
		case "csv":
			mime = "text/csv; charset=utf-8"
			err = export.WriteCSV(&buf, cols, rows)
		case "html":
			doc := export.Document{Title: "Registrations Expiring Soon", GeneratedAt: h.now().In(h.loc)}
			mime = echo.MIMETextHTMLCharsetUTF8
			err = export.WriteHTML(&buf, doc, cols, rows)
		default:
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown export format"})
		}
		if err != nil {
			return respondError(c, err)
		}
		return h.attachment(c, "expiring", format, mime, buf.Bytes())
	}
}

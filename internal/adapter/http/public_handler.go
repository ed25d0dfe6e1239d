package http

import (
	"net/http"

	"esep-backend/internal/usecase/catalog"
	"esep-backend/internal/usecase/content"
	ucRegistration "esep-backend/internal/usecase/registration"

	"github.com/labstack/echo/v4"
)

// PublicHandler serves the citizen-facing endpoints.
type PublicHandler struct {
	reg     *ucRegistration.Usecase
	catalog *catalog.Usecase
	content *content.Usecase
}

func NewPublicHandler(reg *ucRegistration.Usecase, cat *catalog.Usecase, cnt *content.Usecase) *PublicHandler {
	return &PublicHandler{reg: reg, catalog: cat, content: cnt}
}

type submitRegistrationReq struct {
	FullName             string `json:"full_name"              validate:"required,max=255"`
	MobileNumber         string `json:"mobile_number"          validate:"required,mobile"`
	Address              string `json:"address"                validate:"required"`
	Ward                 string `json:"ward"                   validate:"required,max=64"`
	Agent                string `json:"agent"                  validate:"omitempty,max=255"`
	CategoryID           string `json:"category_id"            validate:"required,uuid"`
	PreferenceCategoryID string `json:"preference_category_id" validate:"omitempty,uuid"`
	PanchayathID         string `json:"panchayath_id"          validate:"omitempty,uuid"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (h *PublicHandler) SubmitRegistration(c echo.Context) error {
	var req submitRegistrationReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	reg, err := h.reg.Submit(c.Request().Context(), ucRegistration.SubmitInput{
		FullName:             req.FullName,
		MobileNumber:         req.MobileNumber,
		Address:              req.Address,
		Ward:                 req.Ward,
		Agent:                optional(req.Agent),
		CategoryID:           req.CategoryID,
		PreferenceCategoryID: optional(req.PreferenceCategoryID),
		PanchayathID:         optional(req.PanchayathID),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, reg)
}

func (h *PublicHandler) LookupStatus(c echo.Context) error {
	views, err := h.reg.Lookup(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *PublicHandler) Categories(c echo.Context) error {
	out, err := h.catalog.ListCategories(c.Request().Context(), true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PublicHandler) Panchayaths(c echo.Context) error {
	out, err := h.catalog.ListPanchayaths(c.Request().Context(), true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PublicHandler) Announcements(c echo.Context) error {
	out, err := h.content.PublicAnnouncements(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PublicHandler) Utilities(c echo.Context) error {
	out, err := h.content.PublicUtilities(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

package http

import (
	"net/http"

	"esep-backend/internal/usecase/catalog"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct{ uc *catalog.Usecase }

func NewCatalogHandler(uc *catalog.Usecase) *CatalogHandler { return &CatalogHandler{uc: uc} }

type categoryReq struct {
	NameEnglish   string           `json:"name_english"   validate:"required,max=255"`
	NameMalayalam string           `json:"name_malayalam" validate:"required,max=255"`
	Description   string           `json:"description"`
	ActualFee     *decimal.Decimal `json:"actual_fee"     validate:"omitempty,dec2"`
	OfferFee      *decimal.Decimal `json:"offer_fee"      validate:"omitempty,dec2"`
	ExpiryDays    *int             `json:"expiry_days"    validate:"omitempty,gte=1,lte=3650"`
	IsActive      *bool            `json:"is_active"`
}

type panchayathReq struct {
	Name     string `json:"name"     validate:"required,max=255"`
	District string `json:"district" validate:"required,max=255"`
	IsActive *bool  `json:"is_active"`
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	out, err := h.uc.ListCategories(c.Request().Context(), c.QueryParam("active") == "true")
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) GetCategory(c echo.Context) error {
	out, err := h.uc.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.CreateCategory(c.Request().Context(), catalog.CategoryInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	var req categoryReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.UpdateCategory(c.Request().Context(), c.Param("id"), catalog.CategoryInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) SetCategoryActive(c echo.Context) error {
	var req activeReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.SetCategoryActive(c.Request().Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.uc.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) ListPanchayaths(c echo.Context) error {
	out, err := h.uc.ListPanchayaths(c.Request().Context(), c.QueryParam("active") == "true")
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) CreatePanchayath(c echo.Context) error {
	var req panchayathReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.CreatePanchayath(c.Request().Context(), catalog.PanchayathInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CatalogHandler) UpdatePanchayath(c echo.Context) error {
	var req panchayathReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.UpdatePanchayath(c.Request().Context(), c.Param("id"), catalog.PanchayathInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) SetPanchayathActive(c echo.Context) error {
	var req activeReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	ctx := c.Request().Context()
	p, err := h.uc.GetPanchayath(ctx, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdatePanchayath(ctx, p.ID, catalog.PanchayathInput{Name: p.Name, District: p.District, IsActive: req.IsActive})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) DeletePanchayath(c echo.Context) error {
	if err := h.uc.DeletePanchayath(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

package http

import (
	"net/http"

	"esep-backend/internal/usecase/content"

	"github.com/labstack/echo/v4"
)

type ContentHandler struct{ uc *content.Usecase }

func NewContentHandler(uc *content.Usecase) *ContentHandler { return &ContentHandler{uc: uc} }

type announcementReq struct {
	Title    string `json:"title"   validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

type utilityReq struct {
	Name        string `json:"name" validate:"required,max=255"`
	URL         string `json:"url"  validate:"required,url"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

func (h *ContentHandler) ListAnnouncements(c echo.Context) error {
	out, err := h.uc.ListAnnouncements(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContentHandler) CreateAnnouncement(c echo.Context) error {
	var req announcementReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.CreateAnnouncement(c.Request().Context(), content.AnnouncementInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ContentHandler) UpdateAnnouncement(c echo.Context) error {
	var req announcementReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.UpdateAnnouncement(c.Request().Context(), c.Param("id"), content.AnnouncementInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContentHandler) DeleteAnnouncement(c echo.Context) error {
	if err := h.uc.DeleteAnnouncement(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ContentHandler) ListUtilities(c echo.Context) error {
	out, err := h.uc.ListUtilities(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContentHandler) CreateUtility(c echo.Context) error {
	var req utilityReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.CreateUtility(c.Request().Context(), content.UtilityInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ContentHandler) UpdateUtility(c echo.Context) error {
	var req utilityReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.UpdateUtility(c.Request().Context(), c.Param("id"), content.UtilityInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContentHandler) DeleteUtility(c echo.Context) error {
	if err := h.uc.DeleteUtility(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

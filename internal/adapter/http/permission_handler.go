package http

import (
	"net/http"

	"esep-backend/internal/usecase/permission"

	"github.com/labstack/echo/v4"
)

type PermissionHandler struct{ uc *permission.Usecase }

func NewPermissionHandler(uc *permission.Usecase) *PermissionHandler {
	return &PermissionHandler{uc: uc}
}

type grantReq struct {
	AdminUserID  string `json:"admin_user_id" validate:"required"`
	PermissionID string `json:"permission_id" validate:"required"`
}

func (h *PermissionHandler) ListPermissions(c echo.Context) error {
	out, err := h.uc.ListPermissions(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PermissionHandler) ListGrants(c echo.Context) error {
	out, err := h.uc.ListGrants(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PermissionHandler) Grant(c echo.Context) error {
	var req grantReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.Grant(c.Request().Context(), req.AdminUserID, req.PermissionID, actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *PermissionHandler) Revoke(c echo.Context) error {
	if err := h.uc.Revoke(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

package http

import (
	"net/http"
	"time"

	mw "esep-backend/internal/adapter/middleware"
	"esep-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), mw.SessionFrom(c)); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type sessionView struct {
	AdminID      string    `json:"admin_id"`
	Username     string    `json:"username"`
	IsSuperAdmin bool      `json:"is_super_admin"`
	Permissions  []string  `json:"permissions"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (h *AuthHandler) Me(c echo.Context) error {
	s := mw.SessionFrom(c)
	if s == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not logged in"})
	}
	return c.JSON(http.StatusOK, sessionView{
		AdminID:      s.AdminID,
		Username:     s.Username,
		IsSuperAdmin: s.IsSuperAdmin,
		Permissions:  s.Permissions.Names(),
		ExpiresAt:    s.ExpiresAt,
	})
}

type createUserReq struct {
	Username     string `json:"username"       validate:"required,min=3,max=64"`
	FullName     string `json:"full_name"      validate:"required,max=255"`
	Email        string `json:"email"          validate:"omitempty,email"`
	Password     string `json:"password"       validate:"required,min=8"`
	IsSuperAdmin bool   `json:"is_super_admin"`
}

func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AuthHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	u, err := h.uc.CreateUser(c.Request().Context(), auth.CreateUserInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

type activeReq struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func (h *AuthHandler) SetUserActive(c echo.Context) error {
	var req activeReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	u, err := h.uc.SetUserActive(c.Request().Context(), mw.SessionFrom(c), c.Param("id"), *req.IsActive)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// actor names the admin recorded on approvals, verifications and grants.
func actor(c echo.Context) string {
	if s := mw.SessionFrom(c); s != nil {
		return s.Username
	}
	return ""
}

package http

import (
	"net/http"

	mw "esep-backend/internal/adapter/middleware"
	"esep-backend/internal/domain/admin"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Health        *Handler
	Public        *PublicHandler
	Auth          *AuthHandler
	Registrations *RegistrationHandler
	Catalog       *CatalogHandler
	Reports       *ReportHandler
	Permissions   *PermissionHandler
	Content       *ContentHandler
}

// RouteDeps are the cross-cutting pieces Register mounts around the handlers.
type RouteDeps struct {
	Session     echo.MiddlewareFunc
	Idempotency echo.MiddlewareFunc
	Metrics     http.Handler
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc { return next }

// Register mounts every route on e.
func Register(e *echo.Echo, h Handlers, d RouteDeps) {
	idem := d.Idempotency
	if idem == nil {
		idem = passthrough
	}

	e.GET("/health", h.Health.Health)
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics))
	}

	pub := e.Group("/public")
	pub.GET("/categories", h.Public.Categories)
	pub.GET("/panchayaths", h.Public.Panchayaths)
	pub.GET("/announcements", h.Public.Announcements)
	pub.GET("/utilities", h.Public.Utilities)
	pub.GET("/registrations/status", h.Public.LookupStatus)
	pub.POST("/registrations", h.Public.SubmitRegistration, idem)

	e.POST("/admin/login", h.Auth.Login)

	adm := e.Group("/admin", d.Session, idem)
	adm.POST("/logout", h.Auth.Logout)
	adm.GET("/me", h.Auth.Me)

	need := mw.RequirePermission

	regs := adm.Group("/registrations")
	manage := need(admin.CapManageRegistrations)
	regs.GET("", h.Registrations.List, manage)
	regs.GET("/expiring", h.Registrations.Expiring, manage)
	regs.GET("/export.csv", h.Registrations.Export("csv"), manage)
	regs.GET("/export.html", h.Registrations.Export("html"), manage)
	regs.GET("/export.xlsx", h.Registrations.Export("xlsx"), manage)
	regs.GET("/expiring/export.csv", h.Registrations.ExportExpiring("csv"), manage)
	regs.GET("/expiring/export.html", h.Registrations.ExportExpiring("html"), manage)
	regs.GET("/:id", h.Registrations.Get, need(admin.CapManageRegistrations, admin.CapVerifyPayments))
	regs.POST("/:id/approve", h.Registrations.Approve, manage)
	regs.POST("/:id/reject", h.Registrations.Reject, manage)
	regs.POST("/:id/restore", h.Registrations.Restore, manage)
	regs.DELETE("/:id", h.Registrations.Delete, manage)
	regs.POST("/:id/verify", h.Registrations.Verify, need(admin.CapVerifyPayments))
	regs.DELETE("/:id/verify", h.Registrations.Unverify, need(admin.CapVerifyPayments))

	adm.GET("/ledger", h.Registrations.Ledger, need(admin.CapViewAccounts, admin.CapVerifyPayments))

	cats := adm.Group("/categories", need(admin.CapManageCategories))
	cats.GET("", h.Catalog.ListCategories)
	cats.POST("", h.Catalog.CreateCategory)
	cats.GET("/:id", h.Catalog.GetCategory)
	cats.PUT("/:id", h.Catalog.UpdateCategory)
	cats.PATCH("/:id/active", h.Catalog.SetCategoryActive)
	cats.DELETE("/:id", h.Catalog.DeleteCategory)

	pans := adm.Group("/panchayaths", need(admin.CapManagePanchayaths))
	pans.GET("", h.Catalog.ListPanchayaths)
	pans.POST("", h.Catalog.CreatePanchayath)
	pans.PUT("/:id", h.Catalog.UpdatePanchayath)
	pans.PATCH("/:id/active", h.Catalog.SetPanchayathActive)
	pans.DELETE("/:id", h.Catalog.DeletePanchayath)

	adm.GET("/reports/summary", h.Reports.Summary, need(admin.CapViewReports))

	perms := need(admin.CapManagePermissions)
	adm.GET("/permissions", h.Permissions.ListPermissions, perms)
	adm.GET("/user-permissions", h.Permissions.ListGrants, perms)
	adm.POST("/user-permissions", h.Permissions.Grant, perms)
	adm.DELETE("/user-permissions/:id", h.Permissions.Revoke, perms)
	adm.GET("/users", h.Auth.ListUsers, perms)
	adm.POST("/users", h.Auth.CreateUser, perms)
	adm.PATCH("/users/:id/active", h.Auth.SetUserActive, perms)

	cnt := adm.Group("/content", need(admin.CapManageContent))
	cnt.GET("/announcements", h.Content.ListAnnouncements)
	cnt.POST("/announcements", h.Content.CreateAnnouncement)
	cnt.PUT("/announcements/:id", h.Content.UpdateAnnouncement)
	cnt.DELETE("/announcements/:id", h.Content.DeleteAnnouncement)
	cnt.GET("/utilities", h.Content.ListUtilities)
	cnt.POST("/utilities", h.Content.CreateUtility)
	cnt.PUT("/utilities/:id", h.Content.UpdateUtility)
	cnt.DELETE("/utilities/:id", h.Content.DeleteUtility)
}

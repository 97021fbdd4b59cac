package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zoomka/contact-intel/api/internal/auth"
	"github.com/zoomka/contact-intel/api/internal/config"
	"github.com/zoomka/contact-intel/api/internal/handler"
	middlewarepkg "github.com/zoomka/contact-intel/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth     *handler.AuthHandler
	Users    *handler.UserAdminHandler
	Contacts *handler.ContactsHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/register", handlers.Auth.Register)
	e.POST("/auth/login", handlers.Auth.Login)
	e.GET("/categories", handlers.Contacts.Categories)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	secured.POST("/contacts/scan", handlers.Contacts.Scan, middlewarepkg.ScanRateLimiter(cfg.RateLimitScan))
	secured.POST("/contacts/import-vcard", handlers.Contacts.ImportVCard)
	secured.GET("/contacts", handlers.Contacts.List)
	secured.GET("/contacts/:id/vcard", handlers.Contacts.ExportVCard)

	admin := secured.Group("", middlewarepkg.RequireRole("admin"))
	admin.DELETE("/contacts/:id", handlers.Contacts.Delete)
	admin.GET("/admin/users", handlers.Users.List)
	admin.POST("/admin/users", handlers.Users.Create)
	admin.PATCH("/admin/users/:id", handlers.Users.Update)
	admin.DELETE("/admin/users/:id", handlers.Users.Delete)
}

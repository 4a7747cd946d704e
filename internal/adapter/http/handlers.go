package http

import (
	"net/http"
	"time"

	mw "activity-report-service/internal/adapter/middleware"
	userDomain "activity-report-service/internal/domain/user"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// RegisterRoutes wires the whole API surface onto e. Everything except
// health and auth sits behind the bearer-token middleware.
func RegisterRoutes(e *echo.Echo, jwtSecret []byte, h *Handler, ah *AuthHandler, uh *UserHandler, rh *ReportHandler, th *AttachmentHandler) {
	e.GET("/health", h.Health)

	e.POST("/auth/register", ah.Register)
	e.POST("/auth/login", ah.Login)

	api := e.Group("", mw.Auth(jwtSecret))

	admin := api.Group("/users", mw.RequireRole(userDomain.RoleAdmin))
	admin.GET("", uh.List)
	admin.GET("/:id", uh.Get)
	api.PATCH("/users/:id", uh.UpdateProfile)

	api.POST("/reports", rh.Create)
	api.GET("/reports", rh.List)
	api.GET("/reports/:id", rh.Get)
	api.PATCH("/reports/:id", rh.Update)
	api.DELETE("/reports/:id", rh.Delete)
	api.POST("/reports/:id/review", rh.Review)

	api.POST("/reports/:id/comments", rh.AddComment)
	api.GET("/reports/:id/comments", rh.ListComments)

	api.POST("/reports/:id/attachments", th.Upload)
	api.GET("/reports/:id/attachments", th.List)
	api.GET("/attachments/:id/download", th.Download)
	api.DELETE("/attachments/:id", th.Delete)

	api.GET("/dashboard/stats", rh.Dashboard)
}

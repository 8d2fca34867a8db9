// README: HTTP router registration.
package http

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/http/handlers"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/service"
)

//go:embed web/index.html
var indexPage []byte

// NewRouter wires the gin engine: the static form page, the planning API, and
// the PDF export endpoint.
func NewRouter(planner *service.Planner, defaults service.Credentials) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	planHandler := handlers.NewPlanHandler(planner, defaults)
	r.POST("/api/trips/plan", planHandler.Plan)
	r.POST("/api/trips/pdf", planHandler.ExportPDF)

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}

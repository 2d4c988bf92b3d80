package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cityworks/facilitybooking/api"
	"github.com/cityworks/facilitybooking/config"
	"github.com/cityworks/facilitybooking/internal/service/auth"
	"github.com/cityworks/facilitybooking/internal/service/booking"
	"github.com/cityworks/facilitybooking/internal/service/facility"
	"github.com/cityworks/facilitybooking/internal/service/inspection"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	facilitySvc facility.FacilityUseCase,
	bookingSvc booking.BookingUseCase,
	inspectionSvc inspection.InspectionUseCase,
	authSvc auth.AuthUseCase,
) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, facilitySvc, bookingSvc, inspectionSvc, authSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(
	cfg *config.Config,
	facilitySvc facility.FacilityUseCase,
	bookingSvc booking.BookingUseCase,
	inspectionSvc inspection.InspectionUseCase,
	authSvc auth.AuthUseCase,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	guard := api.SessionGuard(authSvc, cfg.Auth.RequireSession)

	api.NewAuthHandler(authSvc).Register(router.Group("/api/auth"))
	api.NewFacilityHandler(facilitySvc).Register(router.Group("/api/facilities"), guard)
	api.NewBookingHandler(bookingSvc).Register(router.Group("/api/bookings"), guard)
	api.NewInspectionHandler(inspectionSvc).Register(router.Group("/api/inspections"), guard)

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs", func(c *gin.Context) {
			renderSwaggerUI(c.Writer, "/swagger/facilitybooking.swagger.json")
		})
	}

	return router
}

func renderSwaggerUI(w http.ResponseWriter, jsonURL string) {
	html := fmt.Sprintf(`<!DOCTYPE html>
    <html>
    <head>
        <title>API Docs</title>
        <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@latest/swagger-ui.css">
    </head>
    <body>
        <div id="swagger-ui"></div>
        <script src="https://unpkg.com/swagger-ui-dist@latest/swagger-ui-bundle.js"></script>
        <script>
            window.onload = function() {
                window.ui = SwaggerUIBundle({
                    url: "%s",
                    dom_id: '#swagger-ui'
                });
            };
        </script>
    </body>
    </html>`, jsonURL)

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}

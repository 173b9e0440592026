// Package server wires the HTTP routes of the portfolio site.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/profile"
	"github.com/Zachkp/portfolio/internal/server/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps are the collaborators the routes need.
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Composer profile.ProfileComposer
	Stats    *profile.Calculator
	Contact  *contact.Service
	Metrics  *metrics.Metrics
	Hasher   *middleware.IPHasher
	Now      func() time.Time
}

// NewRouter builds the gin engine with every route and middleware attached.
func NewRouter(d Deps) *gin.Engine {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Stats == nil {
		d.Stats = &profile.Calculator{Now: d.Now}
	}

	r := gin.New()
	if err := r.SetTrustedProxies(d.Config.HTTP.TrustedProxies); err != nil {
		d.Logger.Warn("ignoring trusted proxies", zap.Error(err))
	}
	r.Use(
		middleware.RequestID(),
		logger.GinMiddleware(d.Logger),
		logger.Recovery(d.Logger),
		middleware.RequestMetrics(d.Metrics),
		middleware.VisitorTracking(d.Hasher, d.Metrics),
	)

	h := &handler{deps: d}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Config.Metrics.Enabled {
		r.GET(d.Config.Metrics.Path, gin.WrapH(d.Metrics.Handler()))
	}

	api := r.Group("/api")
	api.Use(middleware.CORS(d.Config.HTTP.CORSAllowOrigins))
	{
		api.GET("/profile", h.getProfile)
		api.GET("/stats", h.getStats)
		api.GET("/projects", h.getProjects)
		api.GET("/certificates", h.getCertificates)
		api.GET("/experience", h.getExperience)
		api.GET("/references", h.getReferences)
		api.GET("/cv", h.getCV)
		api.POST("/contact", h.postContact)
		api.OPTIONS("/contact", func(c *gin.Context) {})
	}
	return r
}

// Run serves handler until ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

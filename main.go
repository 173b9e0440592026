package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/locale"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/profile"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/server/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "portfolio:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer log.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := loadContent(cfg)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	for _, l := range locale.Supported() {
		if orphans := store.OrphanOverlayIDs(l); len(orphans) > 0 {
			log.Warn("Overlay records without a base record are ignored",
				zap.String("locale", l.String()),
				zap.Strings("ids", orphans),
			)
		}
	}

	var composer profile.ProfileComposer = profile.NewComposer(store)
	if cfg.Cache.Enabled {
		composer = profile.NewCachedComposer(composer, cfg.Cache.TTL)
		log.Info("Profile cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
	}

	hasher, err := middleware.NewIPHasher()
	if err != nil {
		return fmt.Errorf("init ip hasher: %w", err)
	}
	log.Info("Privacy: visitor tracking enabled with hashed IP addresses")

	router := server.NewRouter(server.Deps{
		Config:   cfg,
		Logger:   log,
		Composer: composer,
		Stats:    profile.NewCalculator(),
		Contact:  contact.NewService(log),
		Metrics:  metrics.New(),
		Hasher:   hasher,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Run(ctx, cfg, router, log)
}

func loadContent(cfg *config.Config) (*content.Store, error) {
	if cfg.Content.Dir != "" {
		return content.Load(os.DirFS(cfg.Content.Dir))
	}
	return content.LoadDefault()
}

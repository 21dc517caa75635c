package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vbonduro/councilweb/internal/assets"
	"github.com/vbonduro/councilweb/internal/assets/local"
	"github.com/vbonduro/councilweb/internal/backend"
	"github.com/vbonduro/councilweb/internal/config"
	"github.com/vbonduro/councilweb/internal/db"
	"github.com/vbonduro/councilweb/internal/logging"
	"github.com/vbonduro/councilweb/internal/service"
	"github.com/vbonduro/councilweb/internal/store"
	"github.com/vbonduro/councilweb/internal/web"
	"github.com/vbonduro/councilweb/internal/web/templates"
)

const (
	thumbnailCacheSize = 256
	catalogSettle      = 2 * time.Second
	viewRetention      = 48 * time.Hour
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	bookmarkStore := store.NewBookmarkStore(database)
	viewStore := store.NewGalleryViewStore(database)

	assetStore, err := local.NewLocalStore(cfg.AssetPath, thumbnailCacheSize)
	if err != nil {
		logger.Error("failed to initialize asset store", "error", err)
		return
	}

	inspection := assets.NewCatalog(cfg.AssetPath, "inspection", "/assets", logger)
	if err := inspection.Reindex(); err != nil {
		logger.Error("failed to index inspection photos", "error", err)
		return
	}
	go func() {
		if err := inspection.Watch(ctx, catalogSettle); err != nil {
			logger.Warn("inspection watcher stopped", "error", err)
		}
	}()
	go pruneViews(ctx, viewStore, logger)

	client := backend.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	gallery := backend.NewGalleryClient(client)
	calendar := backend.NewCalendarClient(client)

	if cfg.MatchingLive {
		logger.Info("using live matching board", "api", cfg.APIBaseURL)
	}

	svc := web.Services{
		Home:         service.NewHomeService(gallery, calendar, client, logger),
		Gallery:      service.NewGalleryService(gallery, viewStore, client, logger),
		Finance:      service.NewFinanceService(backend.NewFinanceClient(client), logger),
		Rental:       service.NewRentalService(backend.NewRentalClient(client), logger),
		Matching:     service.NewMatchingService(backend.NewMatchingClient(client), bookmarkStore, cfg.MatchingLive, logger),
		StudySupport: service.NewPeriodService("학습지원", backend.NewResourcesClient(client, "study-support"), logger),
		Inspection:   service.NewPeriodService("시설점검", inspection, logger),
		Calendar:     service.NewCalendarService(calendar),
	}

	server := web.NewServer(svc, web.Options{
		NaverClientID:   cfg.NaverClientID,
		KakaoChannelURL: cfg.KakaoChannelURL,
	}, templates.FS, assetStore, logger)

	if err := server.ListenAndServe(ctx, cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

// pruneViews drops gallery view records once they can no longer dedupe a
// view, hourly until ctx is done.
func pruneViews(ctx context.Context, views *store.GalleryViewStore, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		n, err := views.PruneBefore(ctx, time.Now().Add(-viewRetention))
		if err != nil {
			logger.Warn("failed to prune gallery views", "error", err)
		} else if n > 0 {
			logger.Debug("pruned gallery views", "rows", n)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"airdash/internal/alert"
	"airdash/internal/cache"
	"airdash/internal/config"
	"airdash/internal/dashboard"
	"airdash/internal/location"
	"airdash/internal/providers/forecastapi"
	"airdash/internal/realtime"
	"airdash/internal/store"
	"airdash/internal/types"
)

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	cfg              *config.Config
	cache            cache.Cache
	snapshots        *store.Store
	realtime         *realtime.Client
	locationService  location.Service
	dashboardService dashboard.Service
	alertService     alert.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	backend := forecastapi.NewClient(cfg.Backend.BaseURL)
	responseCache := newResponseCache(ctx, cfg, logger)

	snapshots, err := store.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}

	locationService, err := location.NewService(nil, logger)
	if err != nil {
		_ = snapshots.Close()
		return nil, err
	}

	feed := realtime.NewClient(cfg.Realtime.URL, logger)
	dashboardService := dashboard.NewService(
		backend, responseCache, snapshots, feed, locationService, cfg.Cache.TTL, logger)

	app := &App{
		router:           router,
		logger:           logger,
		cfg:              cfg,
		cache:            responseCache,
		snapshots:        snapshots,
		realtime:         feed,
		locationService:  locationService,
		dashboardService: dashboardService,
		alertService:     alert.NewService(backend, logger),
	}

	// Realtime events drive online status; updates land in the cache and
	// snapshot store so REST reads see them immediately
	feed.OnConnect(func() { dashboardService.SetOnline(true) })
	feed.OnError(func(err error) { logger.Warn("realtime feed error", "error", err) })
	feed.OnMessage(app.handleRealtimeMessage)

	dashboardService.StartProbe(ctx, cfg.Backend.ProbeInterval)

	// Follow the first watchlist location until a request selects another
	if watchlist := locationService.Watchlist(); len(watchlist) > 0 {
		if err := feed.Connect(watchlist[0].Slug()); err != nil {
			logger.Warn("failed to connect realtime feed", "error", err)
		}
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// newResponseCache connects to Redis when an address is configured, falling
// back to the in-process cache otherwise
func newResponseCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) cache.Cache {
	if cfg.Cache.RedisAddr == "" {
		return cache.NewMemory()
	}
	c, err := cache.NewRedis(ctx, cfg.Cache.RedisAddr, "", 0)
	if err != nil {
		logger.Warn("failed to connect to redis, using in-memory cache",
			"addr", cfg.Cache.RedisAddr, "error", err)
		return cache.NewMemory()
	}
	logger.Info("using redis response cache", "addr", cfg.Cache.RedisAddr)
	return c
}

// handleRealtimeMessage folds pushed aqi_update payloads into the cache and
// snapshot store
func (app *App) handleRealtimeMessage(msg realtime.Message) {
	if msg.Type != realtime.MessageTypeAQIUpdate {
		return
	}

	var current types.CurrentAQI
	if err := json.Unmarshal(msg.Data, &current); err != nil {
		app.logger.Warn("failed to decode realtime update", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	slug := types.Slugify(msg.Location)
	if payload, err := json.Marshal(current); err == nil {
		key := store.ResourceCurrent + ":" + slug
		if err := app.cache.Set(ctx, key, payload, app.cfg.Cache.TTL); err != nil {
			app.logger.Warn("failed to cache realtime update", "key", key, "error", err)
		}
	}
	if err := app.snapshots.PutCurrent(ctx, slug, &current); err != nil {
		app.logger.Warn("failed to store realtime update", "location", slug, "error", err)
	}
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// Close releases the realtime connection and the snapshot store
func (app *App) Close() {
	app.realtime.Close()
	if err := app.snapshots.Close(); err != nil {
		app.logger.Warn("failed to close snapshot store", "error", err)
	}
}

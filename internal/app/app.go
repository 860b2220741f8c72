package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/get2wurk/get2wurk-api/docs"
	"github.com/get2wurk/get2wurk-api/internal/config"
	recommendHandler "github.com/get2wurk/get2wurk-api/internal/handlers/recommend"
	stationsHandler "github.com/get2wurk/get2wurk-api/internal/handlers/stations"
	transitHandler "github.com/get2wurk/get2wurk-api/internal/handlers/transit"
	weatherHandler "github.com/get2wurk/get2wurk-api/internal/handlers/weather"
	metricsSvc "github.com/get2wurk/get2wurk-api/internal/metrics"
	"github.com/get2wurk/get2wurk-api/internal/middleware"
	"github.com/get2wurk/get2wurk-api/internal/models"
	"github.com/get2wurk/get2wurk-api/internal/services/cache"
	"github.com/get2wurk/get2wurk-api/internal/services/geocode"
	loggerT "github.com/get2wurk/get2wurk-api/internal/services/logger"
	"github.com/get2wurk/get2wurk-api/internal/services/recommend"
	"github.com/get2wurk/get2wurk-api/internal/services/stations"
	"github.com/get2wurk/get2wurk-api/internal/services/transit"
	serviceWeather "github.com/get2wurk/get2wurk-api/internal/services/weather"
	"github.com/get2wurk/get2wurk-api/internal/services/weather/decorators"
)

const shutdownTimeout = 5 * time.Second

// ServiceContainer holds the initialized dependencies for the HTTP server.
type ServiceContainer struct {
	WeatherService   *decorators.CachedService
	StationService   *stations.Service
	StationRefresher *stations.Refresher
	TransitService   *transit.BreakerClient
	GeocodeService   *geocode.CachedClient
	RecommendService *recommend.Service

	Router     *gin.Engine
	Srv        *http.Server
	fileLogger *zap.Logger
}

// App ties together config, logger, and metrics for startup/shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	m   *metricsSvc.Metrics
}

func New(cfg config.Config, logger zerolog.Logger, met *metricsSvc.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
	}
}

// Start initializes services, mounts routes, and blocks until the context is
// canceled, then shuts everything down.
func (a *App) Start(ctx context.Context) error {
	srvContainer := a.Init()

	a.l.Info().
		Str("address", a.cfg.Server.Address).
		Msg("starting get2wurk api")

	a.MountRoutes(srvContainer)

	if err := srvContainer.StationRefresher.Start(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.l.Error().Err(err).Msg("http server failed")
		return err
	case <-ctx.Done():
		a.l.Info().Msg("shutdown signal received, stopping get2wurk api")
	}

	if err := a.Shutdown(srvContainer); err != nil {
		a.l.Error().Err(err).Msg("failed to shutdown application")
		return err
	}
	a.l.Info().Msg("application shutdown successfully")
	return nil
}

// Shutdown stops the station refresher, drains the HTTP server and syncs the
// file logger.
func (a *App) Shutdown(srvContainer ServiceContainer) error {
	a.l.Info().Msg("stopping get2wurk api…")

	defer func(logger *zap.Logger) {
		if err := logger.Sync(); err != nil {
			a.l.Error().Err(err).Msg("failed to sync file logger")
		}
	}(srvContainer.fileLogger)

	srvContainer.StationRefresher.Stop()
	a.l.Info().Msg("station refresher stopped")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		a.l.Error().Err(err).Msg("http shutdown error")
		return err
	}
	a.l.Info().Msg("shutdown complete")
	return nil
}

// MountRoutes registers the public endpoints on the container's router.
func (a *App) MountRoutes(srvContainer ServiceContainer) {
	router := srvContainer.Router

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	docs := swagger.WrapHandler(swaggerfiles.Handler)
	router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	router.GET("/docs/*any", func(c *gin.Context) {
		// gin-swagger only serves named assets; bare /docs/ would 404.
		if c.Param("any") == "/" {
			c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
			return
		}
		docs(c)
	})

	recHandler := recommendHandler.NewHandler(srvContainer.RecommendService)
	wHandler := weatherHandler.NewHandler(srvContainer.WeatherService)
	stHandler := stationsHandler.NewHandler(srvContainer.StationService)
	trHandler := transitHandler.NewHandler(srvContainer.TransitService)

	api := router.Group("/api/v1")
	api.Use(middleware.APIKeyAuth(a.cfg.PublicAPIKey, a.l, a.m))
	{
		api.POST("/recommend", recHandler.Recommend)
		api.POST("/recommend/address", recHandler.RecommendByAddress)
		api.GET("/weather", wHandler.GetWeather)
		api.GET("/stations/nearest", stHandler.GetNearest)
		api.GET("/stations/search", stHandler.Search)
		api.GET("/transit/alerts", trHandler.GetAlerts)
	}
}

// Init wires clients, caches, breakers and services without starting anything.
func (a *App) Init() ServiceContainer {
	a.l.Info().Msgf("initializing get2wurk api with config: %+v", a.cfg)

	redisClient := newRedisConnection(a.cfg.RedisAddress(), a.cfg.Redis.DB)

	fileLogger, err := loggerT.NewFileLogger(a.cfg.LogsPath)
	if err != nil {
		a.l.Error().Err(err).Msg("failed to create file logger")
		fileLogger = zap.NewNop()
	}

	// Every upstream call goes through the logging round tripper.
	roundTripper := loggerT.NewRoundTripper(fileLogger)
	httpLogClient := &http.Client{Transport: roundTripper}

	breakerCfg := serviceWeather.BreakerConfig{
		TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: a.cfg.Breaker.RepeatNumber,
	}

	nws := serviceWeather.NewBreakerClient("NWS", breakerCfg,
		serviceWeather.NewClientNWS(a.cfg.NWSPointsURL, httpLogClient, a.l),
	)
	openWeather := serviceWeather.NewBreakerClient("OpenWeather", breakerCfg,
		serviceWeather.NewClientOpenWeather(a.cfg.OpenWeatherAPIKey, a.cfg.OpenWeatherURL, httpLogClient, a.l),
	)
	rawWeather := serviceWeather.NewService(a.l, a.m, nws, openWeather)

	cacheCollector := metricsSvc.NewPromCollector()

	weatherCache := cache.NewMetricsDecorator[models.Observation](
		cache.NewRedisClient[models.Observation](
			redisClient, a.l, time.Duration(a.cfg.Redis.WeatherTTLMin)*time.Minute),
		cacheCollector,
		"weather",
	)
	weatherService := decorators.NewCachedService(rawWeather, weatherCache, a.l)

	stationCache := cache.NewMetricsDecorator[[]models.Station](
		cache.NewRedisClient[[]models.Station](
			redisClient, a.l, time.Duration(a.cfg.Redis.StationsTTLSec)*time.Second),
		cacheCollector,
		"stations",
	)
	stationSource := stations.NewCachedSource(
		stations.NewClient(a.cfg.CitibikeGBFSBase, httpLogClient, a.l),
		stationCache,
		a.l,
	)
	stationService := stations.NewService(stationSource, a.l, a.cfg.Rules.WalkRadiusM, a.cfg.Rules.MinDocks)
	stationRefresher := stations.NewRefresher(stationSource, a.l, a.cfg.StationRefreshSpec)

	transitService := transit.NewBreakerClient("MTA", transit.BreakerConfig{
		TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: a.cfg.Breaker.RepeatNumber,
	}, transit.NewClient(a.cfg.MTAAPIKey, a.cfg.MTAFeedURL, httpLogClient, a.l))

	geocodeCache := cache.NewMetricsDecorator[models.LatLon](
		cache.NewRedisClient[models.LatLon](
			redisClient, a.l, time.Duration(a.cfg.Redis.GeocodeTTLHour)*time.Hour),
		cacheCollector,
		"geocode",
	)
	geocodeService := geocode.NewCachedClient(
		geocode.NewClient(a.cfg.NominatimURL, httpLogClient, a.l),
		geocodeCache,
		a.l,
	)

	recommendService := recommend.NewService(
		weatherService,
		stationService,
		transitService,
		geocodeService,
		a.l,
		recommend.Rules{
			HeadwindThresholdMPH: a.cfg.Rules.HeadwindThresholdMPH,
			HumidityThresholdPct: a.cfg.Rules.HumidityThresholdPct,
			BikeSpeedMPH:         a.cfg.Rules.BikeSpeedMPH,
		},
		a.m,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(a.m.HTTPMiddleware())

	httpServer := &http.Server{
		Addr:        a.cfg.Server.Address,
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	return ServiceContainer{
		WeatherService:   weatherService,
		StationService:   stationService,
		StationRefresher: stationRefresher,
		TransitService:   transitService,
		GeocodeService:   geocodeService,
		RecommendService: recommendService,

		Router:     router,
		Srv:        httpServer,
		fileLogger: fileLogger,
	}
}

func newRedisConnection(connString string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: connString, DB: db})
}

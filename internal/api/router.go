package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/eventhub/eventhub-api/internal/api/handler"
	"github.com/eventhub/eventhub-api/internal/api/middleware"
	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/service"
	redisdb "github.com/eventhub/eventhub-api/internal/infrastructure/db/redis"
	"github.com/eventhub/eventhub-api/internal/infrastructure/memstore"
)

// Registered once: echoprometheus uses the default Prometheus registry and
// would reject a second registration.
var promMiddleware = echoprometheus.NewMiddleware("eventhub")

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the stats cache and the readiness dependency check are
// disabled without it.
func NewRouter(store *memstore.Store, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(promMiddleware)

	// --- Repositories ---
	users := memstore.NewUserRepository(store)
	events := memstore.NewEventRepository(store)
	registrations := memstore.NewRegistrationRepository(store)
	communities := memstore.NewCommunityRepository(store)
	members := memstore.NewCommunityMemberRepository(store)
	racePacks := memstore.NewRacePackRepository(store)
	checkpoints := memstore.NewCheckpointRepository(store)

	// --- Services ---
	authService := service.NewAuthService(users, jwtSecret, 24*time.Hour)
	userService := service.NewUserService(users, log)
	registrationService := service.NewRegistrationService(registrations, events, log)
	racePackService := service.NewRacePackService(racePacks, log)

	var statsCache service.StatsCache
	if rdb != nil {
		statsCache = redisdb.NewStatsCache(rdb, 0, log)
	}
	statsService := service.NewStatsService(events, registrations, communities, statsCache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, users)
	userHandler := handler.NewUserHandler(userService)
	eventHandler := handler.NewEventHandler(events)
	registrationHandler := handler.NewRegistrationHandler(registrationService, registrations)
	communityHandler := handler.NewCommunityHandler(communities)
	memberHandler := handler.NewCommunityMemberHandler(members)
	racePackHandler := handler.NewRacePackHandler(racePackService, racePacks)
	checkpointHandler := handler.NewCheckpointHandler(checkpoints)
	statsHandler := handler.NewStatsHandler(statsService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Public API routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/users", userHandler.Create) // signup

	// --- Authenticated API routes ---
	g := e.Group("/api", authMiddleware)

	g.GET("/auth/me", authHandler.Me)

	g.GET("/users", userHandler.List, middleware.RequireRole(domain.RoleAdmin))
	g.GET("/users/:id", userHandler.Get)
	g.PATCH("/users/:id", userHandler.Update)
	g.DELETE("/users/:id", userHandler.Delete)

	g.GET("/events", eventHandler.List)
	g.GET("/events/:id", eventHandler.Get)
	g.POST("/events", eventHandler.Create)
	g.PATCH("/events/:id", eventHandler.Update)
	g.DELETE("/events/:id", eventHandler.Delete)

	g.GET("/registrations", registrationHandler.List)
	g.GET("/registrations/:id", registrationHandler.Get)
	g.POST("/registrations", registrationHandler.Create)
	g.PATCH("/registrations/:id", registrationHandler.Update)
	g.DELETE("/registrations/:id", registrationHandler.Delete)

	g.GET("/communities", communityHandler.List)
	g.GET("/communities/:id", communityHandler.Get)
	g.POST("/communities", communityHandler.Create)
	g.PATCH("/communities/:id", communityHandler.Update)
	g.DELETE("/communities/:id", communityHandler.Delete)

	g.GET("/community-members", memberHandler.List)
	g.POST("/community-members", memberHandler.Create)
	g.DELETE("/community-members/:id", memberHandler.Delete)

	g.GET("/race-packs", racePackHandler.List)
	g.GET("/race-packs/:id", racePackHandler.Get)
	g.POST("/race-packs", racePackHandler.Create)
	g.PATCH("/race-packs/:id", racePackHandler.Update)
	g.POST("/race-packs/:id/distribute", racePackHandler.Distribute)
	g.DELETE("/race-packs/:id", racePackHandler.Delete)

	g.GET("/participant-checkpoints", checkpointHandler.List)
	g.POST("/participant-checkpoints", checkpointHandler.Create)
	g.PATCH("/participant-checkpoints/:id", checkpointHandler.Update)

	g.GET("/stats", statsHandler.Dashboard)

	return e
}

// Package server contains the HTTP handlers for the catalog and favorites API.
package server

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "holocron/docs" // swagger docs
	"holocron/internal/cache"
	"holocron/internal/config"
	"holocron/internal/database"
	"holocron/internal/middleware"
	"holocron/internal/models"
	"holocron/internal/repository"
	"holocron/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const serviceName = "holocron-api"

// Server holds all dependencies and provides handlers
type Server struct {
	config           *config.Config
	db               *gorm.DB
	redis            *redis.Client
	app              *fiber.App
	promMiddleware   *fiberprometheus.FiberPrometheus
	userRepo         repository.UserRepository
	planetRepo       repository.PlanetRepository
	characterRepo    repository.CharacterRepository
	favRepo          repository.FavoritesRepository
	userService      *service.UserService
	catalogService   *service.CatalogService
	favoritesService *service.FavoritesService
}

// NewServer connects to the database and Redis described by cfg and
// builds a server on top of them.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// redisClient may be nil, in which case caching and Redis rate limits are off.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if db == nil {
		return nil, fmt.Errorf("server requires a database")
	}

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics(serviceName),
		userRepo:       repository.NewUserRepository(db),
		planetRepo:     repository.NewPlanetRepository(db),
		characterRepo:  repository.NewCharacterRepository(db),
		favRepo:        repository.NewFavoritesRepository(db),
	}
	s.userService = service.NewUserService(s.userRepo)
	s.catalogService = service.NewCatalogService(s.planetRepo, s.characterRepo)
	s.favoritesService = service.NewFavoritesService(s.favRepo, s.userRepo, s.planetRepo, s.characterRepo)

	return s, nil
}

// NewApp returns a Fiber app with the server's error handler, middleware
// and routes installed.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Holocron API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message})
			}
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", "error", err.Error())
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Tracing runs before ContextMiddleware so the trace id reaches the context.
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())

	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		MaxAge:       86400,
	}))

	if s.config.RateLimitPerMinute > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        s.config.RateLimitPerMinute,
			Expiration: time.Minute,
			Next: func(c *fiber.Ctx) bool {
				return c.Method() == fiber.MethodOptions
			},
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests, please try again later.",
				})
			},
		}))
	}
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Sitemap)

	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	app.Get("/swagger/*", swagger.HandlerDefault)

	// User routes
	users := app.Group("/user")
	users.Post("/", middleware.RateLimit(
		s.redis, 10, 10*time.Minute, "create_user"), s.CreateUser)
	users.Get("/", s.GetUsers)
	// /favorites must be registered before the generic /:id route
	users.Get("/favorites", s.GetAllFavorites)
	users.Get("/:id/favorites", s.GetUserFavorites)
	users.Delete("/:id/favorites", s.ClearUserFavorites)
	users.Get("/:id", s.GetUser)
	users.Delete("/:id", s.DeleteUser)

	// Favorite routes
	favorites := app.Group("/favorite")
	favorites.Post("/planet/:planetId", middleware.RateLimit(
		s.redis, 60, time.Minute, "add_favorite"), s.AddFavoritePlanet)
	favorites.Delete("/planet/:favId", s.RemoveFavoritePlanet)
	favorites.Post("/character/:characterId", middleware.RateLimit(
		s.redis, 60, time.Minute, "add_favorite"), s.AddFavoriteCharacter)
	favorites.Delete("/character/:favId", s.RemoveFavoriteCharacter)

	// Catalog routes
	planets := app.Group("/planet")
	planets.Get("/", s.GetPlanets)
	planets.Post("/", s.CreatePlanet)
	planets.Get("/:id", s.GetPlanet)

	characters := app.Group("/character")
	characters.Get("/", s.GetCharacters)
	characters.Post("/", s.CreateCharacter)
	characters.Get("/:id", s.GetCharacter)
}

// Sitemap handles GET / and lists every registered endpoint.
// @Summary List endpoints
// @Tags meta
// @Produce json
// @Success 200 {object} object{endpoints=[]string}
// @Router / [get]
func (s *Server) Sitemap(c *fiber.Ctx) error {
	seen := make(map[string]struct{})
	endpoints := make([]string, 0)
	for _, r := range c.App().GetRoutes(true) {
		if r.Method == fiber.MethodHead || strings.HasPrefix(r.Path, "/swagger") {
			continue
		}
		path := r.Path
		if len(path) > 1 {
			path = strings.TrimSuffix(path, "/")
		}
		entry := r.Method + " " + path
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		endpoints = append(endpoints, entry)
	}
	sort.Strings(endpoints)

	return c.JSON(fiber.Map{"endpoints": endpoints})
}

// LivenessCheck handles liveness probe requests
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} object{status=string}
// @Router /health/live [get]
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. Redis is optional, so a
// server running without it is still ready.
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string}
// @Router /health/ready [get]
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start builds the app and listens on the configured port.
func (s *Server) Start() error {
	app := s.NewApp()
	middleware.Logger.Info("server starting", "port", s.config.Port, "env", s.config.Env)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", "error", err.Error())
		}
	}

	if err := database.Close(s.db); err != nil {
		middleware.Logger.Error("error closing database", "error", err.Error())
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			middleware.Logger.Error("error closing redis", "error", err.Error())
		}
	}

	middleware.Logger.Info("server shutdown complete")
	return nil
}

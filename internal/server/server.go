package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"staffhub/internal/config"
	"staffhub/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	router   *gin.Engine
	mongo    *mongo.Client
	services *Services
}

// New creates a new server instance
func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	repos := InitRepositories(cfg, db)
	services := InitServices(cfg, repos)
	handlers := InitHandlers(services, repos)

	if err := EnsureIndexes(repos); err != nil {
		return nil, err
	}

	router := setupRouter(cfg, log, handlers, services)

	return &Server{
		cfg:      cfg,
		log:      log,
		router:   router,
		mongo:    mongoClient,
		services: services,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes the invariants depend on, most
// importantly the case-insensitive unique email index.
func EnsureIndexes(repos *Repositories) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repos.User.EnsureIndexes(ctx); err != nil {
		return err
	}
	return nil
}

// Close disconnects MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	s.log.Info("server listening", zap.String("address", s.cfg.Server.Address()))
	return s.router.Run(s.cfg.Server.Address())
}

func setupRouter(cfg *config.Config, log *zap.Logger, h *Handlers, s *Services) *gin.Engine {
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.SetTrustedProxies(nil)

	api := r.Group("/api")

	// Unauthenticated routes
	api.POST("/login", h.Auth.Login)
	api.POST("/password-reset/request", h.Auth.RequestPasswordReset)
	api.POST("/password-reset/confirm", h.Auth.ResetPassword)

	// Protected routes require a Bearer token
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(s.Auth))

	users := protected.Group("/users")
	{
		users.POST("", h.User.Create)
		users.POST("/query", h.User.Query)
		users.GET("/me", h.User.Me)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Archive)
	}

	leaves := protected.Group("/leaves")
	{
		leaves.POST("", h.Leave.Create)
		leaves.POST("/query", h.Leave.Query)
		leaves.PATCH("/:id/status", h.Leave.UpdateStatus)
		leaves.GET("/summary/:teacher", h.Leave.Summary)
	}

	departments := protected.Group("/departments")
	{
		departments.GET("", h.Directory.ListDepartments)
		departments.POST("", h.Directory.CreateDepartment)
	}

	roles := protected.Group("/roles")
	{
		roles.GET("", h.Directory.ListRoles)
		roles.POST("", h.Directory.CreateRole)
	}

	return r
}

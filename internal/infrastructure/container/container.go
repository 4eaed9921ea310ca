package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"github.com/velvetdk/marketplace-backend/internal/config"
	"github.com/velvetdk/marketplace-backend/internal/delivery/http"
	"github.com/velvetdk/marketplace-backend/internal/delivery/http/handler"
	"github.com/velvetdk/marketplace-backend/internal/delivery/http/middleware"
	"github.com/velvetdk/marketplace-backend/internal/infrastructure/database"
	"github.com/velvetdk/marketplace-backend/internal/infrastructure/gemini"
	"github.com/velvetdk/marketplace-backend/internal/infrastructure/server"
	"github.com/velvetdk/marketplace-backend/internal/repository/postgres"
	redisrepo "github.com/velvetdk/marketplace-backend/internal/repository/redis"
	"github.com/velvetdk/marketplace-backend/internal/usecase/advertisement"
	"github.com/velvetdk/marketplace-backend/internal/usecase/auth"
	"github.com/velvetdk/marketplace-backend/internal/usecase/booking"
	"github.com/velvetdk/marketplace-backend/internal/usecase/completion"
	"github.com/velvetdk/marketplace-backend/internal/usecase/dashboard"
	"github.com/velvetdk/marketplace-backend/internal/usecase/profile"
	"github.com/velvetdk/marketplace-backend/internal/usecase/verification"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *goredis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize Gemini client; description suggestions are optional
	geminiClient, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		logger.Warn("gemini client unavailable, description suggestions disabled", zap.Error(err))
		geminiClient = nil
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	adRepo := postgres.NewAdvertisementRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	prefRepo := redisrepo.NewPreferenceRepository(redisClient)
	statusCache := redisrepo.NewStatusCache(redisClient)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessExpiryMin,
		logger,
	)

	profileUseCase := profile.NewProfileUseCase(
		profileRepo,
		geminiClient,
		logger,
	)

	completionUseCase := completion.NewCompletionUseCase(
		profileRepo,
		logger,
	)

	advertisementUseCase := advertisement.NewAdvertisementUseCase(
		adRepo,
		profileRepo,
		statusCache,
		logger,
	)

	dashboardUseCase := dashboard.NewDashboardUseCase(
		activityRepo,
		bookingRepo,
		logger,
	)

	bookingUseCase := booking.NewBookingUseCase(
		bookingRepo,
		logger,
	)

	verificationUseCase := verification.NewVerificationUseCase(
		userRepo,
		profileRepo,
		prefRepo,
		logger,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase, completionUseCase)
	advertisementHandler := handler.NewAdvertisementHandler(advertisementUseCase, profileUseCase)
	dashboardHandler := handler.NewDashboardHandler(dashboardUseCase, profileUseCase)
	bookingHandler := handler.NewBookingHandler(bookingUseCase, profileUseCase)
	verificationHandler := handler.NewVerificationHandler(verificationUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		advertisementHandler,
		dashboardHandler,
		bookingHandler,
		verificationHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, logger)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}

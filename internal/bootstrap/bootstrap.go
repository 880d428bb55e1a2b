package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emrek/campushub/internal/app/controllers"
	appRoutes "github.com/emrek/campushub/internal/app/routes"
	appServices "github.com/emrek/campushub/internal/app/services"
	"github.com/emrek/campushub/internal/app/store"
	"github.com/emrek/campushub/internal/config"
	appMiddleware "github.com/emrek/campushub/internal/middleware"
	pkgAuth "github.com/emrek/campushub/internal/pkg/auth"
	"github.com/emrek/campushub/internal/pkg/helpers"
	"github.com/emrek/campushub/internal/pkg/logger"
	"github.com/emrek/campushub/internal/pkg/ws"
	"github.com/emrek/campushub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	ClubService         appServices.ClubService
	EventService        appServices.EventService
	MarketplaceService  appServices.MarketplaceService
	ModerationService   appServices.ModerationService
	ChatService         appServices.ChatService
	AnnouncementService appServices.AnnouncementService
	StatsService        appServices.StatsService
	AuditService        appServices.AuditService

	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	ClubController         *appControllers.ClubController
	EventController        *appControllers.EventController
	MarketplaceController  *appControllers.MarketplaceController
	ConfessionController   *appControllers.ConfessionController
	ChatController         *appControllers.ChatController
	AnnouncementController *appControllers.AnnouncementController
	AdminController        *appControllers.AdminController

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	Hub            *ws.Hub
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore builds the persistence backend named by the configuration
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (store.Store, error) {
	if strings.ToLower(cfg.Storage.Driver) != "postgres" {
		lgr.Info().Msg("Using in-memory store")
		return store.NewMemoryStore(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.GetPostgresConnectionString())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to postgres")
		return nil, err
	}

	lgr.Info().Str("host", cfg.Storage.Host).Str("dbname", cfg.Storage.DBName).Msg("Postgres store ready")
	return st, nil
}

// BuildDependencies wires services, controllers and middleware together
func BuildDependencies(cfg *config.Config, st store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	accessTokenExp := helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour)
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	auditService := appServices.NewAuditService(st, lgr)
	authService := appServices.NewAuthService(st, auditService, lgr)
	clubService := appServices.NewClubService(st, lgr)
	eventService := appServices.NewEventService(st, lgr)
	marketplaceService := appServices.NewMarketplaceService(st, lgr)
	moderationService := appServices.NewModerationService(st, auditService, lgr)
	chatService := appServices.NewChatService(st, lgr)
	announcementService := appServices.NewAnnouncementService(st, auditService, lgr)
	statsService := appServices.NewStatsService(st, lgr)

	hub := ws.NewHub(lgr)
	go hub.Run()

	deps := &Dependencies{
		AuthService:         authService,
		ClubService:         clubService,
		EventService:        eventService,
		MarketplaceService:  marketplaceService,
		ModerationService:   moderationService,
		ChatService:         chatService,
		AnnouncementService: announcementService,
		StatsService:        statsService,
		AuditService:        auditService,

		AuthController:         appControllers.NewAuthController(authService, jwtService),
		UserController:         appControllers.NewUserController(authService),
		ClubController:         appControllers.NewClubController(clubService),
		EventController:        appControllers.NewEventController(eventService),
		MarketplaceController:  appControllers.NewMarketplaceController(marketplaceService, authService),
		ConfessionController:   appControllers.NewConfessionController(moderationService),
		ChatController:         appControllers.NewChatController(chatService, hub),
		AnnouncementController: appControllers.NewAnnouncementController(announcementService, authService),
		AdminController:        appControllers.NewAdminController(authService, moderationService, statsService, auditService),

		AuthMiddleware: appMiddleware.NewAuthMiddleware(jwtService),
		JWTService:     jwtService,
		Hub:            hub,
		Logger:         lgr,
	}
	return deps, nil
}

// SetupRouter builds the gin engine with all routes registered
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.UserController,
		deps.ClubController,
		deps.EventController,
		deps.MarketplaceController,
		deps.ConfessionController,
		deps.ChatController,
		deps.AnnouncementController,
		deps.AdminController,
		deps.AuthMiddleware,
	)
	return router
}

// SeedData populates the store with sample campus data on first boot
func SeedData(st store.Store, lgr zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := seed.CreateSampleData(ctx, st, lgr); err != nil {
		lgr.Warn().Err(err).Msg("Sample data seeding failed")
	}
}

package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/brvhprince/planner-api/internal/api/handler"
	"github.com/brvhprince/planner-api/internal/api/middleware"
	"github.com/brvhprince/planner-api/internal/core/ports"
	"github.com/brvhprince/planner-api/internal/core/service"
	"github.com/brvhprince/planner-api/internal/infrastructure/config"
	"github.com/brvhprince/planner-api/internal/infrastructure/db/mongo"
	"github.com/brvhprince/planner-api/internal/infrastructure/db/redis"
	"github.com/brvhprince/planner-api/internal/pkg/secure"
)

// Dependencies carries the externally constructed pieces the router wires
// into services: connections plus the provider-selected backends.
type Dependencies struct {
	DB       *gomongo.Database
	Redis    *goredis.Client
	Store    ports.Store
	Mailer   ports.Mailer
	SMS      ports.SMSSender
	TwoFa    ports.TwoFa
	Recorder ports.ActivityRecorder
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("planner"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Repositories ---
	userRepo := mongo.NewUserRepository(deps.DB)
	profileRepo := mongo.NewProfileRepository(deps.DB)
	accountRepo := mongo.NewAccountRepository(deps.DB)
	sessionRepo := mongo.NewSessionRepository(deps.DB)
	fileRepo := mongo.NewFileRepository(deps.DB)
	goalRepo := mongo.NewGoalRepository(deps.DB)
	transactionRepo := mongo.NewTransactionRepository(deps.DB)
	codeStore := redis.NewCodeStore(deps.Redis)

	// --- Services ---
	cipher := secure.NewCipher(cfg.SecretKey)
	verificationService := service.NewVerificationService(codeStore, userRepo, deps.Mailer,
		deps.SMS, deps.Recorder, cipher, cfg.AppURL, deps.Logger)
	authService := service.NewAuthService(userRepo, sessionRepo, verificationService,
		deps.Recorder, cfg.JWTSecret, cfg.SessionTTL, deps.Logger)
	userService := service.NewUserService(userRepo, profileRepo, deps.Recorder, deps.Logger)
	twoFaService := service.NewTwoFaService(userRepo, profileRepo, deps.TwoFa, deps.Recorder, deps.Logger)
	accountService := service.NewAccountService(accountRepo, fileRepo, deps.Store, deps.Recorder, deps.Logger)
	profileService := service.NewProfileService(profileRepo, fileRepo, deps.Store, deps.TwoFa, deps.Recorder, deps.Logger)
	goalService := service.NewGoalService(goalRepo, deps.Recorder, deps.Logger)
	transactionService := service.NewTransactionService(transactionRepo, accountRepo, deps.Recorder, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	accountHandler := handler.NewAccountHandler(accountService)
	profileHandler := handler.NewProfileHandler(profileService)
	twoFaHandler := handler.NewTwoFaHandler(twoFaService)
	verificationHandler := handler.NewVerificationHandler(verificationService)
	goalHandler := handler.NewGoalHandler(goalService)
	transactionHandler := handler.NewTransactionHandler(transactionService)

	auth := middleware.Auth(cfg.JWTSecret, sessionRepo)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, ports.Response{
			Status:  http.StatusOK,
			Message: " Welcome to Life Planner API. Please Check the documentation for more details",
		})
	})
	e.POST("/users", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/verification/email/:code", verificationHandler.VerifyEmail)

	// --- Authenticated routes ---
	e.GET("/users/details", userHandler.Details, auth)
	e.PATCH("/users/profile", profileHandler.Update, auth)
	e.POST("/users/verify/password", userHandler.VerifyPassword, auth)
	e.POST("/users/verify/pincode", userHandler.VerifyPinCode, auth)

	e.POST("/accounts", accountHandler.Create, auth)
	e.GET("/accounts", accountHandler.List, auth)
	e.GET("/accounts/:id", accountHandler.Get, auth)

	e.GET("/twofa", twoFaHandler.Generate, auth)
	e.POST("/twofa/verify", twoFaHandler.Verify, auth)

	e.POST("/verification/phone/send", verificationHandler.SendPhoneCode, auth)
	e.POST("/verification/phone", verificationHandler.VerifyPhone, auth)

	e.POST("/goals", goalHandler.Create, auth)
	e.GET("/goals", goalHandler.List, auth)

	e.POST("/transactions", transactionHandler.Create, auth)
	e.GET("/transactions", transactionHandler.List, auth)

	// --- Local storage files ---
	if cfg.Storage.Mode == "local" {
		e.Static("/static", cfg.Storage.LocalDir)
	}

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

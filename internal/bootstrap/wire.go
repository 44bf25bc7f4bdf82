package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/quickdeliver/backend/internal/application/auth"
	"github.com/quickdeliver/backend/internal/application/booking"
	"github.com/quickdeliver/backend/internal/application/delivery"
	"github.com/quickdeliver/backend/internal/application/support"
	"github.com/quickdeliver/backend/internal/config"
	"github.com/quickdeliver/backend/internal/domain"
	"github.com/quickdeliver/backend/internal/infrastructure/db/postgres"
	"github.com/quickdeliver/backend/internal/infrastructure/mail"
	"github.com/quickdeliver/backend/internal/infrastructure/redis"
	"github.com/quickdeliver/backend/internal/infrastructure/security"
	"github.com/quickdeliver/backend/internal/logger"
	http_handlers "github.com/quickdeliver/backend/internal/transport/http/handlers"
	"github.com/quickdeliver/backend/internal/transport/http/middleware"
	"github.com/quickdeliver/backend/internal/transport/http/response"
	"github.com/quickdeliver/backend/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing.
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string, debug bool) (DBCloser, error)

	NewRedis func(addr, password string, db int) RedisClient

	NewMailProvider func(cfg *config.Config) (mail.Provider, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

type DBCloser interface {
	Close() error
}

type RedisClient interface {
	Ping(ctx context.Context) error
	Close() error
	Limiter() *redis.FixedWindowLimiter
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db
	db, err := deps.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	sqlDB, ok := db.(*sql.DB)
	if !ok {
		runCleanup(cleanupFns)
		return nil, nil, errors.New("bootstrap: NewDB did not return *sql.DB")
	}

	// 2) repos
	userRepo := postgres.NewUserRepo(sqlDB)
	deliveryRepo := postgres.NewDeliveryRepo(sqlDB)
	bookingRepo := postgres.NewBookingRepo(sqlDB)
	supportRepo := postgres.NewSupportRepo(sqlDB)

	// 3) redis (best-effort; OTP rate limiting falls away without it)
	var redisCli RedisClient
	if deps.NewRedis != nil && cfg.RedisAddr != "" {
		c := deps.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; otp rate limiting disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			redisCli = c
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	// 4) mail
	provider, err := deps.NewMailProvider(cfg)
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}
	logger.Logger.Info().Str("provider", provider.Name()).Msg("mail provider ready")
	mailer := mail.NewMailer(provider, cfg.AdminEmail)

	// 5) security
	logger.Logger.Info().Str("issuer", cfg.JWTIssuer).Msg("initializing jwt signer")
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)
	otpGen := security.NewDigitOTPGenerator()

	postgres.SeedAdmin(context.Background(), userRepo, hasher, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	// 6) services
	authSvc := auth.NewService(userRepo, hasher, otpGen, signer, mailer, auth.Config{
		AccessTTL: cfg.AccessTokenTTL,
		OTPWindow: cfg.OTPWindow,
	})
	deliverySvc := delivery.NewService(deliveryRepo)
	bookingSvc := booking.NewService(bookingRepo, booking.RandomTrackingID{}, mailer)
	supportSvc := support.NewService(supportRepo, mailer)

	// 7) handlers + middleware
	authH := http_handlers.NewAuthHandler(authSvc)
	adminH := http_handlers.NewAdminHandler(authSvc)
	deliveryH := http_handlers.NewDeliveryHandler(deliverySvc)
	bookingH := http_handlers.NewBookingHandler(bookingSvc)
	supportH := http_handlers.NewSupportHandler(supportSvc)
	healthH := http_handlers.NewHealthHandler(sqlDB)

	authMW := middleware.Auth(signer, response.WriteError)
	adminMW := middleware.RequireAtLeast(string(domain.RoleAdmin), response.WriteError)

	var otpLimitMW func(http.Handler) http.Handler
	if redisCli != nil {
		otpLimitMW = middleware.RateLimitFixedWindow(
			redisCli.Limiter(),
			middleware.FixedWindowConfig{
				RouteKey: "auth.otp",
				Limit:    cfg.OTPRateLimit,
				Window:   cfg.OTPRateWindow,
			},
			response.WriteError,
		)
	}

	// 8) router
	mux, err := deps.NewRouter(router.Deps{
		Health:   healthH,
		Auth:     authH,
		Admin:    adminH,
		Delivery: deliveryH,
		Booking:  bookingH,
		Support:  supportH,

		RequestIDMW: middleware.RequestID,
		AuthMW:      authMW,
		AdminMW:     adminMW,
		OTPLimitMW:  otpLimitMW,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 9) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(addr string, debug bool) (DBCloser, error) {
			return config.NewDB(addr, debug)
		},
		NewRedis: func(addr, password string, db int) RedisClient {
			return redis.New(addr, password, db)
		},
		NewMailProvider: newMailProvider,
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}

// newMailProvider picks SMTP when a host is configured and falls back to
// the log-only sender for dev.
func newMailProvider(cfg *config.Config) (mail.Provider, error) {
	if cfg.SMTPHost == "" {
		return mail.NewLogProvider(), nil
	}
	return mail.NewSMTPProvider(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.FromEmail,
		FromName: cfg.FromName,
	})
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

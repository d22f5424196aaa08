package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"speakyz-backend/internal/bot"
	"speakyz-backend/internal/common/access"
	"speakyz-backend/internal/common/config"
	"speakyz-backend/internal/common/logger"
	"speakyz-backend/internal/common/middleware"
	"speakyz-backend/internal/console"
	adminservice "speakyz-backend/internal/features/admin/service"
	faqhttp "speakyz-backend/internal/features/faq/delivery/http"
	faqrepo "speakyz-backend/internal/features/faq/repository"
	faqpostgres "speakyz-backend/internal/features/faq/repository/postgres"
	faqservice "speakyz-backend/internal/features/faq/service"
	paymentrepo "speakyz-backend/internal/features/payment/repository"
	paymentpostgres "speakyz-backend/internal/features/payment/repository/postgres"
	paymentservice "speakyz-backend/internal/features/payment/service"
	subsservice "speakyz-backend/internal/features/subscription/service"
	userrepo "speakyz-backend/internal/features/user/repository"
	userpostgres "speakyz-backend/internal/features/user/repository/postgres"
	userservice "speakyz-backend/internal/features/user/service"
	"speakyz-backend/internal/platform/postgres"
	"speakyz-backend/internal/platform/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("speakyz-backend", cfg.Debug)
	logger.Info().Msg("starting speakyz backend")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// База данных опциональна: без DATABASE_URL все поверхности работают,
	// но операции с данными отвечают "база данных недоступна".
	var (
		userRepository    userrepo.UserRepository
		faqRepository     faqrepo.FAQRepository
		paymentRepository paymentrepo.PaymentRepository
		storeHealth       faqhttp.HealthChecker
	)

	pg, err := postgres.NewClient(cfg)
	switch {
	case err == nil:
		defer pg.Close()
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure database schema")
		}
		userRepository = userpostgres.NewPostgresRepository(pg.GetDB())
		faqRepository = faqpostgres.NewPostgresRepository(pg.GetDB())
		paymentRepository = paymentpostgres.NewPostgresRepository(pg.GetDB())
		storeHealth = pg
		logger.Info().Msg("connected to postgres")
	case errors.Is(err, postgres.ErrNotConfigured):
		logger.Warn().Msg("DATABASE_URL is not set, running without persistent store")
	default:
		logger.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	gate := access.NewGate(cfg.Telegram.AdminUsername)
	users := userservice.NewUserService(userRepository)
	subscriptions := subsservice.NewSubscriptionService(userRepository, gate)
	faq := faqservice.NewFAQService(faqRepository, gate)
	stats := adminservice.NewStatsService(users, faq, gate)
	payments := paymentservice.NewPaymentService(paymentRepository)

	if userRepository != nil {
		if err := faq.SeedDefaults(ctx); err != nil {
			logger.Error().Err(err).Msg("failed to seed default faq entries")
		}
	}

	router := setupRouter(cfg, faq, storeHealth)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	adminConsole := console.New(users, subscriptions, stats, cfg.Telegram.AdminUsername, os.Stdin, os.Stdout)
	go adminConsole.Run(ctx)

	if cfg.Telegram.BotToken != "" {
		b := bot.New(bot.Deps{
			Client:        telegram.NewClient(cfg.Telegram.BotToken),
			Users:         users,
			Subscriptions: subscriptions,
			FAQ:           faq,
			Stats:         stats,
			Payments:      payments,
			Gate:          gate,
			Config:        cfg,
		})
		go func() {
			if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error().Err(err).Msg("bot stopped with error")
			}
		}()
	} else {
		logger.Warn().Msg("BOT_TOKEN is not set, telegram bot disabled")
	}

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown failed")
	}

	logger.Info().Msg("speakyz backend stopped")
}

func setupRouter(cfg *config.Config, faq faqservice.FAQService, storeHealth faqhttp.HealthChecker) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.Server.Origin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	faqhttp.NewFAQHandler(faq, cfg.School.BotURL, storeHealth).RegisterRoutes(router)

	return router
}

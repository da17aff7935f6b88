package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/zboobraids/booking-api/internal/api/router"
	"github.com/zboobraids/booking-api/internal/availability"
	"github.com/zboobraids/booking-api/internal/calendly"
	"github.com/zboobraids/booking-api/internal/catalog"
	appconfig "github.com/zboobraids/booking-api/internal/config"
	"github.com/zboobraids/booking-api/internal/contact"
	"github.com/zboobraids/booking-api/internal/notify"
	"github.com/zboobraids/booking-api/internal/observability/metrics"
	"github.com/zboobraids/booking-api/internal/square"
	"github.com/zboobraids/booking-api/pkg/logging"
)

func main() {
	// Load .env if present; real env vars win.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting booking API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	m := metrics.NewAvailabilityMetrics(nil)

	// Directory cache: Redis when configured, in-process otherwise.
	var directoryCache calendly.DirectoryCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unreachable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
			directoryCache = calendly.NewMemoryCache(cfg.DirectoryCacheTTL)
		} else {
			directoryCache = calendly.NewRedisCache(rdb, cfg.DirectoryCacheTTL)
		}
	} else {
		directoryCache = calendly.NewMemoryCache(cfg.DirectoryCacheTTL)
	}

	calendlyClient := calendly.NewClient(cfg.CalendlyAPIKey, cfg.CalendlyEventSlug, cfg.CalendlyTimezone, directoryCache, logger)
	calendlyClient.SetBaseURL(cfg.CalendlyBaseURL)

	squareClient := square.NewClient(square.Options{
		AccessToken:        cfg.SquareAccessToken,
		LocationID:         cfg.SquareLocationID,
		ServiceVariationID: cfg.SquareServiceVariationID,
		TeamMemberID:       cfg.SquareTeamMemberID,
		TimezoneOffset:     cfg.SquareTimezoneOffset,
		SearchLimit:        cfg.SquareSearchLimit,
	}, logger)
	squareClient.SetBaseURL(cfg.SquareBaseURL)

	availabilityService := availability.NewService(calendlyClient, squareClient, cfg.SquareTimezoneOffset, logger, m)

	emailSender := newEmailSender(cfg, logger)
	contactHandler := contact.NewHandler(emailSender, cfg.ContactRecipientEmail, cfg.Env, logger, m)

	routerCfg := &router.Config{
		Logger:              logger,
		AvailabilityHandler: availability.NewHandler(availabilityService, logger),
		CalendlyHandler:     calendly.NewHandler(calendlyClient, cfg.SquareTimezoneOffset, cfg.CalendlyBookingURL, logger),
		CatalogHandler:      catalog.NewHandler(),
		ContactHandler:      contactHandler,
		MetricsHandler:      promhttp.Handler(),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		ContactRateLimit:    cfg.ContactRateLimit,
		ContactRateBurst:    cfg.ContactRateBurst,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

func newEmailSender(cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	switch cfg.EmailProvider {
	case "sendgrid":
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender != nil {
			return sender
		}
		logger.Warn("sendgrid selected but not configured, using stub sender")
	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			logger.Warn("failed to load AWS config, using stub sender", "error", err)
			break
		}
		sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.ContactFromEmail,
			FromName:  cfg.ContactFromName,
		}, logger)
		if sender != nil {
			return sender
		}
	}
	return notify.NewStubEmailSender(logger)
}

package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/example/inquiry-service/internal/attest"
	"github.com/example/inquiry-service/internal/common"
	"github.com/example/inquiry-service/internal/geocode"
	"github.com/example/inquiry-service/internal/inquiry"
	"github.com/example/inquiry-service/internal/mailer"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := common.LoadConfig("inquiry-service")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := common.NewLogger(cfg.ServiceName)
	shutdown, err := common.SetupOTel(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialise telemetry")
	}
	defer common.ShutdownTelemetry(context.Background(), shutdown)

	metricsSrv := common.StartMetricsServer(cfg.MetricsPort)
	defer metricsSrv.Shutdown(context.Background())

	if err := cfg.ValidateOutbound(); err != nil {
		logger.Fatal().Err(err).Msg("missing outbound credentials")
	}

	verifier := &attest.HTTPVerifier{
		Endpoint: cfg.RecaptchaVerifyURL,
		Secret:   cfg.RecaptchaSecret,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}

	transport := &mailer.RelayTransport{
		Endpoint: cfg.MailRelayURL,
		APIKey:   cfg.MailRelayAPIKey,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}

	logo := mailer.LoadInlineAttachment(cfg.LogoPath, "logo")
	if logo == nil {
		logger.Warn().Str("path", cfg.LogoPath).Msg("logo asset unavailable, notices go out without it")
	}

	dispatcher := &inquiry.Dispatcher{
		Transport:     transport,
		FromEmail:     cfg.FromEmail,
		FromName:      cfg.FromName,
		OwnerEmail:    cfg.OwnerEmail,
		BusinessPhone: cfg.BusinessPhone,
		Logo:          logo,
		Logger:        logger,
	}
	validator := &inquiry.Validator{Verifier: verifier}

	geocoder := &geocode.Client{
		BaseURL:   cfg.GeocodeBaseURL,
		UserAgent: cfg.GeocodeUserAgent,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}

	r := chi.NewRouter()
	r.Mount("/api/contact", inquiry.NewHandler(validator, dispatcher, logger).Router())
	r.Mount("/api/geocode", geocode.NewHandler(geocoder, logger).Router())

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		logger.Info().Int("port", cfg.HTTPPort).Msg("inquiry service listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

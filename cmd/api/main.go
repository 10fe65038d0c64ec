package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"travel_companion/internal/adapters/aviationstack"
	server "travel_companion/internal/adapters/http_server"
	"travel_companion/internal/adapters/inference"
	"travel_companion/internal/adapters/observability"
	"travel_companion/internal/adapters/rapidapi"
	"travel_companion/internal/adapters/wttr"
	"travel_companion/internal/app"
	"travel_companion/internal/shared"
	"travel_companion/internal/storage/auditlog"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// provider clients
	airports, err := rapidapi.NewAirports(cfg.IataBase, cfg.RapidAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("airport client init failed")
	}
	hotels, err := rapidapi.NewHotels(cfg.BookingBase, cfg.RapidAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("hotel client init failed")
	}
	flights, err := aviationstack.New(cfg.AviationBase, cfg.AviationKey)
	if err != nil {
		log.Fatal().Err(err).Msg("flight client init failed")
	}

	// services
	travel := app.NewTravelService(wttr.New(cfg.WttrBase), airports, flights, hotels)
	assist := app.NewAssistService(inference.New(cfg.InferenceBase))
	audit := auditlog.New(cfg.AuditLogPath)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Travel: travel, Assist: assist, Audit: audit})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

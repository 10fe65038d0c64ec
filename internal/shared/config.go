package shared

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	WttrBase      string
	RapidAPIKey   string
	IataBase      string
	BookingBase   string
	AviationBase  string
	AviationKey   string
	InferenceBase string
	AuditLogPath  string
}

// Load reads configuration from the environment (a .env file is honored
// when present). Provider credentials are never compiled in.
func Load() Config {
	_ = godotenv.Load()

	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ""),
		WttrBase:      env("WTTR_BASE_URL", "https://wttr.in"),
		RapidAPIKey:   env("RAPIDAPI_KEY", ""),
		IataBase:      env("IATA_BASE_URL", "https://iatacodes.p.rapidapi.com"),
		BookingBase:   env("BOOKING_BASE_URL", "https://apidojo-booking-v1.p.rapidapi.com"),
		AviationBase:  env("AVIATIONSTACK_BASE_URL", "http://api.aviationstack.com"),
		AviationKey:   env("AVIATIONSTACK_KEY", ""),
		InferenceBase: env("INFERENCE_BASE_URL", "http://localhost:8600"),
		AuditLogPath:  env("AUDIT_LOG_PATH", "data/logs.csv"),
	}
	if c.RapidAPIKey == "" {
		log.Warn().Msg("RAPIDAPI_KEY is empty")
	}
	if c.AviationKey == "" {
		log.Warn().Msg("AVIATIONSTACK_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

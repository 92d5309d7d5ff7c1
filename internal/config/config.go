package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr     string
	Currency     string
	KafkaBrokers []string // empty disables event publishing
	ServiceName  string
	SeedDemoData bool
}

func Load() Config {
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		Currency:     getenv("CURRENCY", "USD"),
		KafkaBrokers: splitCSV(getenv("KAFKA_BROKERS", "")),
		ServiceName:  getenv("SERVICE_NAME", "orderdesk-api"),
		SeedDemoData: getenv("SEED_DEMO_DATA", "false") == "true",
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

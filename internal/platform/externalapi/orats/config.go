package orats

import (
	"os"
	"strconv"
	"time"

	"orats_data/data"
)

const defaultTimeout = 15 * time.Second

// Config holds the settings for the upstream Data API connection.
type Config struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

// LoadConfig reads the upstream API settings from the environment.
// ORATS_TIMEOUT_SECONDS overrides the request timeout.
func LoadConfig() Config {
	timeout := defaultTimeout
	if s := os.Getenv("ORATS_TIMEOUT_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}
	return Config{
		Token:   os.Getenv(data.EnvToken),
		BaseURL: os.Getenv("ORATS_BASE_URL"),
		Timeout: timeout,
	}
}

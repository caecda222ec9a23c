package data

import (
	"net/http"
	"os"
	"time"
)

const (
	// DefaultBaseURL is the production Data API root.
	DefaultBaseURL = "https://api.orats.io/datav2"
	// EnvToken is the environment variable consulted when no explicit
	// token is configured.
	EnvToken = "ORATS_API_TOKEN"
	// DefaultToken is the restricted demo credential used when neither
	// an explicit token nor the environment provides one.
	DefaultToken = "demo"

	defaultTimeout = 10 * time.Second
)

// Config holds configuration for the Data API client.
type Config struct {
	Token   string        // API token; resolved against EnvToken and DefaultToken when empty
	BaseURL string        // API root (e.g. "https://api.orats.io/datav2")
	Timeout time.Duration // HTTP request timeout for the default client
}

// LoadConfig loads client configuration from environment variables.
func LoadConfig() Config {
	return Config{
		Token:   os.Getenv(EnvToken),
		BaseURL: os.Getenv("ORATS_BASE_URL"),
		Timeout: defaultTimeout,
	}
}

// resolveToken applies the credential priority order:
// explicit value, then environment, then the demo fallback.
func resolveToken(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if t := os.Getenv(EnvToken); t != "" {
		return t
	}
	return DefaultToken
}

// Client dispatches requests against the Data API. A Client is cheap
// and safe to share; the token is fixed for its lifetime.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewClient creates a client from the given configuration. A nil
// httpClient falls back to a timeout-bounded default; an empty base
// URL falls back to production.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		token:   resolveToken(cfg.Token),
		baseURL: cfg.BaseURL,
		client:  httpClient,
	}
}

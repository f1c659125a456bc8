package config

import (
	"os"
	"time"
)

// Server captures the pricing service configuration.
type Server struct {
	Addr      string
	LogLevel  string
	StaticDir string
}

// Client captures where hosts of the calculator send quote requests.
type Client struct {
	QuoteURL string
	Timeout  time.Duration
	LogLevel string
}

const (
	defaultPort     = "8080"
	defaultQuoteURL = "http://localhost:8080"
	defaultTimeout  = 10 * time.Second
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	return Server{
		Addr:      ":" + port,
		LogLevel:  os.Getenv("SLAS_LOG_LEVEL"),
		StaticDir: os.Getenv("SLAS_STATIC_DIR"),
	}
}

// ClientFromEnv builds a Client config. An unparseable SLAS_QUOTE_TIMEOUT
// keeps the default.
func ClientFromEnv() Client {
	url := os.Getenv("SLAS_QUOTE_URL")
	if url == "" {
		url = defaultQuoteURL
	}

	timeout := defaultTimeout
	if raw := os.Getenv("SLAS_QUOTE_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			timeout = d
		}
	}

	return Client{
		QuoteURL: url,
		Timeout:  timeout,
		LogLevel: os.Getenv("SLAS_LOG_LEVEL"),
	}
}

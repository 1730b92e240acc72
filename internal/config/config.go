package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultGraphQLEndpoint is used when neither backend variable is set.
const DefaultGraphQLEndpoint = "http://localhost:8080/graphql"

const (
	defaultAddr          = ":3000"
	defaultBaseURL       = "http://localhost:3000"
	defaultSiteName      = "Sitefront"
	defaultJobsPerPage   = 12
	devSessionSecret     = "sitefront-development-session-secret"
	envWordPressURL      = "NEXT_PUBLIC_WORDPRESS_URL"
	envWordPressEndpoint = "NEXT_PUBLIC_WORDPRESS_GRAPHQL_ENDPOINT"
)

// Provider exposes configuration to the rest of the application.
type Provider interface {
	GetWordPressURL() string
	GetGraphQLEndpoint() string
	GetAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetSiteName() string
	GetJobsPerPage() int
	GetEmailProvider() string
	GetEmailAPIKey() string
	GetEmailSender() string
	GetContactRecipient() string
}

// Config holds all configuration for the application.
type Config struct {
	WordPressURL    string
	GraphQLEndpoint string
	Addr            string
	AppBaseURL      string
	SessionSecret   string
	SiteName        string
	JobsPerPage     int

	// Contact form notifications.
	EmailProvider    string // "log" or "resend"
	EmailAPIKey      string
	EmailSender      string
	ContactRecipient string
}

// New loads configuration from a .env file (if present) and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function. Missing values fall back to
// local development defaults; nothing here is fatal.
func FromEnv(getenv func(string) string) *Config {
	cfg := &Config{
		WordPressURL:    strings.TrimRight(getenv(envWordPressURL), "/"),
		GraphQLEndpoint: getenv(envWordPressEndpoint),
		Addr:            valueOr(getenv("APP_ADDR"), defaultAddr),
		AppBaseURL:      strings.TrimRight(valueOr(getenv("APP_BASE_URL"), defaultBaseURL), "/"),
		SessionSecret:   getenv("SESSION_SECRET"),
		SiteName:        valueOr(getenv("SITE_NAME"), defaultSiteName),
		JobsPerPage:     defaultJobsPerPage,

		EmailProvider:    valueOr(getenv("EMAIL_PROVIDER"), "log"),
		EmailAPIKey:      getenv("EMAIL_API_KEY"),
		EmailSender:      getenv("EMAIL_SENDER"),
		ContactRecipient: getenv("CONTACT_RECIPIENT"),
	}

	if cfg.GraphQLEndpoint == "" {
		if cfg.WordPressURL != "" {
			cfg.GraphQLEndpoint = cfg.WordPressURL + "/graphql"
		} else {
			cfg.GraphQLEndpoint = DefaultGraphQLEndpoint
		}
	}

	if cfg.SessionSecret == "" {
		slog.Warn("SESSION_SECRET is not set, using an insecure development secret")
		cfg.SessionSecret = devSessionSecret
	}

	if raw := getenv("JOBS_PER_PAGE"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.JobsPerPage = n
		} else {
			slog.Warn("Ignoring invalid JOBS_PER_PAGE", "value", raw)
		}
	}

	return cfg
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func (c *Config) GetWordPressURL() string    { return c.WordPressURL }
func (c *Config) GetGraphQLEndpoint() string { return c.GraphQLEndpoint }
func (c *Config) GetAddr() string            { return c.Addr }
func (c *Config) GetAppBaseURL() string      { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string   { return c.SessionSecret }
func (c *Config) GetSiteName() string        { return c.SiteName }
func (c *Config) GetJobsPerPage() int        { return c.JobsPerPage }

func (c *Config) GetEmailProvider() string    { return c.EmailProvider }
func (c *Config) GetEmailAPIKey() string      { return c.EmailAPIKey }
func (c *Config) GetEmailSender() string      { return c.EmailSender }
func (c *Config) GetContactRecipient() string { return c.ContactRecipient }

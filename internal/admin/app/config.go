package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full service configuration, parsed from environment
// variables.
type Config struct {
	// Issuer is the expected iss claim on incoming access tokens.
	Issuer string `env:"ORGDESK_ISSUER" envDefault:"orgdesk-idp"`

	// AuthPublicKeyFile points at the identity provider's Ed25519 public
	// key in PEM form. Required: without it no token can be verified.
	AuthPublicKeyFile string `env:"ORGDESK_AUTH_PUBLIC_KEY_FILE,notEmpty"`

	// PublicOrigin is the dashboard origin used to build invite links,
	// e.g. https://admin.example.com.
	PublicOrigin string `env:"ORGDESK_PUBLIC_ORIGIN" envDefault:"http://localhost:8080"`

	// BootstrapToken guards POST /v1/bootstrap. Empty disables bootstrap.
	BootstrapToken string `env:"BOOTSTRAP_TOKEN"`

	DatabaseFile string `env:"ORGDESK_DATABASE_FILE" envDefault:"orgdesk.db"`

	InviteTTL            time.Duration `env:"ORGDESK_INVITE_TTL" envDefault:"168h"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Port      int    `env:"PORT" envDefault:"8080"`

	// SMTP settings; when Host is empty, invite emails are logged
	// instead of sent.
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"no-reply@orgdesk.local"`
}

// LoadConfig parses the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

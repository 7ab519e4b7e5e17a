package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"
)

const (
	RecordStoreSheets   = "sheets"
	RecordStorePostgres = "postgres"
	RecordStoreMemory   = "memory"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogMode  string `env:"LOG_MODE" envDefault:"release"`
	LogDir   string `env:"LOG_DIR"`
	Timezone string `env:"TIMEZONE" envDefault:"America/Monterrey"`

	RecordStore           string `env:"RECORD_STORE" envDefault:"sheets"`
	GoogleCredentials     string `env:"GOOGLE_CREDENTIALS"`
	GoogleCredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE"`
	GoogleSheetID         string `env:"GOOGLE_SHEET_ID"`
	GoogleSheetWorksheet  string `env:"GOOGLE_SHEET_WORKSHEET" envDefault:"datos_pedidos"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"orderdesk"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	AWSAccessKeyID     string        `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string        `env:"AWS_SECRET_ACCESS_KEY"`
	AWSRegion          string        `env:"AWS_REGION"`
	S3BucketName       string        `env:"S3_BUCKET_NAME"`
	S3Endpoint         string        `env:"S3_ENDPOINT"`
	S3AttachmentPrefix string        `env:"S3_ATTACHMENT_PREFIX" envDefault:"adjuntos_pedidos/"`
	SignedURLTTL       time.Duration `env:"SIGNED_URL_TTL" envDefault:"1h"`

	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"60s"`
	RedisAddr   string        `env:"REDIS_ADDR"`
	RedisPrefix string        `env:"REDIS_PREFIX" envDefault:"orderdesk"`

	WorkflowProfile string        `env:"WORKFLOW_PROFILE" envDefault:"intake"`
	StaleAfter      time.Duration `env:"STALE_AFTER"`
	HistoryWindow   time.Duration `env:"HISTORY_WINDOW"`
	HistoryCap      int           `env:"HISTORY_CAP"`
	SweepSchedule   string        `env:"SWEEP_SCHEDULE"`
}

// LoadConfig reads an optional .env file and then the environment. Variables
// already set in the environment win over the file.
func LoadConfig(dotenvPaths ...string) (Config, error) {
	if len(dotenvPaths) == 0 {
		dotenvPaths = []string{".env"}
	}
	for _, p := range dotenvPaths {
		// A missing file is fine; the environment alone may be complete.
		_ = godotenv.Load(p)
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return c, nil
}

// Validate reports every missing or inconsistent key at once.
func (c Config) Validate() error {
	var problems []error

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		problems = append(problems, errs.NewConfigurationErrorWithCause("TIMEZONE", "use an IANA zone such as America/Monterrey", err))
	}

	switch strings.ToLower(c.RecordStore) {
	case RecordStoreSheets:
		if strings.TrimSpace(c.GoogleSheetID) == "" {
			problems = append(problems, errs.NewConfigurationError("GOOGLE_SHEET_ID", "set the id of the orders spreadsheet"))
		}
		if c.GoogleCredentials == "" && c.GoogleCredentialsFile == "" {
			problems = append(problems, errs.NewConfigurationError("GOOGLE_CREDENTIALS",
				"set GOOGLE_CREDENTIALS to the service account JSON or GOOGLE_CREDENTIALS_FILE to its path"))
		}
	case RecordStorePostgres:
		if strings.TrimSpace(c.DBHost) == "" || strings.TrimSpace(c.DBName) == "" {
			problems = append(problems, errs.NewConfigurationError("DB_HOST", "set DB_HOST and DB_NAME"))
		}
	case RecordStoreMemory:
	default:
		problems = append(problems, errs.NewConfigurationError("RECORD_STORE", "use sheets, postgres or memory"))
	}

	if strings.TrimSpace(c.S3BucketName) == "" {
		problems = append(problems, errs.NewConfigurationError("S3_BUCKET_NAME", "set the bucket that holds order attachments"))
	}
	if strings.TrimSpace(c.AWSRegion) == "" {
		problems = append(problems, errs.NewConfigurationError("AWS_REGION", "set the region of the attachment bucket"))
	}
	if c.SignedURLTTL <= 0 || c.SignedURLTTL > 7*24*time.Hour {
		problems = append(problems, errs.NewValueIsOutOfRangeError("SIGNED_URL_TTL", c.SignedURLTTL, "1s", "168h"))
	}
	if c.CacheTTL < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("CACHE_TTL", c.CacheTTL, 0, "unbounded"))
	}

	if _, err := c.Profile(); err != nil {
		problems = append(problems, err)
	}

	return errors.Join(problems...)
}

// Location returns the configured zone, or UTC when it does not load.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Profile returns the workflow profile with the configured overrides applied.
func (c Config) Profile() (services.WorkflowProfile, error) {
	profile, err := services.ProfileByName(c.WorkflowProfile)
	if err != nil {
		return services.WorkflowProfile{}, errs.NewConfigurationErrorWithCause("WORKFLOW_PROFILE", "use intake or fulfillment", err)
	}
	if c.StaleAfter > 0 {
		profile.StaleAfter = c.StaleAfter
	}
	if c.HistoryWindow > 0 {
		profile.History.Window = c.HistoryWindow
	}
	if c.HistoryCap > 0 {
		profile.History.Cap = c.HistoryCap
	}
	if err = profile.Validate(); err != nil {
		return services.WorkflowProfile{}, errs.NewConfigurationErrorWithCause("WORKFLOW_PROFILE", "check STALE_AFTER, HISTORY_WINDOW and HISTORY_CAP", err)
	}
	return profile, nil
}

// PgDSN builds the PostgreSQL connection string.
func (c Config) PgDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

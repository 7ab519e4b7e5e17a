package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"
)

func validConfig() Config {
	return Config{
		HTTPPort:           "8080",
		Timezone:           "America/Monterrey",
		RecordStore:        RecordStoreMemory,
		AWSRegion:          "us-east-1",
		S3BucketName:       "orders",
		S3AttachmentPrefix: "adjuntos_pedidos/",
		SignedURLTTL:       time.Hour,
		CacheTTL:           time.Minute,
		WorkflowProfile:    services.ProfileIntake,
	}
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	// Arrange
	t.Setenv("S3_BUCKET_NAME", "orders")

	// Act
	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "8080", c.HTTPPort)
	assert.Equal(t, "America/Monterrey", c.Timezone)
	assert.Equal(t, RecordStoreSheets, c.RecordStore)
	assert.Equal(t, "datos_pedidos", c.GoogleSheetWorksheet)
	assert.Equal(t, "adjuntos_pedidos/", c.S3AttachmentPrefix)
	assert.Equal(t, time.Hour, c.SignedURLTTL)
	assert.Equal(t, 60*time.Second, c.CacheTTL)
	assert.Equal(t, "orders", c.S3BucketName)
}

func TestLoadConfig_ReadsDotenvWithoutOverridingEnvironment(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=9090\nDB_NAME=from_dotenv\n"), 0o600))
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("DB_NAME", "")
	require.NoError(t, os.Unsetenv("DB_NAME"))

	// Act
	c, err := LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "7070", c.HTTPPort)
	assert.Equal(t, "from_dotenv", c.DBName)
}

func TestLoadConfig_RejectsMalformedDuration(t *testing.T) {
	t.Setenv("SIGNED_URL_TTL", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config parse")
}

func TestConfig_Validate_AcceptsMemoryStore(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_ReportsEveryProblem(t *testing.T) {
	// Arrange
	c := validConfig()
	c.RecordStore = RecordStoreSheets
	c.S3BucketName = ""
	c.Timezone = "Mars/Olympus"

	// Act
	err := c.Validate()

	// Assert
	require.Error(t, err)
	var cfgErr *errs.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	for _, key := range []string{"GOOGLE_SHEET_ID", "GOOGLE_CREDENTIALS", "S3_BUCKET_NAME", "TIMEZONE"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestConfig_Validate_RejectsUnknownStoreAndProfile(t *testing.T) {
	c := validConfig()
	c.RecordStore = "excel"
	c.WorkflowProfile = "billing"

	err := c.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RECORD_STORE")
	assert.Contains(t, err.Error(), "WORKFLOW_PROFILE")
}

func TestConfig_Validate_RejectsSignedURLTTLOutOfRange(t *testing.T) {
	c := validConfig()
	c.SignedURLTTL = 8 * 24 * time.Hour

	err := c.Validate()

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestConfig_Profile_AppliesOverrides(t *testing.T) {
	// Arrange
	c := validConfig()
	c.WorkflowProfile = services.ProfileFulfillment
	c.StaleAfter = 30 * time.Minute
	c.HistoryCap = 10

	// Act
	profile, err := c.Profile()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, services.ProfileFulfillment, profile.Name)
	assert.Equal(t, 30*time.Minute, profile.StaleAfter)
	assert.Equal(t, 10, profile.History.Cap)
	assert.Equal(t, services.StatusPriority, profile.Ordering)
}

func TestConfig_Location_FallsBackToUTC(t *testing.T) {
	c := validConfig()
	c.Timezone = "nowhere"

	assert.Equal(t, time.UTC, c.Location())
}

func TestConfig_PgDSN(t *testing.T) {
	c := Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "orders", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=orders sslmode=disable", c.PgDSN())
}

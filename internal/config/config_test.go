package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "appointments"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "09:00", cfg.Booking.OpenTime)
	assert.Equal(t, "20:00", cfg.Booking.CloseTime)
	assert.Equal(t, "America/Los_Angeles", cfg.Booking.Timezone)
	assert.Equal(t, 30, cfg.Booking.MaxAdvanceDays)
	assert.Equal(t, "/confirmation", cfg.Booking.RedirectTarget)
	assert.Len(t, cfg.Booking.OperatingDays, 6)
	assert.False(t, cfg.Mail.Enabled)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
dbname = "appointments"

[booking]
operating_days = ["tuesday", "wednesday"]
open_time = "10:00"
close_time = "18:00"
max_advance_days = 14
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, []string{"tuesday", "wednesday"}, cfg.Booking.OperatingDays)
	assert.Equal(t, "10:00", cfg.Booking.OpenTime)
	assert.Equal(t, 14, cfg.Booking.MaxAdvanceDays)
}

func TestLoad_Validation(t *testing.T) {
	// Missing database name
	_, err := Load(writeConfig(t, `
[server]
http_port = 8080
`))
	assert.Error(t, err)

	// Mail enabled without SMTP settings
	_, err = Load(writeConfig(t, `
[database]
dbname = "appointments"

[mail]
enabled = true
`))
	assert.Error(t, err)

	// Unknown weekday in the booking section
	_, err = Load(writeConfig(t, `
[database]
dbname = "appointments"

[booking]
operating_days = ["caturday"]
`))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestPolicyConfig_ConvertsWeekdays(t *testing.T) {
	b := BookingConfig{
		OperatingDays:  []string{"Monday", "saturday"},
		OpenTime:       "09:00",
		CloseTime:      "20:00",
		Timezone:       "America/Los_Angeles",
		MaxAdvanceDays: 30,
	}

	cfg, err := b.PolicyConfig()
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Saturday}, cfg.OperatingDays)
	assert.Equal(t, 30, cfg.MaxAdvanceDays)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "app",
		Password: "secret",
		DBName:   "appointments",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=app password=secret dbname=appointments sslmode=disable",
		db.DSN())
}

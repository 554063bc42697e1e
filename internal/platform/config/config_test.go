package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "time/tzdata"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Empty(t, cfg.JWTIssuer)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 6, cfg.TrendMonths)
	assert.Equal(t, 3, cfg.SummaryMonths)
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "9090")
	v.Set("JWT_SECRET", "s3cret")
	v.Set("JWT_ISSUER", "household-auth")
	v.Set("TIMEZONE", "Europe/Rome")
	v.Set("LOCALE", "it")
	v.Set("TREND_MONTHS", 12)
	v.Set("SUMMARY_MONTHS", "4")

	cfg, err := load(v)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "household-auth", cfg.JWTIssuer)
	assert.Equal(t, "Europe/Rome", cfg.Location.String())
	assert.Equal(t, "it", cfg.Locale)
	assert.Equal(t, 12, cfg.TrendMonths)
	assert.Equal(t, 4, cfg.SummaryMonths)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]any
	}{
		{name: "unknown timezone", set: map[string]any{"TIMEZONE": "Mars/Olympus"}},
		{name: "default secret in production", set: map[string]any{"IS_PRODUCTION": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := load(v)
			assert.Error(t, err)
		})
	}
}

func TestLoad_NonPositiveMonthsFallBack(t *testing.T) {
	v := viper.New()
	v.Set("TREND_MONTHS", 0)
	v.Set("SUMMARY_MONTHS", -2)

	cfg, err := load(v)

	require.NoError(t, err)
	assert.Equal(t, 6, cfg.TrendMonths)
	assert.Equal(t, 3, cfg.SummaryMonths)
}

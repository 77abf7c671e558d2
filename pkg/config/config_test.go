package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	var cfg Config
	require.NoError(t, Load(&cfg))

	require.Equal(t, "campaign.yml", cfg.CampaignFile)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_test_key")
	t.Setenv("CAMPAIGN_FILE", "custom.yml")
	t.Setenv("MAILER_DEV_DIR", "./out")

	var cfg Config
	require.NoError(t, Load(&cfg))

	require.Equal(t, "re_test_key", cfg.ResendAPIKey)
	require.Equal(t, "custom.yml", cfg.CampaignFile)
	require.Equal(t, "./out", cfg.DevDir)
}

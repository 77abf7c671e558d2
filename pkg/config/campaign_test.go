package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCampaignFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campaign.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCampaign_Full(t *testing.T) {
	t.Parallel()

	path := writeCampaignFile(t, `
from: "Team <team@example.com>"
recipients:
  - a@example.com
  - b@example.com
subject: "Hello"
reply_to: support@example.com
attachment:
  path: files/brochure.pdf
  name: brochure.pdf
delay_seconds: 2
templates_dir: emails
`)

	c, err := LoadCampaign(path)

	require.NoError(t, err)
	require.Equal(t, "Team <team@example.com>", c.From)
	require.Equal(t, []string{"a@example.com", "b@example.com"}, c.Recipients)
	require.Equal(t, "Hello", c.Subject)
	require.Equal(t, "support@example.com", c.ReplyTo)
	require.NotNil(t, c.Attachment)
	require.Equal(t, "files/brochure.pdf", c.Attachment.Path)
	require.Equal(t, "brochure.pdf", c.Attachment.Name)
	require.Equal(t, 2, c.DelaySeconds)
	require.Equal(t, "emails", c.TemplatesDir)
}

func TestLoadCampaign_Defaults(t *testing.T) {
	t.Parallel()

	path := writeCampaignFile(t, `
from: team@example.com
recipients: [a@example.com]
subject: "Hello"
`)

	c, err := LoadCampaign(path)

	require.NoError(t, err)
	require.Equal(t, DefaultDelaySeconds, c.DelaySeconds)
	require.Equal(t, DefaultTemplatesDir, c.TemplatesDir)
	require.Nil(t, c.Attachment)
}

func TestLoadCampaign_MissingFrom(t *testing.T) {
	t.Parallel()

	path := writeCampaignFile(t, `
recipients: [a@example.com]
subject: "Hello"
`)

	_, err := LoadCampaign(path)

	require.ErrorIs(t, err, ErrInvalidCampaign)
}

func TestLoadCampaign_EmptyRecipients(t *testing.T) {
	t.Parallel()

	path := writeCampaignFile(t, `
from: team@example.com
subject: "Hello"
`)

	_, err := LoadCampaign(path)

	require.ErrorIs(t, err, ErrInvalidCampaign)
}

func TestLoadCampaign_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadCampaign(filepath.Join(t.TempDir(), "missing.yml"))

	require.ErrorIs(t, err, ErrCampaignFileNotFound)
}

func TestLoadCampaign_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeCampaignFile(t, "from: [unclosed")

	_, err := LoadCampaign(path)

	require.ErrorIs(t, err, ErrInvalidCampaign)
}

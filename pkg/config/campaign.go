package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrCampaignFileNotFound indicates the campaign YAML file is missing.
	ErrCampaignFileNotFound = errors.New("campaign file not found")

	// ErrInvalidCampaign indicates the campaign file fails validation.
	ErrInvalidCampaign = errors.New("invalid campaign file")
)

// DefaultDelaySeconds paces sends for the provider rate limit of
// 2 requests per second.
const DefaultDelaySeconds = 1

// DefaultTemplatesDir is where campaign HTML templates live unless the
// campaign file says otherwise.
const DefaultTemplatesDir = "templates/emails"

// Campaign holds the static settings of one campaign run, read from a
// YAML file.
type Campaign struct {
	From         string         `yaml:"from"`
	Recipients   []string       `yaml:"recipients"`
	Subject      string         `yaml:"subject"`
	ReplyTo      string         `yaml:"reply_to"`
	Attachment   *AttachmentRef `yaml:"attachment"`
	DelaySeconds int            `yaml:"delay_seconds"`
	TemplatesDir string         `yaml:"templates_dir"`
}

// AttachmentRef points at a file to attach to every outgoing message.
type AttachmentRef struct {
	Path string `yaml:"path"`
	Name string `yaml:"name"`
}

// LoadCampaign reads and validates a campaign file, applying defaults for
// the delay and templates directory.
func LoadCampaign(path string) (*Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCampaignFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read campaign file %s: %w", path, err)
	}

	var c Campaign
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCampaign, err)
	}

	if c.From == "" {
		return nil, fmt.Errorf("%w: from is required", ErrInvalidCampaign)
	}
	if len(c.Recipients) == 0 {
		return nil, fmt.Errorf("%w: recipients cannot be empty", ErrInvalidCampaign)
	}

	if c.DelaySeconds <= 0 {
		c.DelaySeconds = DefaultDelaySeconds
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = DefaultTemplatesDir
	}

	return &c, nil
}

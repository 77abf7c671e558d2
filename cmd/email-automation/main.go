// Command email-automation sends a templated email campaign through the
// Resend API. It runs once, end to end, with no flags: the API key comes
// from the environment (or a .env file) and the campaign settings from a
// YAML file.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/Klavis-AI/email-automation/pkg/campaign"
	"github.com/Klavis-AI/email-automation/pkg/config"
	"github.com/Klavis-AI/email-automation/pkg/logger"
	"github.com/Klavis-AI/email-automation/pkg/mailer"
	"github.com/Klavis-AI/email-automation/pkg/mailer/resend"
)

func main() {
	if err := run(); err != nil {
		slog.Error("run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	var cfg config.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.ParseFormat(cfg.LogFormat)),
	)

	camp, err := config.LoadCampaign(cfg.CampaignFile)
	if err != nil {
		return err
	}

	var attachments []mailer.Attachment
	if camp.Attachment != nil && camp.Attachment.Path != "" {
		att, err := mailer.NewAttachmentFromFile(camp.Attachment.Path, camp.Attachment.Name)
		switch {
		case errors.Is(err, mailer.ErrAttachmentNotFound):
			// Missing attachment is not fatal: the campaign goes out without it.
			log.Warn("attachment file not found, sending without attachment",
				slog.String("path", camp.Attachment.Path))
		case err != nil:
			return err
		default:
			attachments = append(attachments, att)
		}
	}

	var sender mailer.Sender
	if cfg.DevDir != "" {
		log.Info("using development sender", slog.String("dir", cfg.DevDir))
		sender = mailer.NewDevSender(cfg.DevDir)
	} else {
		sender = resend.New(resend.Config{APIKey: cfg.ResendAPIKey})
	}

	summary, err := campaign.New(sender, campaign.WithLogger(log)).
		Run(context.Background(), campaign.Config{
			From:        camp.From,
			Subject:     camp.Subject,
			ReplyTo:     camp.ReplyTo,
			Recipients:  camp.Recipients,
			Attachments: attachments,
			Delay:       time.Duration(camp.DelaySeconds) * time.Second,
			Templates:   os.DirFS(camp.TemplatesDir),
		})
	if err != nil {
		return err
	}

	log.Info("run summary",
		slog.String("run_id", summary.RunID),
		slog.Int("total", summary.Total),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed))

	// Template distribution counts successful sends only.
	tmplIdxs := make([]int, 0, len(summary.ByTemplate))
	for idx := range summary.ByTemplate {
		tmplIdxs = append(tmplIdxs, idx)
	}
	sort.Ints(tmplIdxs)
	for _, idx := range tmplIdxs {
		log.Info("template distribution",
			slog.Int("template", idx),
			slog.Int("sent", summary.ByTemplate[idx]))
	}

	return nil
}

// Command setwebhook points the bot at the server's webhook endpoint.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"newsdesk/internal/config"
	"newsdesk/internal/telegram"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	webhookURL := flag.String("url", "", "public webhook url, overrides telegram.webhook_url")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	url := cfg.Telegram.WebhookURL
	if *webhookURL != "" {
		url = *webhookURL
	}
	if url == "" {
		logger.Error("webhook url is not set, use -url or telegram.webhook_url")
		os.Exit(1)
	}

	bot := telegram.New(telegram.Config{
		BaseURL: cfg.Telegram.BaseURL,
		Token:   cfg.Telegram.BotToken,
		Timeout: cfg.Telegram.Timeout,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Telegram.Timeout)
	defer cancel()

	if err := bot.SetWebhook(ctx, url); err != nil {
		logger.Error("failed to set webhook", "error", err)
		os.Exit(1)
	}

	logger.Info("webhook registered", "url", url)
}

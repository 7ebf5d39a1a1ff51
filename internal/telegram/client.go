package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const maxResponseSize = 1 << 20

// Config holds Telegram Bot API client configuration.
type Config struct {
	BaseURL   string
	Token     string
	ParseMode string
	Timeout   time.Duration
}

// APIError is returned when the Bot API rejects a call.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api request failed: status=%d description=%s", e.StatusCode, e.Description)
}

// Client calls the Telegram Bot API. Calls are never retried.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	parseMode  string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		token:     cfg.Token,
		parseMode: cfg.ParseMode,
		logger:    logger.With("component", "telegram"),
	}
}

// SendMessage delivers text to the chat using the configured parse mode.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	err := c.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: c.parseMode,
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	c.logger.Debug("message sent", "chat_id", chatID)
	return nil
}

// SetWebhook points the bot's updates at url. Only message updates are requested.
func (c *Client) SetWebhook(ctx context.Context, url string) error {
	err := c.call(ctx, "setWebhook", setWebhookRequest{
		URL:            url,
		AllowedUpdates: []string{"message"},
	})
	if err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}

	c.logger.Info("webhook registered", "url", url)
	return nil
}

func (c *Client) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// err includes the request URL, which embeds the token.
		return fmt.Errorf("execute request: %s", c.redact(err.Error()))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return &APIError{StatusCode: resp.StatusCode, Description: string(raw)}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !apiResp.OK {
		return &APIError{StatusCode: resp.StatusCode, Description: apiResp.Description}
	}

	return nil
}

func (c *Client) redact(s string) string {
	if c.token == "" {
		return s
	}
	return strings.ReplaceAll(s, c.token, "<token>")
}

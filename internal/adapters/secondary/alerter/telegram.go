package alerter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const telegramAPIBase = "https://api.telegram.org"

// Client клиент для отправки операционных алертов в Telegram группу
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	log        *slog.Logger
}

// NewClient создаёт новый клиент для отправки алертов.
// Возвращает nil, если алертер не сконфигурирован - вызывающий слой
// трактует nil как "алерты выключены".
func NewClient(cfg *Config, log *slog.Logger) *Client {
	if cfg == nil || cfg.BotToken == "" {
		return nil
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// SendAlert отправляет алерт в чат (или топик форума)
func (c *Client) SendAlert(ctx context.Context, message string) error {
	if c == nil || c.HTTPClient == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	payload := map[string]interface{}{
		"chat_id": c.cfg.ChatID,
		"text":    message,
	}
	if c.cfg.MessageThreadID != nil {
		payload["message_thread_id"] = *c.cfg.MessageThreadID
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", telegramAPIBase, c.cfg.BotToken)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send alert: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("failed to send alert",
			"status_code", resp.StatusCode,
			"chat_id", c.cfg.ChatID,
		)
		return fmt.Errorf("telegram API error [status=%d]: %s", resp.StatusCode, string(body))
	}

	c.log.Debug("alert sent successfully",
		"chat_id", c.cfg.ChatID,
		"message_thread_id", c.cfg.MessageThreadID,
	)

	return nil
}

package sendgrid

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hazcam-nano/astra-intake-api/internal/domain"
)

const mailSend = "mail/send"

// Client - клиент для отправки транзакционных писем
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый почтовый клиент
func NewClient(cfg *Config, log *slog.Logger) *Client {
	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Log: log,
	}
}

// buildURL собирает полный URL из BaseURL и endpoint
func (c *Client) buildURL(endpoint string) string {
	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return baseURL + "/" + strings.TrimPrefix(endpoint, "/")
}

// setHeaders устанавливает стандартные заголовки для запросов к API
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.ApiKey)
	}
}

// Send отправляет письмо с вложением через mail/send.
// Провайдер отвечает 202 при приёме; фактическая доставка асинхронна
// и здесь не подтверждается.
func (c *Client) Send(ctx context.Context, mail domain.OutboundEmail) error {
	reqBody := mailSendRequest{
		Personalizations: []personalization{
			{To: []emailAddress{{Email: mail.To}}},
		},
		From:    emailAddress{Email: c.cfg.Sender},
		Subject: mail.Subject,
		Content: []mailContent{
			{Type: "text/plain", Value: mail.Body},
		},
	}

	if len(mail.Attachment) > 0 {
		reqBody.Attachments = []mailAttachment{
			{
				Content:     base64.StdEncoding.EncodeToString(mail.Attachment),
				Type:        "application/pdf",
				Filename:    mail.AttachmentName,
				Disposition: "attachment",
			},
		}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	url := c.buildURL(mailSend)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.Log.Debug("mail API returned non-2xx status",
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return fmt.Errorf("mail API error [status=%d]: %s", resp.StatusCode, truncateString(string(body), 500))
	}

	c.Log.Debug("mail accepted by provider",
		"status_code", resp.StatusCode,
		"attachment_size", len(mail.Attachment),
	)

	return nil
}

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

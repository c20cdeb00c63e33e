package hcaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client - клиент для серверной проверки hCaptcha-токенов
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый клиент для siteverify-эндпоинта
func NewClient(cfg *Config, log *slog.Logger) *Client {
	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Log: log,
	}
}

// verifyResponse ответ siteverify; нас интересует только флаг success
type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

// Verify проверяет токен server-to-server запросом к провайдеру.
// Возвращает (false, nil), если провайдер отклонил токен,
// и ошибку - если провайдер недоступен или ответил мусором.
func (c *Client) Verify(ctx context.Context, token string) (bool, error) {
	form := url.Values{
		"secret":   {c.cfg.Secret},
		"response": {token},
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("siteverify returned non-200 status",
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return false, fmt.Errorf("siteverify error [status=%d]: %s", resp.StatusCode, truncateString(string(body), 500))
	}

	var vr verifyResponse
	if err := json.Unmarshal(body, &vr); err != nil {
		c.Log.Debug("failed to unmarshal siteverify response",
			"error", err,
			"body_preview", truncateString(string(body), 200),
		)
		return false, fmt.Errorf("siteverify unmarshal failed: %w", err)
	}

	if !vr.Success {
		c.Log.Debug("captcha token rejected by provider",
			"error_codes", vr.ErrorCodes,
		)
		return false, nil
	}

	return true, nil
}

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

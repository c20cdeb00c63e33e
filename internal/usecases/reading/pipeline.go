package reading

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hazcam-nano/astra-intake-api/internal/domain"
)

const (
	// FallbackReadingText подставляется вместо пустого ответа генератора
	FallbackReadingText = "No content generated."

	// testModeReadingText рендерится в тестовом режиме вместо похода к генератору
	testModeReadingText = "Test mode: generation skipped."

	attachmentName = "reading.pdf"
)

// Process прогоняет запрос через весь пайплайн: валидация, captcha,
// генерация текста, сборка PDF, отправка письма. Каждый шаг ждёт
// предыдущий, ретраев нет - любая ошибка терминальна для запроса.
func (s *Service) Process(ctx context.Context, requestID uuid.UUID, req domain.ReadingRequest) error {
	if err := req.Validate(); err != nil {
		s.Log.Warn("reading request validation failed",
			"error", err,
			"request_id", requestID,
		)
		return err
	}

	ok, err := s.Captcha.Verify(ctx, req.CaptchaToken)
	if err != nil {
		s.Log.Error("captcha verification unreachable",
			"error", err,
			"request_id", requestID,
		)
		s.alert(ctx, requestID, "captcha", err)
		return domain.ErrCaptchaUnreachable
	}
	if !ok {
		s.Log.Warn("captcha token rejected",
			"request_id", requestID,
		)
		return domain.ErrCaptchaRejected
	}

	readingText := testModeReadingText
	if !s.Cfg.TestMode {
		readingText, err = s.Generator.Generate(ctx, BuildPrompt(req))
		if err != nil {
			s.Log.Error("failed to generate reading",
				"error", err,
				"request_id", requestID,
			)
			s.alert(ctx, requestID, "generation", err)
			return domain.ErrGenerationFailed
		}
	}

	if strings.TrimSpace(readingText) == "" {
		s.Log.Warn("generator returned empty reading, using fallback",
			"request_id", requestID,
		)
		readingText = FallbackReadingText
	}

	document, err := s.Renderer.Render(ctx, req, readingText)
	if err != nil {
		s.Log.Error("failed to render reading document",
			"error", err,
			"request_id", requestID,
		)
		s.alert(ctx, requestID, "render", err)
		return domain.ErrRenderFailed
	}

	if s.Cfg.TestMode {
		s.Log.Info("test mode: skipping delivery",
			"request_id", requestID,
			"document_size", len(document),
		)
		return nil
	}

	mail := domain.OutboundEmail{
		To:             req.Email,
		Subject:        fmt.Sprintf("Your %s astrology reading", s.Cfg.Brand),
		Body:           buildMailBody(s.Cfg.Brand, req.Question),
		Attachment:     document,
		AttachmentName: attachmentName,
	}

	if err := s.Mailer.Send(ctx, mail); err != nil {
		s.Log.Error("failed to dispatch reading email",
			"error", err,
			"request_id", requestID,
		)
		s.alert(ctx, requestID, "delivery", err)
		return domain.ErrDeliveryFailed
	}

	s.Log.Info("reading dispatched",
		"request_id", requestID,
		"document_size", len(document),
		"reading_length", len(readingText),
	)

	return nil
}

// alert отправляет операционный алерт о падении шага пайплайна.
// Ошибка алерта не влияет на ответ пользователю.
func (s *Service) alert(ctx context.Context, requestID uuid.UUID, stage string, cause error) {
	if s.Alerter == nil {
		return
	}

	message := fmt.Sprintf("🚨 Reading pipeline failure\nStage: %s\nRequest: %s\nError: %v",
		stage, requestID.String(), cause)

	if err := s.Alerter.SendAlert(ctx, message); err != nil {
		s.Log.Warn("failed to send alert",
			"error", err,
			"request_id", requestID,
			"stage", stage,
		)
	}
}

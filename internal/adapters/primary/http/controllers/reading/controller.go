package readingController

import (
	"errors"
	"io"
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hazcam-nano/astra-intake-api/internal/adapters/primary/http/middlewares"
	"github.com/hazcam-nano/astra-intake-api/internal/domain"
	"github.com/hazcam-nano/astra-intake-api/internal/ports/service"
)

// successMessage фиксированный текст успешного ответа
const successMessage = "Your reading is being sent to your email."

type Controller struct {
	ReadingService service.IReadingService
	Log            *slog.Logger
	proxySecret    string
}

func New(readingService service.IReadingService, log *slog.Logger, proxySecret string) *Controller {
	return &Controller{
		ReadingService: readingService,
		Log:            log,
		proxySecret:    proxySecret,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api")
	group.Use(middlewares.ProxySignature(c.proxySecret, c.Log))
	group.GET("/reading", c.ping)
	group.POST("/reading", c.handleIntake)
}

// ping проверка доступности, без походов во внешние сервисы
func (c *Controller) ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Astro reading intake is up.",
	})
}

// handleIntake принимает заявку на разбор и прогоняет её через пайплайн
func (c *Controller) handleIntake(ctx *gin.Context) {
	requestID := uuid.New()

	raw, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		c.Log.Warn("failed to read request body",
			"error", err,
			"request_id", requestID,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Malformed request body."})
		return
	}

	form, err := ParseBody(ctx.ContentType(), raw)
	if err != nil {
		c.Log.Warn("failed to parse request body",
			"error", err,
			"request_id", requestID,
			"content_type", ctx.ContentType(),
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Malformed request body."})
		return
	}

	if err := c.ReadingService.Process(ctx.Request.Context(), requestID, form.ToDomain()); err != nil {
		status, message := statusForError(err)
		ctx.JSON(status, gin.H{"ok": false, "error": message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"message":    successMessage,
		"request_id": requestID.String(),
	})
}

// statusForError маппит ошибку пайплайна в HTTP-статус и фиксированное
// сообщение. Детали апстрим-ошибок клиенту не утекают - только в логи.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "Missing required fields."
	case errors.Is(err, domain.ErrMissingCaptcha):
		return http.StatusBadRequest, "Captcha token is required."
	case errors.Is(err, domain.ErrCaptchaRejected):
		return http.StatusBadRequest, "Captcha verification failed."
	case errors.Is(err, domain.ErrMalformedBody):
		return http.StatusBadRequest, "Malformed request body."
	case errors.Is(err, domain.ErrCaptchaUnreachable):
		return http.StatusBadGateway, "Captcha service is unavailable."
	case errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusBadGateway, "Could not generate your reading."
	case errors.Is(err, domain.ErrDeliveryFailed):
		return http.StatusBadGateway, "Could not send your reading."
	case errors.Is(err, domain.ErrRenderFailed):
		return http.StatusInternalServerError, "Could not prepare your reading document."
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

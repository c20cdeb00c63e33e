package reading

import (
	"log/slog"

	"github.com/hazcam-nano/astra-intake-api/internal/ports/service"
)

// Config настройки пайплайна обработки запросов на разбор
type Config struct {
	Brand       string `envconfig:"BRAND" default:"Your Brand"`
	TestMode    bool   `envconfig:"TEST_MODE" default:"false"`
	ProxySecret string `envconfig:"PROXY_SECRET"`
}

// Service бизнес-логика обработки запроса на астрологический разбор:
// captcha -> генерация -> PDF -> письмо, строго последовательно
type Service struct {
	Captcha   service.ICaptchaVerifier
	Generator service.IReadingGenerator
	Renderer  service.IDocumentRenderer
	Mailer    service.IMailSender
	Alerter   service.IAlerterService
	Cfg       *Config
	Log       *slog.Logger
}

// New создаёт новый сервис обработки запросов на разбор.
// alerter может быть nil - тогда алерты просто не отправляются.
func New(
	captcha service.ICaptchaVerifier,
	generator service.IReadingGenerator,
	renderer service.IDocumentRenderer,
	mailer service.IMailSender,
	alerter service.IAlerterService,
	cfg *Config,
	log *slog.Logger,
) *Service {
	if cfg == nil {
		cfg = &Config{Brand: "Your Brand"}
	}
	if cfg.Brand == "" {
		cfg.Brand = "Your Brand"
	}

	return &Service{
		Captcha:   captcha,
		Generator: generator,
		Renderer:  renderer,
		Mailer:    mailer,
		Alerter:   alerter,
		Cfg:       cfg,
		Log:       log,
	}
}

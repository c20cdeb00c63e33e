package app

import (
	"fmt"

	server "github.com/hazcam-nano/astra-intake-api/internal/adapters/primary/http"
	alerterAdapter "github.com/hazcam-nano/astra-intake-api/internal/adapters/secondary/alerter"
	"github.com/hazcam-nano/astra-intake-api/internal/adapters/secondary/hcaptcha"
	"github.com/hazcam-nano/astra-intake-api/internal/adapters/secondary/openai"
	"github.com/hazcam-nano/astra-intake-api/internal/adapters/secondary/sendgrid"
	"github.com/hazcam-nano/astra-intake-api/internal/pkg/logger"
	"github.com/hazcam-nano/astra-intake-api/internal/usecases/reading"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Log     *logger.Config         `envconfig:"LOG"`
	Server  *server.Config         `envconfig:"APISERVER"`
	Captcha *hcaptcha.Config       `envconfig:"HCAPTCHA"`
	OpenAI  *openai.Config         `envconfig:"OPENAI"`
	Mail    *sendgrid.Config       `envconfig:"SENDGRID"`
	Reading *reading.Config        `envconfig:"READING"`
	Alerter *alerterAdapter.Config `envconfig:"ALERTER"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate падает на старте, если не хватает обязательных ключей.
// В тестовом режиме генерация и отправка писем не вызываются,
// поэтому их ключи не требуются.
func (c *Config) Validate() error {
	if c.Reading == nil {
		c.Reading = &reading.Config{Brand: "Your Brand"}
	}

	if c.Captcha == nil || c.Captcha.Secret == "" {
		return fmt.Errorf("hcaptcha secret is required")
	}

	if c.Reading.TestMode {
		return nil
	}

	if c.OpenAI == nil || c.OpenAI.ApiKey == "" {
		return fmt.Errorf("openai api key is required")
	}
	if c.Mail == nil || c.Mail.ApiKey == "" {
		return fmt.Errorf("sendgrid api key is required")
	}
	if c.Mail.Sender == "" {
		return fmt.Errorf("sendgrid sender address is required")
	}

	return nil
}

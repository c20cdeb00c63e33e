package openai

type Config struct {
	ApiKey  string `envconfig:"API_KEY"`
	BaseURL string `envconfig:"BASE_URL" default:"https://api.openai.com/v1"`
	Model   string `envconfig:"MODEL" default:"gpt-4o-mini"`
}

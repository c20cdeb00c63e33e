package sendgrid

type Config struct {
	ApiKey  string `envconfig:"API_KEY"`
	Sender  string `envconfig:"SENDER"`
	BaseURL string `envconfig:"BASE_URL" default:"https://api.sendgrid.com/v3"`
}

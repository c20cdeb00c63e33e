package hcaptcha

type Config struct {
	Secret    string `envconfig:"SECRET"`
	VerifyURL string `envconfig:"VERIFY_URL" default:"https://api.hcaptcha.com/siteverify"`
}

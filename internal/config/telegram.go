package config

type TelegramConfig struct {
	ApiToken string `yaml:"token"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

func (t *TelegramConfig) Configured() bool {
	return t.ApiToken != ""
}

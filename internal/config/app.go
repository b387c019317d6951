package config

type AppConfig struct {
	From       string `yaml:"default-from"`
	To         string `yaml:"default-to"`
	AmountText string `yaml:"default-amount"`
	LocaleName string `yaml:"locale"`
}

func (s *AppConfig) DefaultFrom() string {
	return s.From
}

func (s *AppConfig) DefaultTo() string {
	return s.To
}

func (s *AppConfig) DefaultAmount() string {
	return s.AmountText
}

func (s *AppConfig) Locale() string {
	return s.LocaleName
}

func (s *AppConfig) SetLocale(name string) {
	if name != "" {
		s.LocaleName = name
	}
}

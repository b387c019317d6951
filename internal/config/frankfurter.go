package config

import "time"

const DefaultBaseURL = "https://api.frankfurter.app/"

type FrankfurterConfig struct {
	URL            string `yaml:"base-url"`
	TimeoutSeconds int64  `yaml:"timeout-seconds"`
}

func (f *FrankfurterConfig) BaseURL() string {
	if f.URL == "" {
		return DefaultBaseURL
	}
	return f.URL
}

func (f *FrankfurterConfig) Timeout() time.Duration {
	return seconds(f.TimeoutSeconds)
}

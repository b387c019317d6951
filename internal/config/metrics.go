package config

type MetricsConfig struct {
	Address string `yaml:"address"`
}

// Addr is empty when the /metrics endpoint is disabled.
func (m *MetricsConfig) Addr() string {
	return m.Address
}

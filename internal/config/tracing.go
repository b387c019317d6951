package config

type TracingConfig struct {
	On      bool   `yaml:"enabled"`
	Service string `yaml:"service-name"`
	Agent   string `yaml:"agent-host-port"`
}

func (t *TracingConfig) Enabled() bool {
	return t.On
}

func (t *TracingConfig) ServiceName() string {
	return t.Service
}

func (t *TracingConfig) AgentHostPort() string {
	return t.Agent
}

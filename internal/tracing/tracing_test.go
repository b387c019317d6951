package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	enabled bool
	name    string
}

func (c testConfig) Enabled() bool         { return c.enabled }
func (c testConfig) ServiceName() string   { return c.name }
func (c testConfig) AgentHostPort() string { return "127.0.0.1:6831" }

func Test_OnDisabled_ShouldInstallNoopTracer(t *testing.T) {
	closer, err := Init(testConfig{enabled: false, name: "fx-converter"})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func Test_OnEnabledWithoutName_ShouldFail(t *testing.T) {
	_, err := Init(testConfig{enabled: true})
	assert.Error(t, err)
}

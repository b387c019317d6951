package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"

	"max.ks1230/fx-converter/internal/logger"
)

type config interface {
	Enabled() bool
	ServiceName() string
	AgentHostPort() string
}

// Init installs the global tracer. With tracing disabled a no-op tracer
// is installed so spans stay cheap.
func Init(cfg config) (io.Closer, error) {
	jcfg := jaegercfg.Configuration{
		ServiceName: cfg.ServiceName(),
		Disabled:    !cfg.Enabled(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.AgentHostPort(),
		},
	}

	tracer, closer, err := jcfg.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "init tracer")
	}
	opentracing.SetGlobalTracer(tracer)

	logger.Info("tracer initialized",
		zap.Bool("enabled", cfg.Enabled()),
		zap.String("service", cfg.ServiceName()),
	)
	return closer, nil
}

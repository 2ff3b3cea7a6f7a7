package httpserver

import (
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/rzadrzi/evalrag/internal/platform/config"
)

type serverOptions struct {
	cfg          *config.Config
	healthChecks []HealthCheck
	clock        clockwork.Clock
}

type serverOption func(*serverOptions)

func withAppName(name string) serverOption {
	return func(o *serverOptions) {
		o.cfg.AppName = name
	}
}

func withHealthChecks(checks ...HealthCheck) serverOption {
	return func(o *serverOptions) {
		o.healthChecks = checks
	}
}

func withClock(clock clockwork.Clock) serverOption {
	return func(o *serverOptions) {
		o.clock = clock
	}
}

func newTestServer(t *testing.T, opts ...serverOption) *Server {
	t.Helper()

	options := &serverOptions{
		cfg: &config.Config{
			AppEnv:             "development",
			Host:               "127.0.0.1",
			Port:               "8080",
			AppName:            "EvalRAG",
			LogLevel:           "info",
			LogFormat:          "text",
			RateLimitPerSecond: 100,
			RateLimitBurst:     200,
		},
		clock: clockwork.NewFakeClock(),
	}
	for _, opt := range opts {
		opt(options)
	}

	return NewServer(options.cfg, nil, nil, options.healthChecks, options.clock)
}

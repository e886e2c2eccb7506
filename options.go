package vrmodels

import (
	"log/slog"
	"time"
)

// DefaultPollInterval is the pause between two polls of a blocking load.
const DefaultPollInterval = 10 * time.Millisecond

// Option configures a RenderModels value during creation.
//
// Example:
//
//	models := vrmodels.New(table,
//	    vrmodels.WithPollInterval(5*time.Millisecond),
//	    vrmodels.WithLogger(slog.Default()),
//	)
type Option func(*options)

// options holds optional configuration for RenderModels.
type options struct {
	pollInterval time.Duration
	logger       *slog.Logger
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		pollInterval: DefaultPollInterval,
		logger:       nil, // package logger, resolved at log time
	}
}

// WithPollInterval sets the sleep between polls in Load and LoadTexture.
// Non-positive values keep DefaultPollInterval.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.pollInterval = d
		}
	}
}

// WithLogger sets a logger for this RenderModels value and every handle it
// creates, overriding the package logger set with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// log returns the configured logger or the package logger.
func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

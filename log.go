package curtain

import "log/slog"

// options carries settings shared by the constructors in this package.
type options struct {
	logger *slog.Logger
}

// Option configures a Shell, Orchestrator or RevealController.
type Option func(*options)

// WithLogger routes diagnostics to l. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

package log

import "context"

// Logger is the logging interface used across all layers.
// Convention: context.Context is always the first parameter so request-scoped
// fields can be attached later without changing call sites.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
	DPanic(ctx context.Context, args ...any)
	DPanicf(ctx context.Context, format string, args ...any)
	Panic(ctx context.Context, args ...any)
	Panicf(ctx context.Context, format string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, format string, args ...any)
}

// ZapConfig holds logger initialization options, mapped from config.LoggerConfig.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug (development) | production
	Encoding     string // console | json
	ColorEnabled bool
}

// Init builds the process-wide zap-backed Logger.
func Init(cfg ZapConfig) Logger {
	return newZapLogger(cfg)
}

package logger

import (
	"fmt"

	"go.uber.org/zap"

	"portfolio/internal/application/port/output"
)

var _ output.LoggerPort = (*ZapAdapter)(nil)

// ZapAdapter backs the LoggerPort with a zap SugaredLogger.
type ZapAdapter struct {
	sugar *zap.SugaredLogger
}

// NewZapAdapter builds a production JSON logger, or a human-readable
// development one when debug is set.
func NewZapAdapter(debug bool) (*ZapAdapter, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return &ZapAdapter{sugar: l.Sugar()}, nil
}

// NewNop returns a logger that discards everything; handy in tests.
func NewNop() *ZapAdapter {
	return &ZapAdapter{sugar: zap.NewNop().Sugar()}
}

func (z *ZapAdapter) Debug(msg string, args ...any) { z.sugar.Debugw(msg, args...) }
func (z *ZapAdapter) Info(msg string, args ...any)  { z.sugar.Infow(msg, args...) }
func (z *ZapAdapter) Warn(msg string, args ...any)  { z.sugar.Warnw(msg, args...) }
func (z *ZapAdapter) Error(msg string, args ...any) { z.sugar.Errorw(msg, args...) }

func (z *ZapAdapter) WithField(key string, value any) output.LoggerPort {
	return &ZapAdapter{sugar: z.sugar.With(key, value)}
}

func (z *ZapAdapter) WithFields(fields map[string]any) output.LoggerPort {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &ZapAdapter{sugar: z.sugar.With(args...)}
}

// Close flushes buffered entries. Sync on stderr fails on some platforms;
// that is not worth surfacing.
func (z *ZapAdapter) Close() error {
	_ = z.sugar.Sync()
	return nil
}

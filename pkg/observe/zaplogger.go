package observe

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timestampLayout = "2006-01-02T15-04-05.000"

// Options configures a Logger built by NewLogger.
type Options struct {
	AppName string
	AppEnv  string
	// Level is one of debug, info, warn, error. Empty means debug.
	Level string
	// Format is json or console. Empty means json.
	Format string
}

type Logger struct {
	appEnv  string
	appName string
	level   zap.AtomicLevel
	l       *zap.Logger
}

// NewZapLogger returns a debug-level JSON logger writing to the given writers,
// or to stdout when none are given.
func NewZapLogger(appName string, writers ...io.Writer) *Logger {
	l, _ := NewLogger(Options{AppName: appName}, writers...)
	return l
}

func NewLogger(opts Options, writers ...io.Writer) (*Logger, error) {
	var (
		multiWriters []zapcore.WriteSyncer
		hooks        []zapcore.WriteSyncer
	)

	cfg := zap.NewProductionEncoderConfig()

	cfg.EncodeTime = timeEncoder(timestampLayout, time.UTC)
	cfg.TimeKey = "timestamp"

	for _, writer := range writers {
		if hook, ok := writer.(*SentryHook); ok {
			hooks = append(hooks, zapcore.AddSync(hook))
			continue
		}
		multiWriters = append(multiWriters, zapcore.AddSync(writer))
	}
	if len(writers) == 0 {
		multiWriters = append(multiWriters, os.Stdout)
	}

	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level.SetLevel(parsed)
	}

	var encoder zapcore.Encoder
	switch opts.Format {
	case "", "json":
		encoder = zapcore.NewJSONEncoder(cfg)
	case "console":
		encoder = zapcore.NewConsoleEncoder(cfg)
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	var cores []zapcore.Core
	if len(multiWriters) > 0 {
		cores = append(cores, zapcore.NewCore(
			encoder,
			zapcore.NewMultiWriteSyncer(multiWriters...),
			level,
		))
	}
	// Sentry hooks parse JSON lines, whatever the output format is.
	if len(hooks) > 0 {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(cfg),
			zapcore.NewMultiWriteSyncer(hooks...),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return lvl >= zapcore.ErrorLevel && level.Enabled(lvl)
			}),
		))
	}

	return &Logger{
		appEnv:  opts.AppEnv,
		appName: opts.AppName,
		level:   level,
		l:       zap.New(zapcore.NewTee(cores...)),
	}, nil
}

func (l *Logger) Stop() (err error) {
	if err = l.l.Sync(); err != nil {
		return
	}
	return
}

func (l *Logger) Enabled(level zapcore.Level) bool {
	return l.level.Enabled(level)
}

func (l *Logger) Error(err error, fields ...map[string]any) {
	file, line, funcName := getRuntimeParams(2)
	zapFields := []zapcore.Field{}
	if len(fields) > 0 {
		zapFields = mapToZapFields(fields[0])
	}
	l.l.WithOptions(zap.Fields(zapFields...)).Error(
		err.Error(),
		zap.String("app_env", l.appEnv),
		zap.String("app_name", l.appName),
		zap.String("error", err.Error()),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
		zap.Stack("stack"),
	)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.write(zapcore.InfoLevel, msg, fields...)
}

func (l *Logger) Warning(msg string, fields ...map[string]any) {
	l.write(zapcore.WarnLevel, msg, fields...)
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.write(zapcore.DebugLevel, msg, fields...)
}

func (l *Logger) Fatal(msg string, fields ...map[string]any) {
	l.write(zapcore.FatalLevel, msg, fields...)
}

func (l *Logger) write(level zapcore.Level, msg string, fields ...map[string]any) {
	ce := l.l.Check(level, msg)
	if ce == nil {
		return
	}

	file, line, funcName := getRuntimeParams(3)
	zapFields := []zapcore.Field{
		zap.String("app_env", l.appEnv),
		zap.String("app_name", l.appName),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
	}
	if len(fields) > 0 {
		zapFields = append(zapFields, mapToZapFields(fields[0])...)
	}
	ce.Write(zapFields...)
}

func mapToZapFields(data map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(data))

	for k, v := range data {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return zapFields
}

func getRuntimeParams(skip int) (file string, line int, funcName string) {
	var ok bool
	var pc uintptr
	pc, file, line, ok = runtime.Caller(skip)
	if !ok {
		file = "not_defined"
		line = 0
		funcName = "not_defined"
	} else {
		funcName = runtime.FuncForPC(pc).Name()
	}
	return
}

func timeEncoder(layout string, location *time.Location) func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		t = t.In(location)
		type appendTimeEncoder interface {
			AppendTimeLayout(time.Time, string)
		}
		if enc, ok := enc.(appendTimeEncoder); ok {
			enc.AppendTimeLayout(t, layout)
			return
		}
		enc.AppendString(t.Format(layout))
	}
}

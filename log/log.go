package log

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/vuuvv/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// Logger falls back to the global zap logger until SetLogger is called.
func Logger() *zap.Logger {
	if logger == nil {
		return zap.L()
	}
	return logger
}

func SetLogger(l *zap.Logger) {
	logger = l
}

func SetDefaultLogger(l *zap.Logger) {
	logger = l
	zap.ReplaceGlobals(l)
}

// NewLogger builds a console logger, debug level when verbose.
func NewLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	config.DisableStacktrace = true
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		config.DisableStacktrace = false
	}
	l, err := config.Build()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return l, nil
}

func toString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return fmt.Sprintf("%+v", v)
	default:
		return cast.ToString(val)
	}
}

func CastToError(reason any) (msg string, err error) {
	var ok bool

	err, ok = reason.(error)
	if !ok {
		err = errors.NewAndSkip(toString(reason), 2)
	}
	if err == nil {
		err = errors.NewAndSkip("Unknown Error", 2)
	}

	if Logger().Core().Enabled(zap.DebugLevel) {
		msg = fmt.Sprintf("%+v", err)
	} else {
		//goland:noinspection GoDfaNilDereference
		msg = err.Error()
	}

	return
}

func Error(reason any, field ...zap.Field) {
	msg, err := CastToError(reason)

	Logger().Error(msg, append(field, zap.Error(err))...)
}

func Warn(reason any, field ...zap.Field) {
	msg, err := CastToError(reason)

	Logger().Warn(msg, append(field, zap.Error(err))...)
}

func Info(msg string, field ...zap.Field) {
	Logger().Info(msg, field...)
}

func Debug(msg string, field ...zap.Field) {
	Logger().Debug(msg, field...)
}

func Sync() {
	_ = Logger().Sync()
}

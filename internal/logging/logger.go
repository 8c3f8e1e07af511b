// Package logging wires zap into the logr ecosystem used across this module.
// Library code takes loggers as logr.Logger (or uses ctrl.Log); this package
// owns construction.
package logging

import (
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	ctrl "sigs.k8s.io/controller-runtime"
)

// Verbosity levels for logr V() calls.
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// NewLogger builds a production zap logger at the given level ("debug",
// "info", "warn", "error"; unknown values fall back to info) wrapped as a
// logr.Logger.
func NewLogger(level string) logr.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		parseLevel(level),
	)
	return zapr.NewLogger(zap.New(core))
}

// Setup installs a logger at the given level as the controller-runtime
// global, so call sites using ctrl.Log pick it up.
func Setup(level string) {
	ctrl.SetLogger(NewLogger(level))
}

// NewTestLogger installs a development logger as the controller-runtime
// global and returns it. Intended for test suites; output goes to stderr in
// console form.
func NewTestLogger() logr.Logger {
	z, err := zap.NewDevelopment()
	if err != nil {
		z = zap.NewNop()
	}
	logger := zapr.NewLogger(z)
	ctrl.SetLogger(logger)
	return logger
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

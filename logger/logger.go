// SPDX-License-Identifier: MIT

// Package logger holds the process-wide zap logger.
package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// Init replaces the global logger with a console logger writing to stderr
// at the given level.
func Init(level zap.AtomicLevel) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// Set installs l as the global logger. A nil l installs a no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global.Store(l)
}

// L returns the global logger.
func L() *zap.Logger {
	return global.Load()
}

// Sugar returns the global logger's sugared form.
func Sugar() *zap.SugaredLogger {
	return global.Load().Sugar()
}

// Sync flushes buffered entries.
func Sync() {
	_ = global.Load().Sync()
}

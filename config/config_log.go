// SPDX-License-Identifier: MIT

package config

import "go.uber.org/zap"

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) String() string {
	return string(l)
}

// Valid reports whether Zap understands l, aliases included.
func (l LogLevel) Valid() bool {
	switch l {
	case LogLevelDebug, "trace", LogLevelInfo, "information", "notice", LogLevelWarn, "warning", LogLevelError:
		return true
	default:
		return false
	}
}

func (l LogLevel) Zap() zap.AtomicLevel {
	switch l {
	case LogLevelDebug, "trace":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case LogLevelInfo, "information", "notice":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case LogLevelWarn, "warning":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
}

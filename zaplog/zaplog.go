// zaplog.go: zap adapter for the xanthos Logger interface
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

// Package zaplog adapts a go.uber.org/zap logger to the xanthos.Logger
// interface, so cache lifecycle events flow into an application's existing
// structured logging pipeline.
//
//	logger, _ := zap.NewProduction()
//	cache := xanthos.NewCache[string, string](xanthos.Config{
//	    MaxCapacity: 10_000,
//	    Logger:      zaplog.New(logger),
//	})
package zaplog

import (
	"github.com/agilira/xanthos"
	"go.uber.org/zap"
)

// ZapLogger implements xanthos.Logger on a zap.SugaredLogger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// New wraps a zap.Logger. A nil logger yields an adapter over zap.NewNop(),
// so the result is always safe to use.
func New(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapLogger{sugar: logger.Sugar()}
}

// Debug logs a debug message with optional key-value pairs.
func (l *ZapLogger) Debug(msg string, keyvals ...interface{}) {
	l.sugar.Debugw(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func (l *ZapLogger) Info(msg string, keyvals ...interface{}) {
	l.sugar.Infow(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func (l *ZapLogger) Warn(msg string, keyvals ...interface{}) {
	l.sugar.Warnw(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func (l *ZapLogger) Error(msg string, keyvals ...interface{}) {
	l.sugar.Errorw(msg, keyvals...)
}

// Compile-time interface check
var _ xanthos.Logger = (*ZapLogger)(nil)

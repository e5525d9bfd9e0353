// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	globalLogger atomic.Value // *zap.Logger
	globalConfig atomic.Value // *LogConfig
	initOnce     sync.Once
)

func setGlobalLogger(logger *zap.Logger, conf *LogConfig) {
	globalLogger.Store(logger)
	globalConfig.Store(conf)
}

// GetGlobalLogger returns the installed logger, setting up a console
// info logger on first use when nothing was installed.
func GetGlobalLogger() *zap.Logger {
	initOnce.Do(func() {
		if globalLogger.Load() == nil {
			SetupLogger(&LogConfig{Level: "info", Format: "console"})
		}
	})
	return globalLogger.Load().(*zap.Logger)
}

func getGlobalLogConfig() *LogConfig {
	GetGlobalLogger()
	return globalConfig.Load().(*LogConfig)
}

func Debug(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Error(msg, fields...)
}

func Panic(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Panic(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Fatal(msg, fields...)
}

// Debugf only use in develop mode
func Debugf(msg string, args ...interface{}) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Sugar().Debugf(msg, args...)
}

// Infof only use in develop mode
func Infof(msg string, args ...interface{}) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Sugar().Infof(msg, args...)
}

// Warnf only use in develop mode
func Warnf(msg string, args ...interface{}) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Sugar().Warnf(msg, args...)
}

// Errorf only use in develop mode
func Errorf(msg string, args ...interface{}) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1), zap.AddStacktrace(zap.ErrorLevel)).Sugar().Errorf(msg, args...)
}

// Panicf only use in develop mode
func Panicf(msg string, args ...interface{}) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Sugar().Panicf(msg, args...)
}

// Fatalf only use in develop mode
func Fatalf(msg string, args ...interface{}) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Sugar().Fatalf(msg, args...)
}

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

// Package logutil configures the process wide zap logger. Logs go to
// stderr by default, or to a size rotated file when Filename is set.
package logutil

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/matrixorigin/tabular/pkg/common/taberr"
)

// LogConfig names the knobs a config file can set. The zero value is
// not usable, callers go through SetupLogger with at least Level and
// Format filled in.
type LogConfig struct {
	// Level is the minimum level that gets emitted, one of the zap
	// level names such as debug, info, warn or error.
	Level string `toml:"level"`
	// Format picks the encoder, console or json.
	Format string `toml:"format"`
	// Filename routes the log to a rotated file instead of stderr.
	Filename string `toml:"filename"`
	// MaxSize is the size in megabytes a log file may reach before
	// it rotates.
	MaxSize int `toml:"max-size"`
	// MaxDays is how many days rotated files stick around.
	MaxDays int `toml:"max-days"`
	// MaxBackups is how many rotated files stick around.
	MaxBackups int `toml:"max-backups"`

	// StacktraceLevel sets the level that attaches stacktraces,
	// fatal when left empty.
	StacktraceLevel string `toml:"stacktrace-level"`
}

// ZapSink pairs an encoder with the syncer it writes through.
type ZapSink struct {
	enc zapcore.Encoder
	out zapcore.WriteSyncer
}

func (cfg *LogConfig) getLevel() zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		panic(taberr.NewInternalError("unsupported log level: %s", cfg.Level))
	}
	return level
}

func (cfg *LogConfig) getStacktraceLevel() zapcore.Level {
	level := zapcore.FatalLevel
	if cfg.StacktraceLevel != "" {
		if err := level.UnmarshalText([]byte(cfg.StacktraceLevel)); err != nil {
			panic(taberr.NewInternalError("unsupported stacktrace level: %s", cfg.StacktraceLevel))
		}
	}
	return level
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename != "" {
		if st, err := os.Stat(cfg.Filename); err == nil && st.IsDir() {
			panic("log file can't be a directory")
		}
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxDays,
			MaxBackups: cfg.MaxBackups,
			LocalTime:  true,
		})
	}
	return getConsoleSyncer()
}

func (cfg *LogConfig) getEncoder() zapcore.Encoder {
	return getLoggerEncoder(cfg.Format)
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(cfg.getStacktraceLevel()), zap.AddCaller()}
}

func (cfg *LogConfig) getSinks() []ZapSink {
	return []ZapSink{{cfg.getEncoder(), cfg.getSyncer()}}
}

func (cfg *LogConfig) build() *zap.Logger {
	level := cfg.getLevel()
	sinks := cfg.getSinks()
	cores := make([]zapcore.Core, 0, len(sinks))
	for _, sink := range sinks {
		cores = append(cores, zapcore.NewCore(sink.enc, sink.out, level))
	}
	return zap.New(zapcore.NewTee(cores...), cfg.getOptions()...)
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.AddSync(os.Stderr)
}

func getLoggerEncoder(format string) zapcore.Encoder {
	switch format {
	case "json":
		return zapcore.NewJSONEncoder(getEncoderConfig())
	case "console", "":
		return zapcore.NewConsoleEncoder(getEncoderConfig())
	default:
		panic(taberr.NewInternalError("unsupported log format: %s", format))
	}
}

func getEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		TimeKey:          "time",
		NameKey:          "name",
		CallerKey:        "caller",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000000 -0700"),
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	}
}

// SetupLogger builds the logger described by conf and installs it as
// the global logger. It panics on a config it cannot honor.
func SetupLogger(conf *LogConfig) *zap.Logger {
	logger := conf.build()
	setGlobalLogger(logger, conf)
	logger.Info("logger init",
		zap.String("level", conf.Level), zap.String("format", conf.Format))
	return logger
}

// Copyright 2025 nanosort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil configures logging for the nanosort command-line tools.
// The sort engine itself never logs; everything here is harness plumbing.
package logutil

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the log level and an optional rotated file sink alongside
// the console output.
type Config struct {
	Level      string // debug, info, warn, error
	File       string // empty disables the file sink
	MaxSizeMB  int    // rotate threshold per file
	MaxBackups int    // rotated files kept
}

var (
	mu     sync.Mutex
	global = zap.NewNop()
)

// Setup builds the global logger. Safe to call once at process start;
// later calls replace the previous logger.
func Setup(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			level,
		),
	}

	if cfg.File != "" {
		sink := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(sink),
			level,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...))

	mu.Lock()
	global = logger
	mu.Unlock()
	return logger, nil
}

// L returns the global logger. Before Setup it is a nop logger, so library
// code may log unconditionally.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return global
}

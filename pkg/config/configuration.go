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

// Package config loads the bench driver parameters from a toml file.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/matrixorigin/tabular/pkg/common/taberr"
	"github.com/matrixorigin/tabular/pkg/logutil"
)

// BenchParameters of the bench driver
type BenchParameters struct {
	//rows of each generated table. default: 65536
	Rows int64 `toml:"rows"`

	//fields of each generated table, the join key included. default: 8
	Fields int64 `toml:"fields"`

	//rounds each phase runs. default: 3
	Rounds int64 `toml:"rounds"`

	//seed of the data generator. default: 1. 0 seeds from the clock
	Seed int64 `toml:"seed"`
}

// Config is the root of the bench toml file.
type Config struct {
	Bench BenchParameters   `toml:"bench"`
	Log   logutil.LogConfig `toml:"log"`
}

// NewDefaultConfig returns a config that runs without any toml file.
func NewDefaultConfig() *Config {
	return &Config{
		Bench: BenchParameters{
			Rows:   65536,
			Fields: 8,
			Rounds: 3,
			Seed:   1,
		},
		Log: logutil.LogConfig{
			Level:   "info",
			Format:  "console",
			MaxSize: 512,
		},
	}
}

// LoadConfigFromFile overrides cfg with the values set in the toml
// file at path. Keys the file does not mention keep their value.
func LoadConfigFromFile(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return taberr.NewInvalidInput("config %s: %v", path, err)
	}
	return cfg.Validate()
}

// LoadConfig parses a toml document held in data into cfg.
func LoadConfig(data string, cfg *Config) error {
	if _, err := toml.Decode(data, cfg); err != nil {
		return taberr.NewInvalidInput("config: %v", err)
	}
	return cfg.Validate()
}

func (cfg *Config) Validate() error {
	if cfg.Bench.Rows <= 0 {
		return taberr.NewInvalidInput("bench rows must be positive, got %d", cfg.Bench.Rows)
	}
	if cfg.Bench.Fields < 2 {
		return taberr.NewInvalidInput("bench needs at least 2 fields, got %d", cfg.Bench.Fields)
	}
	if cfg.Bench.Rounds <= 0 {
		return taberr.NewInvalidInput("bench rounds must be positive, got %d", cfg.Bench.Rounds)
	}
	return nil
}

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

package bench

import (
	"fmt"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration decodes "250ms" style strings from TOML.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Config is a benchmark suite definition. Suites can be checked in as TOML
// files and replayed with identical seeds.
type Config struct {
	Size     int      `toml:"size"`
	Duration Duration `toml:"duration"`
	Seed     uint64   `toml:"seed"`
	Cases    []string `toml:"cases"`
}

// DefaultConfig mirrors the reference harness: one million elements, 100ms
// measurement budget per case, every dataset family.
func DefaultConfig() *Config {
	return &Config{
		Size:     1_000_000,
		Duration: Duration(100 * time.Millisecond),
		Seed:     DefaultSeed,
		Cases:    Datasets(),
	}
}

// LoadConfig reads a suite from path on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load bench config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bench config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects impossible sizes and unknown dataset names before any
// memory is committed.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	known := Datasets()
	for _, name := range c.Cases {
		if !slices.Contains(known, name) {
			return fmt.Errorf("unknown dataset %q (known: %v)", name, known)
		}
	}
	return nil
}

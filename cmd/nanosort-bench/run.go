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

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zeux/nanosort/internal/bench"
	"github.com/zeux/nanosort/internal/logutil"
)

func runCommand() *cobra.Command {
	var (
		configPath string
		size       int
		duration   time.Duration
		seed       uint64
		cases      []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark suite",
		Long: "Run each dataset through nanosort, the standard library, and the " +
			"heap-sort floor, reporting the fastest pass as ns/op over N*log2(N)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := bench.DefaultConfig()
			if configPath != "" {
				loaded, err := bench.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Explicit flags win over the config file.
			if cmd.Flags().Changed("size") {
				cfg.Size = size
			}
			if cmd.Flags().Changed("duration") {
				cfg.Duration = bench.Duration(duration)
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("case") {
				cfg.Cases = cases
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logutil.L()
			env := bench.Environment()
			log.Info("benchmark starting",
				zap.Int("size", cfg.Size),
				zap.Uint64("seed", cfg.Seed),
				zap.Duration("budget", time.Duration(cfg.Duration)),
				zap.String("os", env.GOOS),
				zap.String("arch", env.GOARCH),
				zap.Int("cpus", env.NumCPU),
				zap.String("features", strings.Join(env.Features, " ")))

			for _, name := range cfg.Cases {
				built, err := bench.Build(name, cfg.Size, cfg.Seed)
				if err != nil {
					return err
				}
				for _, c := range built {
					res := bench.Run(c, time.Duration(cfg.Duration))
					fmt.Printf("%s, %-8s: %.2f ns/op (%.2f ms total)\n",
						res.Dataset, res.Algo, res.NsPerOp, res.TotalMs)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML suite definition")
	cmd.Flags().IntVar(&size, "size", 1_000_000, "elements per dataset")
	cmd.Flags().DurationVar(&duration, "duration", 100*time.Millisecond, "measurement budget per case")
	cmd.Flags().Uint64Var(&seed, "seed", bench.DefaultSeed, "dataset generator seed")
	cmd.Flags().StringSliceVar(&cases, "case", nil, "dataset names to run (default all)")

	return cmd
}

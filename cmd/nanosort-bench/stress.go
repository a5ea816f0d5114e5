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
	"runtime"

	"github.com/spf13/cobra"

	"github.com/zeux/nanosort/internal/logutil"
	"github.com/zeux/nanosort/internal/stress"
)

func stressCommand() *cobra.Command {
	cfg := stress.Config{}

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Differential stress test against the standard library",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := stress.Run(cfg, logutil.L())
			if err != nil {
				return err
			}
			if n := len(report.Failures); n > 0 {
				return fmt.Errorf("%d of %d checks diverged; seeds are in the log", n, report.Iterations)
			}
			fmt.Printf("ok: %d checks\n", report.Iterations)
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.Workers, "workers", runtime.GOMAXPROCS(0), "worker pool size")
	cmd.Flags().IntVar(&cfg.Iterations, "iterations", 1000, "independent random checks to run")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", 1, "base seed; iteration i uses seed+i")
	cmd.Flags().IntVar(&cfg.MaxLen, "max-len", 1<<14, "maximum generated input length")
	cmd.Flags().BoolVar(&cfg.Segments, "segments", false, "also sort disjoint segments of a shared slice concurrently")

	return cmd
}

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

// nanosort-bench measures and stress-tests the nanosort engine.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zeux/nanosort/internal/logutil"
)

func main() {
	var (
		logLevel string
		logFile  string
	)

	root := &cobra.Command{
		Use:          "nanosort-bench",
		Short:        "Benchmark and stress harness for the nanosort engine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := logutil.Setup(logutil.Config{
				Level:      logLevel,
				File:       logFile,
				MaxSizeMB:  64,
				MaxBackups: 3,
			})
			return err
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this rotated file")

	root.AddCommand(runCommand(), stressCommand(), envCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

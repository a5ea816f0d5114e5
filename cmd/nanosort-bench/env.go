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

	"github.com/spf13/cobra"

	"github.com/zeux/nanosort/internal/bench"
)

func envCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the machine report attached to benchmark results",
		Run: func(cmd *cobra.Command, args []string) {
			e := bench.Environment()
			fmt.Printf("os:       %s\n", e.GOOS)
			fmt.Printf("arch:     %s\n", e.GOARCH)
			fmt.Printf("cpus:     %d\n", e.NumCPU)
			fmt.Printf("features: %s\n", strings.Join(e.Features, " "))
		},
	}
}

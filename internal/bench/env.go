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
	"runtime"

	"golang.org/x/sys/cpu"
)

// Env describes the machine a run executed on, for inclusion in reports.
// The branchless inner loops live or die by the target's conditional-move
// support, so the feature list matters when comparing numbers.
type Env struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	Features []string
}

// Environment captures the current machine.
func Environment() Env {
	return Env{
		GOOS:     runtime.GOOS,
		GOARCH:   runtime.GOARCH,
		NumCPU:   runtime.NumCPU(),
		Features: features(),
	}
}

func features() []string {
	var f []string
	if cpu.X86.HasSSE42 {
		f = append(f, "sse4.2")
	}
	if cpu.X86.HasAVX2 {
		f = append(f, "avx2")
	}
	if cpu.X86.HasAVX512F {
		f = append(f, "avx512f")
	}
	if cpu.ARM64.HasASIMD {
		f = append(f, "asimd")
	}
	if cpu.ARM64.HasSVE {
		f = append(f, "sve")
	}
	return f
}

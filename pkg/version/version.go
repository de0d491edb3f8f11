// Copyright 2023 Intel Corporation. All Rights Reserved.
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

// Package version tags built binaries with version metadata.
//
// The variables are overridden at build time with linker flags:
//
//	LDFLAGS=-ldflags \
//	  "-X=github.com/intel/memlockd/pkg/version.Version=<version> \
//	   -X=github.com/intel/memlockd/pkg/version.Build=<build-id>"
package version

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default values of variables we'll override with the linker.
var (
	// Version is our version as given by 'git describe'.
	Version = "unknown"
	// Build is the SHA1 of the repository we've been built from.
	Build = "unknown"
)

// PrintVersionInfo prints version information about this binary.
func PrintVersionInfo() {
	fmt.Printf("%s version information:\n", filepath.Base(os.Args[0]))
	fmt.Printf("  - version: %s\n", Version)
	fmt.Printf("  - build:   %s\n", Build)
}

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

// Package sysmem queries the total installed memory of the host.
package sysmem

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// memInfoPath is the meminfo file we parse, overridable for testing.
var memInfoPath = "/proc/meminfo"

// TotalMemory parses total installed memory in bytes from /proc/meminfo.
func TotalMemory() (int64, error) {
	data, err := os.ReadFile(memInfoPath)
	if err != nil {
		return -1, errors.Wrapf(err, "failed to read %s", memInfoPath)
	}

	for _, line := range strings.Split(string(data), "\n") {
		keyval := strings.Split(line, ":")
		if len(keyval) != 2 || keyval[0] != "MemTotal" {
			continue
		}

		// MemTotal:       16263384 kB
		valunit := strings.Fields(strings.TrimSpace(keyval[1]))
		if len(valunit) != 2 || valunit[1] != "kB" {
			return -1, errors.Errorf("unexpected MemTotal line %q in %s", line, memInfoPath)
		}

		kb, err := strconv.ParseInt(valunit[0], 10, 64)
		if err != nil {
			return -1, errors.Wrapf(err, "invalid MemTotal value %q in %s", valunit[0], memInfoPath)
		}

		return kb * 1024, nil
	}

	return -1, errors.Errorf("no MemTotal line in %s", memInfoPath)
}

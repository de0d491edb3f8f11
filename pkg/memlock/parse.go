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

package memlock

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSize resolves a size specification into a byte count. The
// specification is a number with an optional unit suffix: k, m and g are
// KiB, MiB and GiB. The % suffix is a divisor of total memory, not a
// percentage: "50%" resolves to totalMemory/50, one fiftieth of total
// memory. A zero or unparseable number resolves to 0. An unrecognized
// suffix is a syntax error; callers fall back to their built-in default.
func ParseSize(spec string, totalMemory int64) (int64, error) {
	if len(spec) == 0 {
		return 0, fmt.Errorf("syntax error in size: string is empty")
	}

	factor := int64(1)
	divide := false
	numpart := spec

	switch c := spec[len(spec)-1]; {
	case c == 'k':
		factor = KiB
		numpart = spec[:len(spec)-1]
	case c == 'm':
		factor = MiB
		numpart = spec[:len(spec)-1]
	case c == 'g':
		factor = GiB
		numpart = spec[:len(spec)-1]
	case c == '%':
		divide = true
		numpart = spec[:len(spec)-1]
	case '0' <= c && c <= '9':
	default:
		return 0, fmt.Errorf("syntax error in size %q: unexpected unit %q", spec, string(c))
	}

	n, err := strconv.ParseInt(strings.TrimSpace(numpart), 10, 64)
	if err != nil || n <= 0 {
		return 0, nil
	}
	if divide {
		return totalMemory / n, nil
	}
	return n * factor, nil
}

// FormatSize renders a byte count with the largest whole binary unit,
// with two decimals, or as plain bytes below 1 KiB.
func FormatSize(n int64) string {
	switch {
	case n/GiB > 0:
		return fmt.Sprintf("%.2fg", float64(n)/float64(GiB))
	case n/MiB > 0:
		return fmt.Sprintf("%.2fm", float64(n)/float64(MiB))
	case n/KiB > 0:
		return fmt.Sprintf("%.2fk", float64(n)/float64(KiB))
	}
	return strconv.FormatInt(n, 10)
}

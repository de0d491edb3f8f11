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

/*

	Package memlock selects files and pins their pages in memory.

	The setup pass runs the following stages in order:

	1. Policy (policy.go) resolves the per-file and total size
	limits from the configuration (config.go, parse.go) and the
	total installed memory, and picks the locking order.

	2. The scanner (scan.go) lists each configured directory
	non-recursively and keeps regular files that fit the per-file
	limit.

	3. The matcher (match.go) filters candidates against the
	flattened pattern list and the sorter (sort.go) orders the
	matches according to the locking order.

	4. The pinner (lock.go, mmap_linux.go) walks the ordered
	matches once, maps every file that still fits the total
	budget, locks its pages with mlock(2) and records it in the
	Registry (registry.go).

	Pinned mappings are never released programmatically. They stay
	resident as long as the process lives; the kernel reclaims and
	unpins them when the process exits.
*/

package memlock

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
	"sort"
)

// SortTargets reorders targets in place according to the ordering.
// Equal sizes keep their encounter order, and FirstToLast leaves the
// sequence untouched.
func SortTargets(targets []Target, order Ordering) {
	switch order {
	case SmallestToLargest:
		sort.SliceStable(targets, func(i, j int) bool {
			return targets[i].Size < targets[j].Size
		})
	case LargestToSmallest:
		sort.SliceStable(targets, func(i, j int) bool {
			return targets[i].Size > targets[j].Size
		})
	}
}

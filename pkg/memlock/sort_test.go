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
	"testing"

	"github.com/stretchr/testify/require"
)

func sizesOf(targets []Target) []int64 {
	sizes := make([]int64, 0, len(targets))
	for _, target := range targets {
		sizes = append(sizes, target.Size)
	}
	return sizes
}

func makeTargets(sizes ...int64) []Target {
	targets := make([]Target, 0, len(sizes))
	for i, size := range sizes {
		targets = append(targets, Target{Path: string(rune('a' + i)), Size: size})
	}
	return targets
}

func TestSortTargets(t *testing.T) {
	tcases := []struct {
		name     string
		order    Ordering
		expected []int64
	}{
		{name: "smallest to largest", order: SmallestToLargest, expected: []int64{10, 20, 30}},
		{name: "largest to smallest", order: LargestToSmallest, expected: []int64{30, 20, 10}},
		{name: "first to last", order: FirstToLast, expected: []int64{30, 10, 20}},
	}
	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			targets := makeTargets(30, 10, 20)
			SortTargets(targets, tc.order)
			require.Equal(t, tc.expected, sizesOf(targets))
		})
	}
}

func TestSortTargetsStable(t *testing.T) {
	targets := []Target{
		{Path: "a", Size: 10},
		{Path: "b", Size: 10},
		{Path: "c", Size: 5},
	}
	SortTargets(targets, SmallestToLargest)
	require.Equal(t, "c", targets[0].Path)
	require.Equal(t, "a", targets[1].Path)
	require.Equal(t, "b", targets[2].Path)
}

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

func TestNewPolicyDefaults(t *testing.T) {
	const totalMemory = int64(8 * 1024 * 1024 * 1024)

	p, err := NewPolicy(&LockConfig{Locations: []string{"/usr/lib"}}, totalMemory)
	require.NoError(t, err)
	require.Equal(t, 20*MiB, p.MaxFileSize)
	require.Equal(t, totalMemory/10, p.MaxTotalSize)
	require.Equal(t, totalMemory, p.TotalMemory)
	require.Equal(t, SmallestToLargest, p.Ordering)
}

func TestNewPolicyResolved(t *testing.T) {
	const totalMemory = int64(8 * 1024 * 1024 * 1024)

	p, err := NewPolicy(&LockConfig{
		MaxFileSize:   "10k",
		MaxTotalSize:  "50%",
		SortingMethod: "LS",
	}, totalMemory)
	require.NoError(t, err)
	require.Equal(t, 10*KiB, p.MaxFileSize)
	require.Equal(t, totalMemory/50, p.MaxTotalSize)
	require.Equal(t, LargestToSmallest, p.Ordering)
}

func TestNewPolicyUnresolvedFallsBack(t *testing.T) {
	const totalMemory = int64(8 * 1024 * 1024 * 1024)

	p, err := NewPolicy(&LockConfig{
		MaxFileSize:  "20x",
		MaxTotalSize: "10q",
	}, totalMemory)
	require.NoError(t, err)
	require.Equal(t, 20*MiB, p.MaxFileSize)
	require.Equal(t, totalMemory/10, p.MaxTotalSize)
}

func TestNewPolicyZeroLimits(t *testing.T) {
	const totalMemory = int64(8 * 1024 * 1024 * 1024)

	_, err := NewPolicy(&LockConfig{MaxFileSize: "0"}, totalMemory)
	require.Error(t, err)

	_, err = NewPolicy(&LockConfig{MaxTotalSize: "0"}, totalMemory)
	require.Error(t, err)
}

func TestParseOrdering(t *testing.T) {
	require.Equal(t, FirstToLast, parseOrdering("fl"))
	require.Equal(t, FirstToLast, parseOrdering("FL"))
	require.Equal(t, LargestToSmallest, parseOrdering("ls"))
	require.Equal(t, SmallestToLargest, parseOrdering("sl"))
	require.Equal(t, SmallestToLargest, parseOrdering(""))
	require.Equal(t, SmallestToLargest, parseOrdering("bogus"))
}

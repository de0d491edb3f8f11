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
	"strings"

	"github.com/pkg/errors"
)

// Ordering determines the sequence in which matched files are offered to
// the budget.
type Ordering int

const (
	// FirstToLast locks files in encounter order.
	FirstToLast Ordering = iota
	// SmallestToLargest locks files in ascending size order.
	SmallestToLargest
	// LargestToSmallest locks files in descending size order.
	LargestToSmallest
)

func (o Ordering) String() string {
	switch o {
	case FirstToLast:
		return "first to last"
	case LargestToSmallest:
		return "largest to smallest"
	}
	return "smallest to largest"
}

// parseOrdering maps a sorting_method value to an Ordering. Anything
// unrecognized falls back to SmallestToLargest.
func parseOrdering(method string) Ordering {
	switch strings.ToLower(method) {
	case "fl":
		return FirstToLast
	case "ls":
		return LargestToSmallest
	}
	return SmallestToLargest
}

// Policy is the effective budget: the resolved size limits, the total
// installed memory they were resolved against, and the locking order.
type Policy struct {
	MaxFileSize  int64
	MaxTotalSize int64
	TotalMemory  int64
	Ordering     Ordering
}

// NewPolicy resolves the configured size limits against total memory.
// An unspecified or unresolved limit falls back to its default; a limit
// that resolves to zero is a configuration error.
func NewPolicy(lock *LockConfig, totalMemory int64) (*Policy, error) {
	p := &Policy{
		MaxFileSize:  defaultMaxFileSize,
		MaxTotalSize: totalMemory / defaultTotalDivisor,
		TotalMemory:  totalMemory,
		Ordering:     parseOrdering(lock.SortingMethod),
	}

	if lock.MaxFileSize != "" {
		if n, err := ParseSize(lock.MaxFileSize, totalMemory); err == nil {
			p.MaxFileSize = n
		} else {
			log.Warn("unresolved max_file_size %q, using default %s: %v",
				lock.MaxFileSize, FormatSize(p.MaxFileSize), err)
		}
	}
	if lock.MaxTotalSize != "" {
		if n, err := ParseSize(lock.MaxTotalSize, totalMemory); err == nil {
			p.MaxTotalSize = n
		} else {
			log.Warn("unresolved max_total_size %q, using default %s: %v",
				lock.MaxTotalSize, FormatSize(p.MaxTotalSize), err)
		}
	}

	if p.MaxTotalSize == 0 {
		return nil, errors.New("max total size is zero")
	}
	if p.MaxFileSize == 0 {
		return nil, errors.New("max file size is zero")
	}

	log.Info("locking in order of %s", p.Ordering)

	return p, nil
}

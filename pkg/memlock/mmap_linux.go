//go:build linux
// +build linux

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
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// mapAndPin maps the file read-only and locks its pages in physical
// memory. On any failure the mapping is unwound and the file descriptor
// released; the file contributes nothing to the resident set.
func mapAndPin(path string) (*ResidentFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to map %s to memory", path)
	}

	if err := unix.Mlock(data); err != nil {
		unix.Munmap(data)
		return nil, errors.Wrapf(err, "failed to lock %s in memory", path)
	}

	return &ResidentFile{path: path, data: data}, nil
}

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
	"io"
)

// ResidentFile is a file whose pages are mapped into the process and
// locked in physical memory. It has no release operation on purpose:
// the mapping stays pinned for the remaining lifetime of the process,
// and the kernel unpins and reclaims it when the process exits.
type ResidentFile struct {
	path string
	data []byte
}

// Path returns the path the mapping was created from.
func (f *ResidentFile) Path() string {
	return f.path
}

// Size returns the length of the pinned mapping.
func (f *ResidentFile) Size() int64 {
	return int64(len(f.data))
}

// Registry is the resident set. It is filled once by the pinning pass,
// is append-only, and never shrinks while the process runs.
type Registry struct {
	files       []*ResidentFile
	currentSize int64
}

// NewRegistry creates an empty resident registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// add records a pinned file and accounts its mapping length.
func (r *Registry) add(f *ResidentFile) {
	r.files = append(r.files, f)
	r.currentSize += f.Size()
}

// Files returns the resident files in admission order.
func (r *Registry) Files() []*ResidentFile {
	return r.files
}

// Len returns the number of resident files.
func (r *Registry) Len() int {
	return len(r.files)
}

// CurrentSize returns the total length of all pinned mappings.
func (r *Registry) CurrentSize() int64 {
	return r.currentSize
}

// WriteUsage writes one line per resident file with its pinned size in
// human-readable form.
func (r *Registry) WriteUsage(w io.Writer) {
	for _, f := range r.files {
		fmt.Fprintf(w, "%s - %s\n", f.Path(), FormatSize(f.Size()))
	}
}

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
	"path/filepath"

	"github.com/pkg/errors"
)

// Candidate is a regular file found in a configured location whose size
// fits the per-file limit.
type Candidate struct {
	Path string
	Size int64
}

// ScanCandidates lists each location non-recursively and collects the
// regular files at or below maxFileSize. A location that does not exist
// or is not a directory is skipped. A directory that exists but cannot
// be listed is an error. A single entry whose metadata cannot be read is
// logged and skipped.
func ScanCandidates(locations []string, maxFileSize int64) ([]Candidate, error) {
	var candidates []Candidate

	for _, location := range locations {
		info, err := os.Stat(location)
		if err != nil || !info.IsDir() {
			continue
		}

		entries, err := os.ReadDir(location)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't read %s", location)
		}

		for _, entry := range entries {
			fi, err := entry.Info()
			if err != nil {
				log.Warn("unable to get metadata for %s: %v",
					filepath.Join(location, entry.Name()), err)
				continue
			}
			if !fi.Mode().IsRegular() || fi.Size() > maxFileSize {
				continue
			}
			candidates = append(candidates, Candidate{
				Path: filepath.Join(location, entry.Name()),
				Size: fi.Size(),
			})
		}
	}

	return candidates, nil
}

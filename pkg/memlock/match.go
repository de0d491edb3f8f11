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
	"regexp"

	"github.com/pkg/errors"
)

// Target is a candidate that matched a pattern, with its size re-read at
// match time.
type Target struct {
	Path string
	Size int64
}

// FlattenPatterns builds the effective pattern list: the direct patterns
// first, then the patterns of each referenced group in declaration
// order. A referenced group without an array is skipped. Duplicates are
// kept.
func FlattenPatterns(load LoadConfig) []string {
	patterns := append([]string{}, load.Files()...)
	for _, name := range load.Lists() {
		if group, ok := load.Group(name); ok {
			patterns = append(patterns, group...)
		}
	}
	return patterns
}

// MatchTargets matches every candidate against every pattern. A pattern
// matches the end of a path, anchored after a path separator, so it must
// cover whole trailing path segments. A pattern that fails to compile is
// an error. A candidate matching k patterns yields k targets. A stat
// failure at match time is logged and skips that candidate for that
// pattern only.
func MatchTargets(patterns []string, candidates []Candidate) ([]Target, error) {
	var targets []Target

	for _, pattern := range patterns {
		re, err := regexp.Compile("/" + pattern + `\z`)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to build pattern %q", pattern)
		}
		for _, c := range candidates {
			if !re.MatchString(c.Path) {
				continue
			}
			fi, err := os.Stat(c.Path)
			if err != nil {
				log.Warn("unable to get metadata for %s: %v", c.Path, err)
				continue
			}
			targets = append(targets, Target{Path: c.Path, Size: fi.Size()})
		}
	}

	return targets, nil
}

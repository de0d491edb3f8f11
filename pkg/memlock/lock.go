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

// pinFile maps and pins a single file, overridable for testing.
var pinFile = mapAndPin

// LockTargets walks the ordered targets once and pins every one that
// still fits the remaining budget. A target over the remaining budget is
// skipped, not a stopping point: a smaller target later in the order can
// still be admitted. Open, map and lock failures are logged and skipped.
func LockTargets(registry *Registry, policy *Policy, targets []Target) {
	for _, target := range targets {
		if registry.CurrentSize()+target.Size > policy.MaxTotalSize {
			log.Debug("skipping %s (%s): over remaining budget %s",
				target.Path, FormatSize(target.Size),
				FormatSize(policy.MaxTotalSize-registry.CurrentSize()))
			continue
		}

		resident, err := pinFile(target.Path)
		if err != nil {
			log.Warn("%v", err)
			continue
		}
		registry.add(resident)
	}

	log.Info("%s of memory, %d files locked",
		FormatSize(registry.CurrentSize()), registry.Len())
}

// Setup runs the whole selection and pinning pass for the configuration
// and returns the resident registry. Any error is fatal and happens
// before a single file is pinned.
func Setup(cfg *Config, totalMemory int64) (*Registry, error) {
	policy, err := NewPolicy(cfg.Lock, totalMemory)
	if err != nil {
		return nil, err
	}

	candidates, err := ScanCandidates(cfg.Lock.Locations, policy.MaxFileSize)
	if err != nil {
		return nil, err
	}

	targets, err := MatchTargets(FlattenPatterns(cfg.Load), candidates)
	if err != nil {
		return nil, err
	}

	SortTargets(targets, policy.Ordering)

	registry := NewRegistry()
	LockTargets(registry, policy, targets)

	return registry, nil
}

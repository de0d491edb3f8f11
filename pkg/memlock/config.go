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

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// Config is the daemon configuration, a lock table with the budget and
// candidate locations, and a load table with the file selection patterns.
type Config struct {
	Lock *LockConfig `json:"lock"`
	Load LoadConfig  `json:"load"`
}

// LockConfig configures the memory budget and the locking order.
type LockConfig struct {
	// MaxFileSize is the per-file size limit, default "20m".
	MaxFileSize string `json:"max_file_size"`
	// MaxTotalSize is the total budget, default a tenth of total memory.
	MaxTotalSize string `json:"max_total_size"`
	// Locations are the directories scanned for candidate files.
	Locations []string `json:"locations"`
	// SortingMethod is one of "fl", "sl" and "ls".
	SortingMethod string `json:"sorting_method"`
}

// LoadConfig is the load table. Every key maps to an array of patterns:
// "files" lists patterns directly, "lists" names the pattern groups to
// append, and each group is an array under its own key.
type LoadConfig map[string][]string

// Files returns the directly listed patterns.
func (l LoadConfig) Files() []string {
	return l["files"]
}

// Lists returns the names of the referenced pattern groups.
func (l LoadConfig) Lists() []string {
	return l["lists"]
}

// Group returns the patterns of the named group.
func (l LoadConfig) Group(name string) ([]string, bool) {
	group, ok := l[name]
	return group, ok
}

// ReadConfig reads and validates the configuration file.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read configuration %s", path)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse configuration %s", path)
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid configuration %s", path)
	}

	return cfg, nil
}

// validate checks the presence of the required tables and keys,
// collecting all problems before failing.
func (c *Config) validate() error {
	var errs *multierror.Error

	if c.Lock == nil {
		errs = multierror.Append(errs, errors.New("lock table is missing"))
	} else if len(c.Lock.Locations) == 0 {
		errs = multierror.Append(errs, errors.New("lock table has no locations"))
	}
	if c.Load == nil {
		errs = multierror.Append(errs, errors.New("load table is missing"))
	}

	return errs.ErrorOrNil()
}

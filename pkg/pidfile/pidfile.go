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

// Package pidfile implements PID file handling for the daemon.
package pidfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/errors"
)

var pidFilePath = defaultPath()

// GetPath returns the current pidfile path.
func GetPath() string {
	return pidFilePath
}

// SetPath sets the pidfile path to the given one.
func SetPath(path string) {
	pidFilePath = path
}

// Write creates the PID file with os.Getpid() in it. Write fails if the
// PID file already exists.
func Write() error {
	if err := os.MkdirAll(filepath.Dir(pidFilePath), 0755); err != nil {
		return errors.Wrap(err, "failed to create PID file directory")
	}

	f, err := os.OpenFile(pidFilePath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "failed to create PID file")
	}
	defer f.Close()

	if _, err := f.Write([]byte(fmt.Sprintf("%d\n", os.Getpid()))); err != nil {
		os.Remove(pidFilePath)
		return errors.Wrap(err, "failed to write PID file")
	}

	return nil
}

// Read returns the process ID found in the PID file. It returns 0 without
// an error if the PID file does not exist.
func Read() (int, error) {
	buf, err := os.ReadFile(pidFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return -1, errors.Wrap(err, "failed to read PID file")
	}

	pid, err := strconv.Atoi(strings.TrimRight(string(buf), "\n"))
	if err != nil {
		return -1, errors.Wrapf(err, "invalid PID (%q) in PID file", string(buf))
	}

	return pid, nil
}

// Remove removes the PID file unconditionally, regardless of whether the
// current process created it.
func Remove() error {
	err := os.Remove(pidFilePath)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// OwnerPid returns the ID of the live process owning the PID file. 0 is
// returned if no such process exists, -1 and an error if the owner or its
// existence could not be determined.
func OwnerPid() (int, error) {
	pid, err := Read()
	if err != nil {
		return -1, err
	}
	if pid == 0 {
		return 0, nil
	}

	p, err := os.FindProcess(pid)
	if err != nil {
		return -1, errors.Wrapf(err, "FindProcess() failed for PID %d", pid)
	}

	err = p.Signal(syscall.Signal(0))
	switch {
	case err == nil:
		return pid, nil
	case errors.Is(err, os.ErrProcessDone), errors.Is(err, syscall.ESRCH):
		return 0, nil
	}

	return -1, errors.Wrapf(err, "failed to check process %d", pid)
}

// defaultPath returns the default pidfile path for the binary.
func defaultPath() string {
	if len(os.Args) == 0 {
		return ""
	}

	name := filepath.Base(os.Args[0])
	if os.Geteuid() > 0 {
		return filepath.Join("/tmp", name+".pid")
	}
	return filepath.Join("/", "var", "run", name+".pid")
}

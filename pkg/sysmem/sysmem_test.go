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

package sysmem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func withMemInfo(t *testing.T, content string) {
	path := filepath.Join(t.TempDir(), "meminfo")
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))

	old := memInfoPath
	memInfoPath = path
	t.Cleanup(func() { memInfoPath = old })
}

func TestTotalMemory(t *testing.T) {
	withMemInfo(t, `MemTotal:       16263384 kB
MemFree:         1514168 kB
MemAvailable:    8317856 kB
`)

	total, err := TotalMemory()
	require.Nil(t, err)
	require.Equal(t, int64(16263384*1024), total)
}

func TestTotalMemoryMissing(t *testing.T) {
	withMemInfo(t, "MemFree: 1514168 kB\n")

	_, err := TotalMemory()
	require.NotNil(t, err)
}

func TestTotalMemoryMalformed(t *testing.T) {
	withMemInfo(t, "MemTotal: lots\n")

	_, err := TotalMemory()
	require.NotNil(t, err)
}

func TestTotalMemoryUnreadable(t *testing.T) {
	old := memInfoPath
	memInfoPath = filepath.Join(t.TempDir(), "does-not-exist")
	t.Cleanup(func() { memInfoPath = old })

	_, err := TotalMemory()
	require.NotNil(t, err)
}

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

package pidfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func prepare(t *testing.T) {
	SetPath(filepath.Join(t.TempDir(), "pidfile-test.pid"))
}

func TestWriteReadRemove(t *testing.T) {
	prepare(t)

	pid, err := Read()
	require.Nil(t, err)
	require.Equal(t, 0, pid)

	err = Write()
	require.Nil(t, err)

	pid, err = Read()
	require.Nil(t, err)
	require.Equal(t, os.Getpid(), pid)

	// second Write must fail, the file already exists
	err = Write()
	require.NotNil(t, err)

	err = Remove()
	require.Nil(t, err)

	err = Write()
	require.Nil(t, err)

	pid, err = Read()
	require.Nil(t, err)
	require.Equal(t, os.Getpid(), pid)
}

func TestOwnerPid(t *testing.T) {
	prepare(t)

	pid, err := OwnerPid()
	require.Nil(t, err)
	require.Equal(t, 0, pid)

	err = Write()
	require.Nil(t, err)

	pid, err = OwnerPid()
	require.Nil(t, err)
	require.Equal(t, os.Getpid(), pid)
}

func TestInvalidContent(t *testing.T) {
	prepare(t)

	err := os.WriteFile(GetPath(), []byte("not-a-pid\n"), 0644)
	require.Nil(t, err)

	_, err = Read()
	require.NotNil(t, err)
}

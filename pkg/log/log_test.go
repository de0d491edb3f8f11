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

package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	l1 := Get("test-source")
	l2 := Get("test-source")
	require.Equal(t, l1, l2)
	require.Equal(t, "test-source", l1.Source())

	l3 := NewLogger("other-source")
	require.NotEqual(t, l1, l3)
}

func TestEnableDebug(t *testing.T) {
	l := Get("debug-source")
	require.False(t, l.DebugEnabled())

	old := l.EnableDebug(true)
	require.False(t, old)
	require.True(t, l.DebugEnabled())

	old = l.EnableDebug(false)
	require.True(t, old)
	require.False(t, l.DebugEnabled())
}

func TestEnableDebugAll(t *testing.T) {
	l := Get("debug-all-source")
	EnableDebug(true)
	require.True(t, l.DebugEnabled())
	EnableDebug(false)
	require.False(t, l.DebugEnabled())
	SetLevel(LevelInfo)
}

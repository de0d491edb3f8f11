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

const (
	// KiB, MiB and GiB are the binary size units of size specifications.
	KiB int64 = 1024
	MiB int64 = 1024 * KiB
	GiB int64 = 1024 * MiB

	// defaultMaxFileSize is the per-file size limit used when the
	// configuration leaves max_file_size unspecified or unresolved.
	defaultMaxFileSize = 20 * MiB
	// defaultTotalDivisor yields the default total budget as
	// total memory divided by this.
	defaultTotalDivisor = 10
)

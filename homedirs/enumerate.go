// Copyright 2025 The homesweep Authors
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
//
// SPDX-License-Identifier: Apache-2.0

package homedirs

import (
	"fmt"

	"github.com/spf13/afero"
)

// ListSubdirectories returns the names of the immediate child directories of
// base. Files are skipped and nothing below the first level is visited.
func ListSubdirectories(fs afero.Fs, base string) ([]string, error) {
	entries, err := afero.ReadDir(fs, base)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", base, err)
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

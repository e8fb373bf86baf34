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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrPathNotFound is returned when the parent path does not exist or is not
// a directory.
var ErrPathNotFound = errors.New("path not found")

// PathResolver turns a user supplied path into an absolute path of an
// existing directory.
type PathResolver struct {
	Fs    afero.Fs
	Getwd func() (string, error)
}

func NewPathResolver(fs afero.Fs) *PathResolver {
	return &PathResolver{Fs: fs, Getwd: os.Getwd}
}

// Resolve returns path as an absolute directory path. A blank path means the
// working directory. Absolute paths are kept as given; relative ones are
// joined onto the working directory. On Windows a root relative path
// (\Users) takes the volume of the working directory and a drive relative
// path (D:foo) is resolved against that drive's current directory. The
// directory must exist.
func (p *PathResolver) Resolve(path string) (string, error) {
	path = strings.TrimSpace(path)
	switch {
	case path != "" && filepath.IsAbs(path):
	case filepath.VolumeName(path) != "":
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrPathNotFound, path, err)
		}
		path = abs
	default:
		cwd, err := p.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine working directory: %w", err)
		}
		switch {
		case path == "":
			path = cwd
		case os.IsPathSeparator(path[0]):
			path = filepath.Join(filepath.VolumeName(cwd), path)
		default:
			path = filepath.Join(cwd, path)
		}
	}

	fi, err := p.Fs.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPathNotFound, path, err)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrPathNotFound, path)
	}
	return path, nil
}

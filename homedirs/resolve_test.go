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
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestPathResolver(t *testing.T) {
	t.Parallel()

	root := testRoot(t)
	fs := afero.NewMemMapFs()
	mkdirs(t, fs, filepath.Join(root, "alice"))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(root, "notes.txt"), []byte("x"), 0o640))

	r := &PathResolver{Fs: fs, Getwd: func() (string, error) { return root, nil }}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "empty uses working directory", input: "", want: root},
		{name: "whitespace uses working directory", input: "   ", want: root},
		{name: "absolute kept", input: filepath.Join(root, "alice"), want: filepath.Join(root, "alice")},
		{name: "relative joined onto working directory", input: "alice", want: filepath.Join(root, "alice")},
		{name: "relative with dot segments", input: filepath.Join(".", "alice", "..", "alice"), want: filepath.Join(root, "alice")},
		{name: "missing relative", input: "carol", wantErr: true},
		{name: "missing absolute", input: filepath.Join(root, "carol"), wantErr: true},
		{name: "file is not a directory", input: "notes.txt", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrPathNotFound)
				require.Empty(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.True(t, filepath.IsAbs(got))
		})
	}
}

func TestPathResolver_GetwdFails(t *testing.T) {
	t.Parallel()

	r := &PathResolver{Fs: afero.NewMemMapFs(), Getwd: func() (string, error) { return "", errors.New("boom") }}
	_, err := r.Resolve("")
	require.ErrorContains(t, err, "working directory")
}

func TestListSubdirectories(t *testing.T) {
	t.Parallel()

	root := testRoot(t)
	fs := afero.NewMemMapFs()
	mkdirs(t, fs, filepath.Join(root, "bob"), filepath.Join(root, "alice", "Desktop"))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(root, "desktop.ini"), []byte("x"), 0o640))

	names, err := ListSubdirectories(fs, root)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"alice", "bob"}, names)

	mkdirs(t, fs, filepath.Join(root, "bob"))
	empty := filepath.Join(root, "bob")
	names, err = ListSubdirectories(fs, empty)
	require.NoError(t, err)
	require.Empty(t, names)

	_, err = ListSubdirectories(fs, filepath.Join(root, "missing"))
	require.Error(t, err)
}

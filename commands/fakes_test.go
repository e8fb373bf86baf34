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

package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/winadmin/homesweep/homedirs/acl"
	"github.com/winadmin/homesweep/nics"
)

const (
	aliceSID  = "S-1-5-21-3623811015-3361044348-30300820-1001"
	orphanSID = "S-1-5-21-3623811015-3361044348-30300820-1404"
)

type fakeReader struct {
	reports map[string]acl.Report
	errs    map[string]error
}

func (f *fakeReader) ReadACL(path string) (acl.Report, error) {
	if err, ok := f.errs[path]; ok {
		return acl.Report{Path: path}, err
	}
	r := f.reports[path]
	r.Path = path
	return r, nil
}

type fakeClassifier map[string]string

func (f fakeClassifier) LookupSID(sid string) (string, error) {
	if name, ok := f[sid]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: %s", acl.ErrUnresolvedSID, sid)
}

func accounts() fakeClassifier {
	return fakeClassifier{
		acl.SIDEveryone:       "Everyone",
		acl.SIDLocalSystem:    `NT AUTHORITY\SYSTEM`,
		acl.SIDAdministrators: `BUILTIN\Administrators`,
		aliceSID:              `HOST\alice`,
	}
}

func profileACL(sids ...string) acl.Report {
	r := acl.Report{OwnerSID: acl.SIDAdministrators}
	for _, s := range append([]string{acl.SIDLocalSystem, acl.SIDAdministrators}, sids...) {
		r.ACEs = append(r.ACEs, acl.ACE{SID: s, Type: "allow", Rights: "GENERIC_ALL"})
	}
	return r
}

// denyFs refuses to open the listed paths.
type denyFs struct {
	afero.Fs
	denied map[string]bool
}

func (d *denyFs) Open(name string) (afero.File, error) {
	if d.denied[name] {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return d.Fs.Open(name)
}

// panicFs panics on any use, proving a code path never touches the
// filesystem.
type panicFs struct{ afero.Fs }

type fakeLister struct {
	ifaces []nics.Interface
	err    error
}

func (f fakeLister) Interfaces(context.Context) ([]nics.Interface, error) {
	return f.ifaces, f.err
}

// usersTree lays out the classic three profile layout:
// A is empty and clean, B has content and an orphaned SID, C is empty with
// an orphaned SID.
func usersTree(t *testing.T) (afero.Fs, string, *fakeReader) {
	t.Helper()

	root := filepath.Join(t.TempDir(), "Users")
	fs := afero.NewMemMapFs()
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, fs.MkdirAll(filepath.Join(root, name), 0o750))
	}
	require.NoError(t, afero.WriteFile(fs, filepath.Join(root, "B", "NTUSER.DAT"), []byte("hive"), 0o640))

	reader := &fakeReader{reports: map[string]acl.Report{
		filepath.Join(root, "A"): profileACL(aliceSID),
		filepath.Join(root, "B"): profileACL(orphanSID),
		filepath.Join(root, "C"): profileACL(aliceSID, orphanSID),
	}}
	return fs, root, reader
}

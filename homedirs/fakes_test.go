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
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/winadmin/homesweep/homedirs/acl"
)

const (
	aliceSID  = "S-1-5-21-1004336348-1177238915-682003330-1001"
	bobSID    = "S-1-5-21-1004336348-1177238915-682003330-1002"
	orphanSID = "S-1-5-21-1004336348-1177238915-682003330-1337"
)

// fakeReader returns canned ACL reports keyed by path.
type fakeReader struct {
	reports map[string]acl.Report
	errs    map[string]error
}

func (f *fakeReader) ReadACL(path string) (acl.Report, error) {
	if err, ok := f.errs[path]; ok {
		return acl.Report{Path: path}, err
	}
	if r, ok := f.reports[path]; ok {
		r.Path = path
		return r, nil
	}
	return acl.Report{Path: path}, nil
}

// fakeClassifier resolves only the SIDs in its accounts map.
type fakeClassifier struct {
	accounts map[string]string
	calls    int
}

func (f *fakeClassifier) LookupSID(sid string) (string, error) {
	f.calls++
	if name, ok := f.accounts[sid]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: %s", acl.ErrUnresolvedSID, sid)
}

func newFakeClassifier() *fakeClassifier {
	return &fakeClassifier{accounts: map[string]string{
		acl.SIDEveryone:       "Everyone",
		acl.SIDLocalSystem:    `NT AUTHORITY\SYSTEM`,
		acl.SIDAdministrators: `BUILTIN\Administrators`,
		aliceSID:              `HOST\alice`,
		bobSID:                `HOST\bob`,
	}}
}

// denyFs fails Open for the listed paths the way a profile directory owned
// by another user does.
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

// testRoot returns an absolute path usable as a key in an in-memory
// filesystem on every platform.
func testRoot(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "Users")
}

func mkdirs(t *testing.T, fs afero.Fs, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, fs.MkdirAll(p, 0o750))
	}
}

// userACL returns a typical profile ACL: the ignored well-known SIDs
// followed by the given SIDs.
func userACL(sids ...string) acl.Report {
	r := acl.Report{OwnerSID: acl.SIDAdministrators}
	for _, s := range append([]string{acl.SIDLocalSystem, acl.SIDAdministrators, acl.SIDEveryone}, sids...) {
		r.ACEs = append(r.ACEs, acl.ACE{SID: s, Type: "allow", Rights: "GENERIC_ALL"})
	}
	return r
}

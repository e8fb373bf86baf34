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

// Package homedirs finds empty or orphaned subdirectories of a parent
// directory, typically the user profile root, and removes them on request.
package homedirs

import (
	"path/filepath"
	"strings"
)

const (
	StatusEmpty    = "empty"
	StatusNotEmpty = "not empty"
)

// DirectoryRecord is the inspection result for one subdirectory.
type DirectoryRecord struct {
	// Path is the absolute path of the directory.
	Path string
	// Name is the final path segment, used for display.
	Name string
	// IsEmpty is true when the directory has no direct children or could not
	// be listed.
	IsEmpty bool
	// ACLEntries holds one identity per non-ignored ACE in DACL order: the
	// account name when it resolves, the raw SID otherwise.
	ACLEntries []string
	// HasUnresolvedSID is true when at least one non-ignored ACE (or the
	// owner, when owner checking is enabled) names a SID without an account.
	HasUnresolvedSID bool
	// Owner is the owner account name, or the raw owner SID when it does not
	// resolve. Empty when the security descriptor could not be read.
	Owner           string
	OwnerUnresolved bool
	// ACLError records why the ACL could not be read. A record with an
	// ACLError carries no ACL data.
	ACLError string
}

func newDirectoryRecord(path string) DirectoryRecord {
	return DirectoryRecord{Path: path, Name: filepath.Base(path)}
}

// Status returns "empty" or "not empty".
func (r DirectoryRecord) Status() string {
	if r.IsEmpty {
		return StatusEmpty
	}
	return StatusNotEmpty
}

// ACLSummary joins the ACL entries with commas.
func (r DirectoryRecord) ACLSummary() string {
	return strings.Join(r.ACLEntries, ", ")
}

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

// Package acl reads owner and DACL information from directories and
// translates the security identifiers found there into account names.
package acl

import "errors"

// ErrUnsupported is returned by readers and classifiers on platforms without
// Windows security descriptors.
var ErrUnsupported = errors.New("ACL inspection is only supported on Windows")

// ErrUnresolvedSID marks a SID that could not be translated to an account
// name. Orphaned SIDs left behind by deleted accounts are the usual cause.
var ErrUnresolvedSID = errors.New("SID could not be resolved to an account")

// ACE represents an access control entry read from a DACL
type ACE struct {
	// SID is the textual SID of the trustee (S-1-5-...).
	SID       string
	Type      string // allow, deny or type-N
	Rights    string
	Inherited bool
}

// Report is the security information read for a single path
type Report struct {
	Path string
	// OwnerSID is the textual owner SID, empty when the owner is not present
	// in the security descriptor.
	OwnerSID string
	ACEs     []ACE
}

// Reader reads the owner and DACL of a path. Implementations are platform
// specific; on Windows they use the Win32 security APIs.
type Reader interface {
	ReadACL(path string) (Report, error)
}

// SIDClassifier translates a textual SID into an account name. A SID that
// cannot be translated yields an error wrapping ErrUnresolvedSID.
type SIDClassifier interface {
	LookupSID(sid string) (string, error)
}

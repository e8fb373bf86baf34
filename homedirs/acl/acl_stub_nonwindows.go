//go:build !windows
// +build !windows

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

package acl

import "fmt"

// StubReader is used on non-Windows platforms. Every read fails with
// ErrUnsupported so directories are reported without ACL data.
type StubReader struct{}

func NewDefaultReader() Reader {
	return &StubReader{}
}

func (s *StubReader) ReadACL(path string) (Report, error) {
	return Report{Path: path}, fmt.Errorf("read ACL of %s: %w", path, ErrUnsupported)
}

// StubClassifier never resolves a SID on non-Windows platforms.
type StubClassifier struct{}

func NewDefaultClassifier() SIDClassifier {
	return &StubClassifier{}
}

func (s *StubClassifier) LookupSID(sid string) (string, error) {
	return "", fmt.Errorf("%w: %s: %w", ErrUnresolvedSID, sid, ErrUnsupported)
}

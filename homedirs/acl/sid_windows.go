//go:build windows
// +build windows

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

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// WindowsClassifier resolves SIDs with LookupAccountSidW against the local
// machine, which forwards to the domain when the host is joined.
type WindowsClassifier struct{}

func NewDefaultClassifier() SIDClassifier {
	return &WindowsClassifier{}
}

// LookupSID returns DOMAIN\account for sid. Account names without a domain
// (e.g. "Everyone") are returned bare.
func (w *WindowsClassifier) LookupSID(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty SID", ErrUnresolvedSID)
	}
	sid, err := windows.StringToSid(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s is not a valid SID: %v", ErrUnresolvedSID, s, err)
	}
	account, domain, _, err := sid.LookupAccount("")
	if err != nil {
		return "", fmt.Errorf("%w: LookupAccountSidW failed for %s: %v", ErrUnresolvedSID, s, err)
	}
	if domain == "" {
		return account, nil
	}
	return domain + `\` + account, nil
}

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
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Well-known SIDs that appear on almost every profile directory and never
// indicate an orphaned account.
const (
	SIDEveryone       = "S-1-1-0"
	SIDLocalSystem    = "S-1-5-18"
	SIDAdministrators = "S-1-5-32-544"
)

// IgnoreList is an immutable set of SIDs excluded from ACL anomaly detection.
// The zero value ignores nothing; use NewIgnoreList.
type IgnoreList struct {
	sids map[string]struct{}
}

// NewIgnoreList returns an IgnoreList holding the well-known SIDs plus any
// extra SIDs supplied. Blank entries are skipped.
func NewIgnoreList(extra ...string) IgnoreList {
	sids := map[string]struct{}{
		SIDEveryone:       {},
		SIDLocalSystem:    {},
		SIDAdministrators: {},
	}
	for _, s := range extra {
		s = normalizeSID(s)
		if s == "" {
			continue
		}
		sids[s] = struct{}{}
	}
	return IgnoreList{sids: sids}
}

// Contains reports whether sid is ignored. The comparison is case
// insensitive since "s-1-5-18" and "S-1-5-18" name the same principal.
func (l IgnoreList) Contains(sid string) bool {
	_, ok := l.sids[normalizeSID(sid)]
	return ok
}

// SIDs returns the ignored SIDs in sorted order.
func (l IgnoreList) SIDs() []string {
	sids := maps.Keys(l.sids)
	slices.Sort(sids)
	return sids
}

func normalizeSID(sid string) string {
	return strings.ToUpper(strings.TrimSpace(sid))
}

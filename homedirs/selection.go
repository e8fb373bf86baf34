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
	"strings"

	"github.com/thediveo/enumflag/v2"
)

// SelectionMode decides which inspected directories become candidates.
type SelectionMode enumflag.Flag

const (
	// Retain keeps content and only surfaces directories with unresolved SIDs.
	Retain SelectionMode = iota
	// Delete marks empty directories as well as those with unresolved SIDs.
	Delete
)

// SelectionModeIds maps modes to their command line and config names.
var SelectionModeIds = map[SelectionMode][]string{
	Retain: {"retain"},
	Delete: {"delete"},
}

func (m SelectionMode) String() string {
	if ids, ok := SelectionModeIds[m]; ok {
		return ids[0]
	}
	return fmt.Sprintf("SelectionMode(%d)", m)
}

// ParseSelectionMode parses "retain" or "delete", ignoring case.
func ParseSelectionMode(s string) (SelectionMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for mode, ids := range SelectionModeIds {
		for _, id := range ids {
			if id == s {
				return mode, nil
			}
		}
	}
	return Retain, fmt.Errorf("invalid selection mode %q, expected retain or delete", s)
}

// Includes reports whether rec is a candidate under m.
func (m SelectionMode) Includes(rec DirectoryRecord) bool {
	switch m {
	case Delete:
		return rec.IsEmpty || rec.HasUnresolvedSID
	case Retain:
		// Both branches test HasUnresolvedSID, so emptiness never matters
		// here. Pinned by TestSelect_RetainIgnoresEmptiness.
		return (rec.IsEmpty && rec.HasUnresolvedSID) || (!rec.IsEmpty && rec.HasUnresolvedSID)
	}
	return false
}

// Select returns the records included by mode, preserving order.
func Select(records []DirectoryRecord, mode SelectionMode) []DirectoryRecord {
	candidates := []DirectoryRecord{}
	for _, rec := range records {
		if mode.Includes(rec) {
			candidates = append(candidates, rec)
		}
	}
	return candidates
}

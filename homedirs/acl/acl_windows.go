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
	"errors"
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	advapi32              = windows.NewLazySystemDLL("advapi32.dll")
	procGetAclInformation = advapi32.NewProc("GetAclInformation")
	procGetAce            = advapi32.NewProc("GetAce")
)

const (
	aclSizeInformation = 2
	inheritedACE       = 0x10

	accessAllowedACEType         = 0
	accessDeniedACEType          = 1
	accessAllowedCallbackACEType = 9
	accessDeniedCallbackACEType  = 10
)

var rightNames = []struct {
	bit  uint32
	name string
}{
	{0x80000000, "GENERIC_READ"},
	{0x40000000, "GENERIC_WRITE"},
	{0x20000000, "GENERIC_EXECUTE"},
	{0x10000000, "GENERIC_ALL"},
	{0x00000001, "FILE_LIST_DIRECTORY"},
	{0x00000002, "FILE_ADD_FILE"},
	{0x00000004, "FILE_ADD_SUBDIRECTORY"},
	{0x00000008, "FILE_READ_EA"},
	{0x00000010, "FILE_WRITE_EA"},
	{0x00000020, "FILE_TRAVERSE"},
	{0x00000040, "FILE_DELETE_CHILD"},
	{0x00000080, "FILE_READ_ATTRIBUTES"},
	{0x00000100, "FILE_WRITE_ATTRIBUTES"},
	{0x00010000, "DELETE"},
	{0x00020000, "READ_CONTROL"},
	{0x00040000, "WRITE_DAC"},
	{0x00080000, "WRITE_OWNER"},
	{0x00100000, "SYNCHRONIZE"},
}

// maskToRights maps directory access mask bits to readable names.
func maskToRights(mask uint32) string {
	var parts []string
	for _, r := range rightNames {
		if mask&r.bit != 0 {
			parts = append(parts, r.name)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("0x%x", mask)
	}
	return strings.Join(parts, ",")
}

func aceTypeName(t byte) string {
	switch t {
	case accessAllowedACEType, accessAllowedCallbackACEType:
		return "allow"
	case accessDeniedACEType, accessDeniedCallbackACEType:
		return "deny"
	}
	return fmt.Sprintf("type-%d", t)
}

// WindowsReader implements Reader using GetNamedSecurityInfoW. It reads the
// owner SID and walks the DACL in order.
type WindowsReader struct{}

func NewDefaultReader() Reader {
	return &WindowsReader{}
}

func (w *WindowsReader) ReadACL(path string) (Report, error) {
	r := Report{Path: path}

	sd, err := windows.GetNamedSecurityInfo(path, windows.SE_FILE_OBJECT,
		windows.OWNER_SECURITY_INFORMATION|windows.DACL_SECURITY_INFORMATION)
	if err != nil {
		return r, fmt.Errorf("GetNamedSecurityInfoW failed for %s: %w", path, err)
	}
	defer runtime.KeepAlive(sd)

	if owner, _, err := sd.Owner(); err == nil && owner != nil {
		r.OwnerSID = owner.String()
	}

	dacl, _, err := sd.DACL()
	if err != nil {
		// No DACL present on the descriptor, so there is nothing to inspect.
		if errors.Is(err, windows.ERROR_OBJECT_NOT_FOUND) {
			return r, nil
		}
		return r, fmt.Errorf("failed to read DACL for %s: %w", path, err)
	}
	if dacl == nil {
		return r, nil
	}

	var info struct {
		AceCount      uint32
		AclBytesInUse uint32
		AclBytesFree  uint32
	}
	ret, _, callErr := procGetAclInformation.Call(
		uintptr(unsafe.Pointer(dacl)),
		uintptr(unsafe.Pointer(&info)),
		uintptr(unsafe.Sizeof(info)),
		uintptr(aclSizeInformation),
	)
	if ret == 0 {
		return r, fmt.Errorf("GetAclInformation failed for %s: %v", path, callErr)
	}

	for i := uint32(0); i < info.AceCount; i++ {
		var pAce uintptr
		ret, _, callErr := procGetAce.Call(uintptr(unsafe.Pointer(dacl)), uintptr(i), uintptr(unsafe.Pointer(&pAce)))
		if ret == 0 || pAce == 0 {
			return r, fmt.Errorf("GetAce failed for index %d on %s: %v", i, path, callErr)
		}
		// ACE header: Type(1), Flags(1), Size(2), then Mask(4) and the SID
		// for the basic and callback ACE layouts.
		aceType := *(*byte)(unsafe.Pointer(pAce))
		aceFlags := *(*byte)(unsafe.Pointer(pAce + 1))
		switch aceType {
		case accessAllowedACEType, accessDeniedACEType, accessAllowedCallbackACEType, accessDeniedCallbackACEType:
		default:
			// Object ACEs carry GUIDs before the SID and do not occur on
			// plain NTFS directories.
			continue
		}
		mask := *(*uint32)(unsafe.Pointer(pAce + 4))
		sid := (*windows.SID)(unsafe.Pointer(pAce + 8))

		r.ACEs = append(r.ACEs, ACE{
			SID:       sid.String(),
			Type:      aceTypeName(aceType),
			Rights:    maskToRights(mask),
			Inherited: aceFlags&inheritedACE != 0,
		})
	}
	return r, nil
}

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

// Package nics lists network interfaces and filters them for health checks.
package nics

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/shirou/gopsutil/v4/net"
	"github.com/thediveo/enumflag/v2"
)

// Type is the coarse classification of an interface.
type Type enumflag.Flag

const (
	TypeAny Type = iota
	TypeLoopback
	TypeEthernet
	TypeWifi
	TypeVirtual
	// TypeOther is any adapter the name does not identify, e.g. Bluetooth
	// PAN or capture driver adapters.
	TypeOther
)

var TypeIds = map[Type][]string{
	TypeAny:      {"any"},
	TypeLoopback: {"loopback"},
	TypeEthernet: {"ethernet"},
	TypeWifi:     {"wifi", "wi-fi", "wireless"},
	TypeVirtual:  {"virtual"},
	TypeOther:    {"other"},
}

func (t Type) String() string {
	if ids, ok := TypeIds[t]; ok {
		return ids[0]
	}
	return fmt.Sprintf("Type(%d)", t)
}

type Interface struct {
	Name         string
	Index        int
	MTU          int
	HardwareAddr string
	Flags        []string
	Addrs        []string
	Up           bool
	Type         Type
}

// Lister returns the interfaces of the host.
type Lister interface {
	Interfaces(ctx context.Context) ([]Interface, error)
}

// SystemLister lists interfaces with gopsutil.
type SystemLister struct{}

func (SystemLister) Interfaces(ctx context.Context) ([]Interface, error) {
	stats, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces: %w", err)
	}
	ifaces := make([]Interface, 0, len(stats))
	for _, s := range stats {
		iface := Interface{
			Name:         s.Name,
			Index:        s.Index,
			MTU:          s.MTU,
			HardwareAddr: s.HardwareAddr,
			Flags:        s.Flags,
			Up:           slices.Contains(s.Flags, "up"),
			Type:         Classify(s.Name, s.Flags),
		}
		for _, a := range s.Addrs {
			iface.Addrs = append(iface.Addrs, a.Addr)
		}
		ifaces = append(ifaces, iface)
	}
	return ifaces, nil
}

// Classify derives a Type from the interface name and flags. Windows names
// interfaces after the adapter ("Ethernet 2", "Wi-Fi", "vEthernet (WSL)"),
// so both Windows and Unix naming schemes are recognised.
func Classify(name string, flags []string) Type {
	lower := strings.ToLower(name)

	if slices.Contains(flags, "loopback") || lower == "lo" || strings.HasPrefix(lower, "lo0") || strings.HasPrefix(lower, "loopback") {
		return TypeLoopback
	}

	switch {
	case strings.HasPrefix(lower, "vethernet"),
		strings.HasPrefix(lower, "veth"),
		strings.HasPrefix(lower, "br-"),
		strings.HasPrefix(lower, "docker"),
		strings.HasPrefix(lower, "virbr"),
		strings.HasPrefix(lower, "tailscale"),
		strings.HasPrefix(lower, "tun"),
		strings.HasPrefix(lower, "utun"),
		strings.Contains(lower, "vpn"),
		strings.Contains(lower, "virtual"),
		strings.Contains(lower, "pseudo"):
		return TypeVirtual
	case strings.HasPrefix(lower, "wi-fi"),
		strings.HasPrefix(lower, "wifi"),
		strings.HasPrefix(lower, "wlan"),
		strings.HasPrefix(lower, "wl"),
		strings.Contains(lower, "wireless"):
		return TypeWifi
	case strings.HasPrefix(lower, "ethernet"),
		strings.HasPrefix(lower, "local area connection"),
		strings.HasPrefix(lower, "eth"),
		strings.HasPrefix(lower, "enp"),
		strings.HasPrefix(lower, "eno"),
		strings.HasPrefix(lower, "ens"),
		strings.HasPrefix(lower, "en"):
		return TypeEthernet
	}
	return TypeOther
}

// Filter selects interfaces. Zero values match everything.
type Filter struct {
	// NamePattern is a case insensitive glob matched against the name.
	NamePattern string
	UpOnly      bool
	Type        Type
}

// Apply returns the interfaces matching f, preserving order.
func (f Filter) Apply(ifaces []Interface) ([]Interface, error) {
	pattern := strings.ToLower(f.NamePattern)
	if pattern != "" {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid name pattern %q: %w", f.NamePattern, err)
		}
	}

	matched := []Interface{}
	for _, iface := range ifaces {
		if pattern != "" {
			if ok, _ := filepath.Match(pattern, strings.ToLower(iface.Name)); !ok {
				continue
			}
		}
		if f.UpOnly && !iface.Up {
			continue
		}
		if f.Type != TypeAny && iface.Type != f.Type {
			continue
		}
		matched = append(matched, iface)
	}
	return matched, nil
}

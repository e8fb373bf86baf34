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

package nics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags []string
		want  Type
	}{
		{name: "Loopback Pseudo-Interface 1", flags: []string{"up", "loopback", "multicast"}, want: TypeLoopback},
		{name: "lo", want: TypeLoopback},
		{name: "Ethernet", flags: []string{"up"}, want: TypeEthernet},
		{name: "Ethernet 2", want: TypeEthernet},
		{name: "eth0", want: TypeEthernet},
		{name: "Local Area Connection", want: TypeEthernet},
		{name: "enp3s0", want: TypeEthernet},
		{name: "Wi-Fi", want: TypeWifi},
		{name: "wlan0", want: TypeWifi},
		{name: "vEthernet (WSL)", want: TypeVirtual},
		{name: "docker0", want: TypeVirtual},
		{name: "Tailscale", want: TypeVirtual},
		{name: "OpenVPN TAP-Windows6", want: TypeVirtual},
		{name: "something-else", want: TypeOther},
		{name: "Bluetooth Network Connection", want: TypeOther},
		{name: "Npcap Loopback Adapter", flags: []string{"up"}, want: TypeOther},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Classify(tt.name, tt.flags), tt.name)
	}
}

var fixture = []Interface{
	{Name: "Ethernet", Up: true, Type: TypeEthernet},
	{Name: "Ethernet 2", Up: false, Type: TypeEthernet},
	{Name: "Wi-Fi", Up: true, Type: TypeWifi},
	{Name: "Loopback Pseudo-Interface 1", Up: true, Type: TypeLoopback},
	{Name: "Bluetooth Network Connection", Up: false, Type: TypeOther},
}

func ifaceNames(ifaces []Interface) []string {
	out := []string{}
	for _, i := range ifaces {
		out = append(out, i.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "zero filter", filter: Filter{}, want: []string{"Ethernet", "Ethernet 2", "Wi-Fi", "Loopback Pseudo-Interface 1", "Bluetooth Network Connection"}},
		{name: "glob", filter: Filter{NamePattern: "ethernet*"}, want: []string{"Ethernet", "Ethernet 2"}},
		{name: "glob and up", filter: Filter{NamePattern: "ETHERNET*", UpOnly: true}, want: []string{"Ethernet"}},
		{name: "type", filter: Filter{Type: TypeWifi}, want: []string{"Wi-Fi"}},
		{name: "unclassified adapter is not virtual", filter: Filter{Type: TypeVirtual}, want: []string{}},
		{name: "other", filter: Filter{Type: TypeOther}, want: []string{"Bluetooth Network Connection"}},
		{name: "no match", filter: Filter{NamePattern: "bond*"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.filter.Apply(fixture)
			require.NoError(t, err)
			require.Equal(t, tt.want, ifaceNames(got))
		})
	}

	_, err := Filter{NamePattern: "[eth"}.Apply(fixture)
	require.Error(t, err)
}

func TestTypeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "wifi", TypeWifi.String())
	require.Equal(t, "Type(9)", Type(9).String())
}

func TestSystemLister(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping host interface enumeration in short mode")
	}
	ifaces, err := SystemLister{}.Interfaces(context.Background())
	require.NoError(t, err)
	for _, i := range ifaces {
		require.NotEmpty(t, i.Name)
	}
}

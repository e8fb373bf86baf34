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

package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// normalizeArgs rewrites PowerShell style arguments into the form pflag
// parses. "-parentPath x" becomes "--parentPath x", "-prompt:$false"
// becomes "--prompt=false" and a boolean flag followed by a separate value
// ("-prompt $false") is joined into "--prompt=false". The value following a
// non-boolean flag is passed through verbatim even when it starts with a
// dash. Single letter shorthands and everything after "--" are left alone.
func normalizeArgs(args []string, isBool func(name string) bool) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if len(arg) <= 2 || arg[0] != '-' {
			out = append(out, arg)
			continue
		}

		name, value, hasValue := splitFlag(strings.TrimLeft(arg, "-"))
		if isBool(name) {
			if !hasValue && i+1 < len(args) {
				if _, ok := parseBoolArg(args[i+1]); ok {
					value, hasValue = args[i+1], true
					i++
				}
			}
			if v, ok := parseBoolArg(value); hasValue && ok {
				value = strconv.FormatBool(v)
			}
		}

		if hasValue {
			out = append(out, "--"+name+"="+value)
			continue
		}
		out = append(out, "--"+name)
		if !isBool(name) && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

// splitFlag splits "name=value" or PowerShell's "name:value".
func splitFlag(s string) (name, value string, ok bool) {
	if i := strings.IndexAny(s, "=:"); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// parseBoolArg accepts strconv booleans as well as PowerShell's $true and
// $false.
func parseBoolArg(s string) (bool, bool) {
	v, err := strconv.ParseBool(strings.TrimPrefix(s, "$"))
	if err != nil {
		return false, false
	}
	return v, true
}

// boolFlags returns a lookup reporting whether name is a boolean flag on cmd
// or any of its subcommands. Names are compared case insensitively.
func boolFlags(cmd *cobra.Command) func(string) bool {
	names := map[string]bool{}
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		visit := func(f *pflag.Flag) {
			if f.Value.Type() == "bool" {
				names[strings.ToLower(f.Name)] = true
			}
		}
		c.Flags().VisitAll(visit)
		c.PersistentFlags().VisitAll(visit)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(cmd)
	return func(name string) bool {
		return names[strings.ToLower(name)]
	}
}

// lowerFlagNames makes flag names case insensitive like PowerShell
// parameters.
func lowerFlagNames(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ToLower(name))
}

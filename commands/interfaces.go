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
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/winadmin/homesweep/nics"
)

// InterfacesCmd lists network interfaces matching a filter. With Require
// set it doubles as a health check: no match exits ExitNoInterfaces.
type InterfacesCmd struct {
	Out     io.Writer
	Lister  nics.Lister
	Filter  nics.Filter
	Require bool
}

func NewInterfacesCmd(out io.Writer) *InterfacesCmd {
	return &InterfacesCmd{Out: out, Lister: nics.SystemLister{}}
}

// Run returns the process exit code.
func (c *InterfacesCmd) Run(ctx context.Context) int {
	ifaces, err := c.Lister.Interfaces(ctx)
	if err != nil {
		fmt.Fprintf(c.Out, "ERROR: %v\n", err)
		return ExitError
	}
	matched, err := c.Filter.Apply(ifaces)
	if err != nil {
		fmt.Fprintf(c.Out, "ERROR: %v\n", err)
		return ExitError
	}

	if len(matched) == 0 {
		fmt.Fprintln(c.Out, "No matching network interfaces found.")
		if c.Require {
			return ExitNoInterfaces
		}
		return ExitOK
	}

	rows := make([][]string, 0, len(matched))
	for _, i := range matched {
		up := "down"
		if i.Up {
			up = "up"
		}
		rows = append(rows, []string{
			i.Name,
			strconv.Itoa(i.Index),
			i.Type.String(),
			up,
			strconv.Itoa(i.MTU),
			i.HardwareAddr,
			strings.Join(i.Addrs, ", "),
		})
	}
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Name", "Index", "Type", "State", "MTU", "MAC", "Addresses").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style { return cell })
	fmt.Fprintln(c.Out, t.Render())
	return ExitOK
}

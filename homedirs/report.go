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
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// NoCandidatesMessage is printed instead of a table when nothing was selected.
const NoCandidatesMessage = "No candidate directories found."

// Reporter renders candidates as a zero-indexed table. The index column is
// what the deletion prompt expects.
type Reporter struct {
	Out       io.Writer
	ShowOwner bool
}

// Report writes the candidate table, or NoCandidatesMessage when candidates
// is empty.
func (r *Reporter) Report(candidates []DirectoryRecord) error {
	if len(candidates) == 0 {
		_, err := fmt.Fprintln(r.Out, NoCandidatesMessage)
		return err
	}
	_, err := fmt.Fprintln(r.Out, r.Render(candidates))
	return err
}

// Render returns the table for candidates without writing it.
func (r *Reporter) Render(candidates []DirectoryRecord) string {
	headers := []string{"#", "Name", "Status", "ACL"}
	if r.ShowOwner {
		headers = append(headers, "Owner")
	}

	rows := make([][]string, 0, len(candidates))
	for i, c := range candidates {
		row := []string{strconv.Itoa(i), c.Name, c.Status(), c.ACLSummary()}
		if r.ShowOwner {
			row = append(row, c.Owner)
		}
		rows = append(rows, row)
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style { return cell })
	return t.Render()
}

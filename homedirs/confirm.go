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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Confirmer asks the operator which candidates to delete and deletes them
// recursively. There is no dry run and no undo.
type Confirmer struct {
	Fs  afero.Fs
	In  *bufio.Reader
	Out io.Writer
	Log *logrus.Logger
}

func NewConfirmer(fs afero.Fs, in io.Reader, out io.Writer, log *logrus.Logger) *Confirmer {
	return &Confirmer{Fs: fs, In: bufio.NewReader(in), Out: out, Log: log}
}

// Confirm prompts "delete all?". A yes deletes every candidate; any other
// answer asks for comma separated indices into candidates. Bad indices and
// failed deletions are reported and skipped. Confirm returns the paths that
// were deleted.
func (c *Confirmer) Confirm(candidates []DirectoryRecord) ([]string, error) {
	deleted := []string{}
	if len(candidates) == 0 {
		return deleted, nil
	}

	fmt.Fprintf(c.Out, "Delete all %d directories? [y/N]: ", len(candidates))
	answer, err := c.readLine()
	if err != nil {
		return deleted, err
	}

	if isYes(answer) {
		for _, cand := range candidates {
			if c.remove(cand) {
				deleted = append(deleted, cand.Path)
			}
		}
		return deleted, nil
	}

	fmt.Fprint(c.Out, "Enter the indices of the directories to delete, separated by commas: ")
	line, err := c.readLine()
	if err != nil {
		return deleted, err
	}

	seen := map[int]bool{}
	for _, tok := range strings.Split(line, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		idx, err := strconv.Atoi(tok)
		if err != nil || idx < 0 || idx >= len(candidates) {
			fmt.Fprintf(c.Out, "Invalid index: %s\n", tok)
			continue
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		if c.remove(candidates[idx]) {
			deleted = append(deleted, candidates[idx].Path)
		}
	}
	if len(seen) == 0 {
		fmt.Fprintln(c.Out, "No directories selected.")
	}
	return deleted, nil
}

func (c *Confirmer) remove(cand DirectoryRecord) bool {
	if err := c.Fs.RemoveAll(cand.Path); err != nil {
		fmt.Fprintf(c.Out, "Failed to delete %s: %v\n", cand.Path, err)
		if c.Log != nil {
			c.Log.WithField("path", cand.Path).WithError(err).Warn("delete failed")
		}
		return false
	}
	fmt.Fprintf(c.Out, "Deleted %s\n", cand.Path)
	if c.Log != nil {
		c.Log.WithField("path", cand.Path).Debug("deleted directory")
	}
	return true
}

// readLine reads one answer. End of input counts as an empty answer so a
// closed stdin never deletes anything.
func (c *Confirmer) readLine() (string, error) {
	s, err := c.In.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(s), nil
}

func isYes(s string) bool {
	s = strings.ToLower(s)
	return s == "y" || s == "yes"
}

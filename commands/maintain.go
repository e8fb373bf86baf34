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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/thediveo/enumflag/v2"
	"github.com/winadmin/homesweep/config"
	"github.com/winadmin/homesweep/homedirs"
	"github.com/winadmin/homesweep/homedirs/acl"
)

// Exit codes returned by homesweep
const (
	ExitOK           = 0
	ExitError        = 1
	ExitHelp         = 100
	ExitPathNotFound = 101
	ExitNoCandidates = 102
	ExitNoInterfaces = 103
)

// RunMode selects how far the maintenance pipeline runs.
type RunMode enumflag.Flag

const (
	// ModeShow inspects, filters and reports.
	ModeShow RunMode = iota
	// ModeShowAll reports every inspected directory without filtering.
	ModeShowAll
	// ModeMaintain reports candidates and offers to delete them.
	ModeMaintain
)

var RunModeIds = map[RunMode][]string{
	ModeShow:     {"show"},
	ModeShowAll:  {"show all", "showall", "show-all"},
	ModeMaintain: {"maintain"},
}

// MaintainCmd runs the profile directory maintenance pipeline: resolve the
// parent path, inspect every subdirectory, select candidates, report them
// and, in maintain mode, ask which ones to delete.
type MaintainCmd struct {
	Fs            afero.Fs
	Out           io.Writer
	In            io.Reader
	Log           *logrus.Logger
	ACLReader     acl.Reader
	Classifier    acl.SIDClassifier
	Getwd         func() (string, error)
	IsInteractive func() bool
	IsElevated    func() (bool, error)

	Mode             RunMode
	ParentPath       string
	Prompt           bool
	EmptyDirectories homedirs.SelectionMode
	CheckOwner       bool
	IgnoreSIDs       []string
}

// NewMaintainCmd creates a MaintainCmd with default settings
func NewMaintainCmd(in io.Reader, out io.Writer, log *logrus.Logger) *MaintainCmd {
	return &MaintainCmd{
		Fs:               afero.NewOsFs(),
		Out:              out,
		In:               in,
		Log:              log,
		ACLReader:        acl.NewDefaultReader(),
		Classifier:       acl.NewDefaultClassifier(),
		Getwd:            os.Getwd,
		IsInteractive:    stdinIsTerminal,
		IsElevated:       IsElevated,
		Mode:             ModeShow,
		Prompt:           true,
		EmptyDirectories: homedirs.Retain,
	}
}

// ApplyConfig copies values from c into every setting whose flag was not
// given on the command line.
func (m *MaintainCmd) ApplyConfig(flags *pflag.FlagSet, c *config.Config) error {
	if !flags.Changed("parentPath") {
		m.ParentPath = c.ParentPath
	}
	if !flags.Changed("emptyDirectories") && c.EmptyDirectories != "" {
		mode, err := homedirs.ParseSelectionMode(c.EmptyDirectories)
		if err != nil {
			return fmt.Errorf("invalid empty_directories in config: %w", err)
		}
		m.EmptyDirectories = mode
	}
	if !flags.Changed("prompt") {
		m.Prompt = c.Prompt
	}
	if !flags.Changed("checkOwner") {
		m.CheckOwner = c.CheckOwner
	}
	m.IgnoreSIDs = c.IgnoreSIDs
	return nil
}

// Run executes the pipeline and returns the process exit code.
func (m *MaintainCmd) Run() int {
	resolver := homedirs.NewPathResolver(m.Fs)
	if m.Getwd != nil {
		resolver.Getwd = m.Getwd
	}
	base, err := resolver.Resolve(m.ParentPath)
	if err != nil {
		fmt.Fprintf(m.Out, "ERROR: Failed to resolve parent path: %v\n", err)
		if errors.Is(err, homedirs.ErrPathNotFound) {
			return ExitPathNotFound
		}
		return ExitError
	}
	m.Log.WithField("path", base).Debug("resolved parent path")

	names, err := homedirs.ListSubdirectories(m.Fs, base)
	if err != nil {
		fmt.Fprintf(m.Out, "ERROR: %v\n", err)
		return ExitError
	}

	ignore := acl.NewIgnoreList(m.IgnoreSIDs...)
	m.Log.WithField("sids", ignore.SIDs()).Debug("ignoring well-known SIDs")

	inspector := homedirs.NewInspector(m.Fs, ignore, m.Log)
	inspector.ACLReader = m.ACLReader
	inspector.Classifier = m.Classifier
	inspector.CheckOwner = m.CheckOwner
	records := inspector.InspectAll(base, names)

	candidates := records
	if m.Mode != ModeShowAll {
		candidates = homedirs.Select(records, m.EmptyDirectories)
	}
	m.Log.WithFields(logrus.Fields{
		"inspected":  len(records),
		"candidates": len(candidates),
		"selection":  m.EmptyDirectories.String(),
	}).Debug("selected candidates")

	reporter := &homedirs.Reporter{Out: m.Out, ShowOwner: m.CheckOwner}
	if err := reporter.Report(candidates); err != nil {
		m.Log.WithError(err).Error("failed to write report")
		return ExitError
	}
	if len(candidates) == 0 {
		return ExitNoCandidates
	}

	if m.Mode != ModeMaintain || !m.Prompt {
		return ExitOK
	}

	if !m.IsInteractive() {
		m.Log.Warn("stdin is not a terminal, reading answers from redirected input")
	}
	if elevated, err := m.IsElevated(); err != nil {
		m.Log.WithError(err).Debug("failed to determine elevation")
	} else if !elevated {
		m.Log.Warn("not running as Administrator, deleting other users' directories will likely fail")
	}

	confirmer := homedirs.NewConfirmer(m.Fs, m.In, m.Out, m.Log)
	deleted, err := confirmer.Confirm(candidates)
	if err != nil {
		fmt.Fprintf(m.Out, "ERROR: %v\n", err)
		return ExitError
	}
	m.Log.WithField("deleted", len(deleted)).Debug("maintenance finished")
	return ExitOK
}

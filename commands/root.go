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
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"
	"github.com/winadmin/homesweep/config"
	"github.com/winadmin/homesweep/homedirs"
	"github.com/winadmin/homesweep/homedirs/acl"
	"github.com/winadmin/homesweep/nics"
)

// App holds the dependencies shared by all homesweep commands. Tests replace
// them to run the CLI against in-memory filesystems and fake ACLs.
type App struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	Fs            afero.Fs
	ACLReader     acl.Reader
	Classifier    acl.SIDClassifier
	Lister        nics.Lister
	Getwd         func() (string, error)
	IsInteractive func() bool
	IsElevated    func() (bool, error)
}

// NewApp returns an App wired to the real operating system.
func NewApp(in io.Reader, out io.Writer, errOut io.Writer) *App {
	return &App{
		In:            in,
		Out:           out,
		ErrOut:        errOut,
		Fs:            afero.NewOsFs(),
		ACLReader:     acl.NewDefaultReader(),
		Classifier:    acl.NewDefaultClassifier(),
		Lister:        nics.SystemLister{},
		Getwd:         os.Getwd,
		IsInteractive: stdinIsTerminal,
		IsElevated:    IsElevated,
	}
}

// Execute parses args, runs the selected command and returns the exit code.
func (a *App) Execute(args []string) int {
	log := logrus.New()
	log.SetOutput(a.ErrOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	maintain := NewMaintainCmd(a.In, a.Out, log)
	maintain.Fs = a.Fs
	maintain.ACLReader = a.ACLReader
	maintain.Classifier = a.Classifier
	maintain.Getwd = a.Getwd
	maintain.IsInteractive = a.IsInteractive
	maintain.IsElevated = a.IsElevated

	exitCode := ExitOK
	helpShown := false
	var configPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "homesweep",
		Short: "Find and remove empty or orphaned user profile directories",
		Long: `homesweep inspects the immediate subdirectories of a parent directory,
typically C:\Users, and reports those that are empty or whose ACL grants
access to SIDs that no longer resolve to an account.

Everyone, SYSTEM and Administrators are ignored when looking for unresolved
SIDs. In maintain mode the reported directories can be deleted after
confirmation, either all at once or by index.

Exit codes: 0 success, 1 error, 100 help shown, 101 parent path not found,
102 no candidate directories.`,
		Example: `  # Report directories with unresolved SIDs under C:\Users
  homesweep -parentPath C:\Users

  # Report every directory with its ACL
  homesweep -mode "show all" -parentPath C:\Users

  # Offer empty and orphaned directories for deletion
  homesweep -mode maintain -emptyDirectories delete -parentPath C:\Users`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(a.Fs, configPath)
			if err != nil {
				return err
			}
			if err := maintain.ApplyConfig(cmd.Flags(), c); err != nil {
				return err
			}
			exitCode = maintain.Run()
			return nil
		},
	}

	rootCmd.Flags().Var(
		enumflag.New(&maintain.Mode, "mode", RunModeIds, enumflag.EnumCaseInsensitive),
		"mode", `run mode: maintain, show or "show all"`)
	rootCmd.Flags().StringVar(&maintain.ParentPath, "parentPath", "", "parent directory to inspect (default: working directory)")
	rootCmd.Flags().BoolVar(&maintain.Prompt, "prompt", true, "ask before deleting (maintain mode only)")
	rootCmd.Flags().Var(
		enumflag.New(&maintain.EmptyDirectories, "selection", homedirs.SelectionModeIds, enumflag.EnumCaseInsensitive),
		"emptyDirectories", "retain: report directories with unresolved SIDs; delete: also report empty directories")
	rootCmd.Flags().BoolVar(&maintain.CheckOwner, "checkOwner", false, "treat an unresolvable owner SID as an unresolved SID")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(a.newInterfacesCommand(&exitCode))

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		helpShown = true
		defaultHelp(c, args)
	})
	rootCmd.SetGlobalNormalizationFunc(lowerFlagNames)
	rootCmd.InitDefaultHelpFlag()

	rootCmd.SetArgs(normalizeArgs(args, boolFlags(rootCmd)))
	rootCmd.SetIn(a.In)
	rootCmd.SetOut(a.Out)
	rootCmd.SetErr(a.ErrOut)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(a.ErrOut, "Error: %v\n", err)
		return ExitError
	}
	if helpShown {
		return ExitHelp
	}
	return exitCode
}

func (a *App) newInterfacesCommand(exitCode *int) *cobra.Command {
	ic := NewInterfacesCmd(a.Out)
	ic.Lister = a.Lister

	cmd := &cobra.Command{
		Use:   "interfaces",
		Short: "List network interfaces, optionally failing when none match",
		Long: `interfaces lists the network interfaces of this host. Filters narrow the
list by name, state and type. With --require the command exits 103 when no
interface matches, which makes it usable as a health check.`,
		Example: `  # Fail unless a wired interface is up
  homesweep interfaces --type ethernet --up --require

  # Show interfaces whose name starts with "vEthernet"
  homesweep interfaces --name "vEthernet*"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			*exitCode = ic.Run(cmd.Context())
			return nil
		},
	}
	cmd.Flags().StringVar(&ic.Filter.NamePattern, "name", "", "case insensitive glob matched against the interface name")
	cmd.Flags().BoolVar(&ic.Filter.UpOnly, "up", false, "only interfaces that are up")
	cmd.Flags().Var(
		enumflag.New(&ic.Filter.Type, "type", nics.TypeIds, enumflag.EnumCaseInsensitive),
		"type", "interface type: any, loopback, ethernet, wifi, virtual or other")
	cmd.Flags().BoolVar(&ic.Require, "require", false, "exit 103 when no interface matches")
	return cmd
}

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
	"errors"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/winadmin/homesweep/homedirs/acl"
)

// Inspector builds DirectoryRecords. It only reads: directory listings,
// owners and DACLs.
type Inspector struct {
	Fs         afero.Fs
	ACLReader  acl.Reader
	Classifier acl.SIDClassifier
	Ignore     acl.IgnoreList
	// CheckOwner makes an unresolvable owner SID count as an unresolved SID.
	CheckOwner bool
	Log        *logrus.Logger
}

// NewInspector returns an Inspector using the platform ACL reader and SID
// classifier.
func NewInspector(fs afero.Fs, ignore acl.IgnoreList, log *logrus.Logger) *Inspector {
	return &Inspector{
		Fs:         fs,
		ACLReader:  acl.NewDefaultReader(),
		Classifier: acl.NewDefaultClassifier(),
		Ignore:     ignore,
		Log:        log,
	}
}

// InspectAll inspects base/name for every name, in order.
func (i *Inspector) InspectAll(base string, names []string) []DirectoryRecord {
	records := make([]DirectoryRecord, 0, len(names))
	for _, name := range names {
		records = append(records, i.Inspect(filepath.Join(base, name)))
	}
	return records
}

// Inspect builds the record for a single directory.
func (i *Inspector) Inspect(path string) DirectoryRecord {
	rec := newDirectoryRecord(path)
	rec.IsEmpty = i.isEmpty(path)

	report, err := i.ACLReader.ReadACL(path)
	if err != nil {
		rec.ACLError = err.Error()
		i.logger().WithField("path", path).WithError(err).Debug("ACL not readable, reporting without ACL data")
		return rec
	}

	for _, ace := range report.ACEs {
		if i.Ignore.Contains(ace.SID) {
			continue
		}
		name, err := i.Classifier.LookupSID(ace.SID)
		if err != nil {
			rec.HasUnresolvedSID = true
			rec.ACLEntries = append(rec.ACLEntries, ace.SID)
			i.logger().WithFields(logrus.Fields{
				"path": path,
				"sid":  ace.SID,
				"type": ace.Type,
			}).WithError(err).Debug("unresolved SID in ACL")
			continue
		}
		rec.ACLEntries = append(rec.ACLEntries, name)
	}

	if report.OwnerSID != "" {
		name, err := i.Classifier.LookupSID(report.OwnerSID)
		if err != nil {
			rec.Owner = report.OwnerSID
			rec.OwnerUnresolved = true
			if i.CheckOwner {
				rec.HasUnresolvedSID = true
			}
			i.logger().WithFields(logrus.Fields{
				"path": path,
				"sid":  report.OwnerSID,
			}).WithError(err).Debug("unresolved owner SID")
		} else {
			rec.Owner = name
		}
	}

	i.logger().WithFields(logrus.Fields{
		"path":       path,
		"empty":      rec.IsEmpty,
		"acl":        rec.ACLSummary(),
		"owner":      rec.Owner,
		"unresolved": rec.HasUnresolvedSID,
	}).Debug("inspected directory")
	return rec
}

// isEmpty reports whether path has no direct children. Listing failures,
// typically access denied on another user's profile, count as empty.
func (i *Inspector) isEmpty(path string) bool {
	f, err := i.Fs.Open(path)
	if err != nil {
		i.logger().WithField("path", path).WithError(err).Debug("directory not listable, treating as empty")
		return true
	}
	defer f.Close()

	names, err := f.Readdirnames(1)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			i.logger().WithField("path", path).WithError(err).Debug("directory not listable, treating as empty")
		}
		return true
	}
	return len(names) == 0
}

func (i *Inspector) logger() *logrus.Logger {
	if i.Log == nil {
		i.Log = logrus.New()
		i.Log.SetOutput(io.Discard)
	}
	return i.Log
}

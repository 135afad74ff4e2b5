//
//  Copyright 2026 The uvfs authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

// Package osfs adapts a directory of the host filesystem into a
// uvfs.Source, using the functions in os and path/filepath.
//
// Updates are crash-safe via a backup-file convention applied on top of
// the host filesystem: writing X stages the new content at "X^", retires
// any old backup, renames X to "X~", then renames "X^" to X. A crash
// between any two of those steps still leaves a file readable under X or
// its "~" backup; Open falls back to the "~" form when the primary is
// missing, and List hides the sidecar names from the logical namespace.
package osfs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/unionvfs/uvfs"
)

// Source is a uvfs.Source rooted at a directory of the host filesystem.
type Source struct {
	base     string
	readOnly bool
	log      *logrus.Logger
}

// New returns a Source rooted at base, a directory of the host filesystem.
// base need not already exist.
func New(base string, readOnly bool) *Source {
	log := logrus.StandardLogger()

	log.WithFields(logrus.Fields{
		"base":      base,
		"read_only": readOnly,
	}).Info("osfs: mounting host directory")

	return &Source{base: base, readOnly: readOnly, log: log}
}

// hostPath maps an absolute uvfs path to its location under s.base.
func (s *Source) hostPath(path uvfs.Path) string {
	rel := filepath.FromSlash(strings.TrimPrefix(path.String(), "/"))
	return filepath.Join(s.base, rel)
}

// Open implements uvfs.Source, falling back to the "~" backup name when the
// primary file is missing.
func (s *Source) Open(path uvfs.Path) (uvfs.DataFile, error) {
	hp := s.hostPath(path)

	f, err := os.Open(hp)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}

		f, err = os.Open(hp + "~")
		if err != nil {
			if os.IsNotExist(err) {
				return nil, uvfs.ErrNotFound
			}

			return nil, err
		}
	}

	// The host may hold a directory under a name uvfs types as a file.
	if fi, err := f.Stat(); err == nil && fi.IsDir() {
		_ = f.Close()
		return nil, uvfs.ErrIsADirectory
	}

	return f, nil
}

// List implements uvfs.Source, hiding update sidecar files from the
// listing.
func (s *Source) List(path uvfs.Path) ([]uvfs.Path, error) {
	hp := s.hostPath(path)

	des, err := os.ReadDir(hp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, uvfs.ErrNotFound
		}

		if isNotDir(err) {
			return nil, uvfs.ErrNotADirectory
		}

		return nil, err
	}

	out := make([]uvfs.Path, 0, len(des))

	for _, de := range des {
		name := de.Name()

		if strings.HasSuffix(name, "^") || strings.HasSuffix(name, "!") || strings.HasSuffix(name, "~~") {
			continue
		}

		name = strings.TrimSuffix(name, "~")

		if de.IsDir() {
			name += "/"
		}

		p, err := uvfs.New(name)
		if err != nil {
			s.log.WithField("name", de.Name()).Debug("osfs: skipping unrepresentable directory entry")
			continue
		}

		out = append(out, p)
	}

	return out, nil
}

// Update implements uvfs.Source via the write-backup-rename-rename
// sequence described in the package doc.
func (s *Source) Update(path uvfs.Path, data []byte) error {
	if s.readOnly {
		return uvfs.ErrReadOnlyFilesystem
	}

	hp := s.hostPath(path)
	staged := hp + "^"
	backup := hp + "~"

	if err := os.MkdirAll(filepath.Dir(hp), 0o755); err != nil {
		return err
	}

	if err := os.WriteFile(staged, data, 0o644); err != nil {
		return err
	}

	_ = os.Remove(backup)

	if err := os.Rename(hp, backup); err != nil && !os.IsNotExist(err) {
		return err
	}

	return os.Rename(staged, hp)
}

func isNotDir(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}

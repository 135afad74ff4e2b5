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

// Package stdpaths locates and mounts the platform-appropriate standard
// data and config directories for an application, the way a typical
// desktop or CLI tool bootstraps its filesystem view before doing anything
// else.
package stdpaths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/unionvfs/uvfs"
	"github.com/unionvfs/uvfs/fs/osfs"
	"github.com/unionvfs/uvfs/mount"
)

var log = logrus.StandardLogger()

// MountStandardPaths locates the platform-appropriate data and config
// directories for an application named unixyName (used in XDG-style
// lowercase-hyphenated paths) and mounts them into engine, in this order: a
// read-only "Data" or "data" directory found next to the running
// executable (if any) at "/", each existing $XDG_DATA_DIRS entry read-only
// at "/", the unixyName subdirectory of the OS user config directory
// (os.UserConfigDir) read-write at "/config/", and the unixyName
// subdirectory of the OS user cache directory (os.UserCacheDir) read-write
// at "/cache/". humanName is accepted for symmetry with callers that also
// display it, but does not affect mount behavior.
func MountStandardPaths(engine *mount.Engine, unixyName, humanName string) error {
	mountExecutableAdjacentData(engine)
	mountXDGDataDirs(engine)

	if err := mountUserConfigDir(engine, unixyName); err != nil {
		return err
	}

	if err := mountUserCacheDir(engine, unixyName); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"unixy_name": unixyName,
		"human_name": humanName,
	}).Info("stdpaths: standard mounts complete")

	return nil
}

// executableDir returns the directory containing the running executable,
// or the working directory if that cannot be determined.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		log.WithError(err).Warn("stdpaths: could not determine executable path, assuming working directory")
		return "."
	}

	return filepath.Dir(exe)
}

// cranklyExists reports whether dir exists and is readable as a directory,
// logging (rather than failing) on any error other than "not found".
func cranklyExists(dir string) bool {
	if _, err := os.ReadDir(dir); err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("dir", dir).Error("stdpaths: error probing directory")
		}

		return false
	}

	return true
}

// mountExecutableAdjacentData looks for a "Data" or "data" directory next
// to the running executable and mounts it read-only at "/".
func mountExecutableAdjacentData(engine *mount.Engine) {
	base := executableDir()

	candidate := filepath.Join(base, "Data")
	if !cranklyExists(candidate) {
		candidate = filepath.Join(base, "data")
		if !cranklyExists(candidate) {
			log.WithField("base", base).Info("stdpaths: no data directory found")
			return
		}
	}

	log.WithField("dir", candidate).Info("stdpaths: data directory found")

	if err := engine.Mount(uvfs.Must("/"), osfs.New(candidate, true)); err != nil {
		log.WithError(err).Error("stdpaths: failed to mount data directory")
	}
}

func mountUserConfigDir(engine *mount.Engine, unixyName string) error {
	base, err := os.UserConfigDir()
	if err != nil {
		log.WithError(err).Warn("stdpaths: could not determine user config directory")
		return nil //nolint:nilerr // absence of a config dir is not fatal
	}

	dir := filepath.Join(base, unixyName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.WithError(err).WithField("dir", dir).Warn("stdpaths: could not create config directory")
		return nil //nolint:nilerr // absence of a config dir is not fatal
	}

	log.WithField("dir", dir).Info("stdpaths: config directory found")

	return engine.Mount(uvfs.Must("/config/"), osfs.New(dir, false))
}

func mountUserCacheDir(engine *mount.Engine, unixyName string) error {
	base, err := os.UserCacheDir()
	if err != nil {
		log.WithError(err).Warn("stdpaths: could not determine user cache directory")
		return nil //nolint:nilerr // absence of a cache dir is not fatal
	}

	dir := filepath.Join(base, unixyName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.WithError(err).WithField("dir", dir).Warn("stdpaths: could not create cache directory")
		return nil //nolint:nilerr // absence of a cache dir is not fatal
	}

	log.WithField("dir", dir).Info("stdpaths: cache directory found")

	return engine.Mount(uvfs.Must("/cache/"), osfs.New(dir, false))
}

// mountXDGDataDirs mounts each entry of $XDG_DATA_DIRS read-only at "/", in
// reverse order, so the earliest-listed directory (highest priority per
// the XDG Base Directory Specification) ends up the last, and therefore
// highest-priority, mount.
func mountXDGDataDirs(engine *mount.Engine) {
	for _, d := range xdgDataDirs() {
		if !cranklyExists(d) {
			continue
		}

		if err := engine.Mount(uvfs.Must("/"), osfs.New(d, true)); err != nil {
			log.WithError(err).WithField("dir", d).Error("stdpaths: failed to mount XDG data directory")
		}
	}
}

// xdgDataDirs returns the colon-separated entries of $XDG_DATA_DIRS in
// reverse-priority mount order.
func xdgDataDirs() []string {
	list := os.Getenv("XDG_DATA_DIRS")
	if list == "" {
		return nil
	}

	var out []string

	for _, d := range strings.Split(list, ":") {
		if d != "" {
			out = append(out, d)
		}
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

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

// Package vfsutil provides recursive, pattern-based discovery across a
// union-mounted hierarchy, supplementing mount.Engine's plain List with
// "**"-capable glob matching.
package vfsutil

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/unionvfs/uvfs"
	"github.com/unionvfs/uvfs/mount"
)

// Glob walks the union tree exposed by engine, starting at "/", and
// returns every file whose absolute path (with the leading "/" stripped,
// to match doublestar's relative-pattern convention) matches pattern.
// pattern may use "**" to match any number of path segments. Directories
// are descended into but never themselves returned.
func Glob(engine *mount.Engine, pattern string) ([]uvfs.Path, error) {
	var matches []uvfs.Path

	err := walk(engine, uvfs.Must("/"), pattern, &matches)
	if err != nil {
		return nil, err
	}

	return matches, nil
}

func walk(engine *mount.Engine, dir uvfs.Path, pattern string, matches *[]uvfs.Path) error {
	entries, err := engine.List(dir)
	if err != nil {
		return err
	}

	for _, name := range entries {
		full := uvfs.Must(string(dir) + string(name))

		if full.IsDir() {
			if err := walk(engine, full, pattern, matches); err != nil {
				return err
			}

			continue
		}

		ok, err := doublestar.Match(pattern, strings.TrimPrefix(full.String(), "/"))
		if err != nil {
			return err
		}

		if ok {
			*matches = append(*matches, full)
		}
	}

	return nil
}

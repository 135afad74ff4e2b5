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

package uvfs

import "strings"

// Path returns the current contents of b as a Path.
func (b PathBuf) Path() Path {
	return Path(b.inner)
}

// String returns the current contents of b.
func (b PathBuf) String() string {
	return b.inner
}

// IsAbs returns true if b currently holds an absolute path.
func (b PathBuf) IsAbs() bool {
	return b.Path().IsAbs()
}

// IsRelative returns true if b currently holds a relative path.
func (b PathBuf) IsRelative() bool {
	return b.Path().IsRelative()
}

// IsDir returns true if b currently denotes a directory.
func (b PathBuf) IsDir() bool {
	return b.Path().IsDir()
}

// TryJoin extends b in place by applying the relative path rel. rel must
// be relative (PathNotRelative). If b does not denote a directory, rel
// must begin with "../" (BasePathNotDir). A leading run of "../" in rel
// pops one component from b per "..", failing with EscapedRoot if b is
// already "/".
func (b *PathBuf) TryJoin(rel Path) error {
	if rel.IsAbs() {
		return PathNotRelative
	}

	addendum := string(rel)

	if b.IsDir() || strings.HasPrefix(addendum, "../") {
		for {
			rest, ok := strings.CutPrefix(addendum, "../")
			if !ok {
				break
			}

			if b.inner == "/" {
				return EscapedRoot
			}

			if b.inner == "" {
				// A leading ".." run against an empty base is retained
				// verbatim rather than popped against nothing.
				break
			}

			addendum = rest
			b.popOneComponent()
		}

		b.inner += addendum

		return nil
	}

	return BasePathNotDir
}

// TryJoinOrReplace replaces b outright if other is absolute; otherwise it
// behaves like TryJoin.
func (b *PathBuf) TryJoinOrReplace(other Path) error {
	if other.IsAbs() {
		b.inner = string(other)

		return nil
	}

	return b.TryJoin(other)
}

// UpOneLevel removes the innermost component of b. It returns false (and
// leaves b unchanged) if b is already "" or "/".
func (b *PathBuf) UpOneLevel() bool {
	if b.inner == "" || b.inner == "/" {
		return false
	}

	b.popOneComponent()

	return true
}

// MakeFileIntoDir appends a trailing '/' to b, converting a file path into
// a directory path with the same name. It panics if b already denotes a
// directory.
func (b *PathBuf) MakeFileIntoDir() {
	if b.IsDir() {
		panic("uvfs: MakeFileIntoDir called on a path that is already a directory")
	}

	b.inner += "/"
}

// popOneComponent removes the innermost component and its separator,
// mirroring Path.Parent but operating in place on the builder's buffer.
func (b *PathBuf) popOneComponent() {
	s := strings.TrimSuffix(b.inner, "/")

	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		b.inner = s[:i+1]
	} else {
		b.inner = ""
	}
}

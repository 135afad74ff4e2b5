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

import "io"

// DataFile is a handle to an open file returned by Source.Open. It
// supports sequential reads and seeking, but not writing: this layer only
// supports whole-file atomic replacement via Source.Update, never
// random-access writes.
type DataFile interface {
	io.Reader
	io.Seeker
	io.Closer
}

// Source is the capability every backing store implements: open a file,
// list a directory, atomically replace a file's contents. Every path
// passed to a Source has already been rewritten into that source's own
// coordinate system by the caller (typically the union-mount engine in
// package mount) by subtracting the mount prefix; a Source never sees the
// logical, mount-relative path.
type Source interface {
	// Open opens path, which names a file (never a directory), for
	// reading. ErrNotFound means "this source does not claim path";
	// any other error is surfaced to the caller verbatim.
	Open(path Path) (DataFile, error)
	// List returns the single-component entries of the directory named by
	// path. A returned entry that is itself a directory has a trailing
	// '/'. ErrNotFound and ErrNotADirectory are recoverable signals
	// consumed by the union-mount engine; any other error is surfaced.
	List(path Path) ([]Path, error)
	// Update atomically replaces the contents of the file named by path.
	// Read-only sources always return ErrReadOnlyFilesystem.
	Update(path Path, data []byte) error
}

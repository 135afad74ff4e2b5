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

import "io/fs"

// Kind is the set of error conditions a Source or the union-mount engine
// reports. It implements error directly, and Is, so callers can test with
// errors.Is against the io/fs sentinels without depending on this package.
type Kind uint8

const (
	// NotFound means no mount claims the path, or every mount that could
	// have claimed it returned NotFound itself.
	NotFound Kind = iota + 1
	// IsADirectory means Open or Update was called with a directory-typed
	// path.
	IsADirectory
	// NotADirectory means List was called with a file-typed path, or
	// every mount that could have claimed the directory said
	// NotADirectory.
	NotADirectory
	// ReadOnlyFilesystem means Update found no writable mount willing to
	// accept the write.
	ReadOnlyFilesystem
	// Other covers caller misuse, such as passing a relative path to an
	// engine operation that requires an absolute one.
	Other
)

func (k Kind) Error() string {
	switch k {
	case NotFound:
		return "not found"
	case IsADirectory:
		return "is a directory"
	case NotADirectory:
		return "not a directory"
	case ReadOnlyFilesystem:
		return "read-only filesystem"
	case Other:
		return "invalid operation"
	default:
		return "unknown uvfs error"
	}
}

// Is lets errors.Is(err, fs.ErrNotExist) and similar checks succeed against
// a bare Kind or one wrapped in a *fs.PathError.
func (k Kind) Is(target error) bool {
	switch target { //nolint:exhaustive // only io/fs sentinels are meaningful here
	case fs.ErrNotExist:
		return k == NotFound
	case fs.ErrInvalid:
		return k == Other
	}

	return false
}

// ErrNotFound, ErrIsADirectory, ErrNotADirectory, ErrReadOnlyFilesystem and
// ErrOther are the Kind values exposed as conventionally named sentinel
// errors, for callers who prefer errors.Is(err, uvfs.ErrNotFound) to
// errors.Is(err, uvfs.NotFound).
const (
	ErrNotFound           = NotFound
	ErrIsADirectory       = IsADirectory
	ErrNotADirectory      = NotADirectory
	ErrReadOnlyFilesystem = ReadOnlyFilesystem
	ErrOther              = Other
)

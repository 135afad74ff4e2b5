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

//go:generate stringer -type PathError -linecomment -output patherrors_string.go

// PathError is the error taxonomy returned by New, TryJoin and
// TryJoinOrReplace when a string is not a valid uvfs path.
type PathError uint8

const (
	// DoubleSlash is returned for the literal string "//". Other runs of
	// consecutive slashes surface as InvalidStartChar on the resulting
	// empty component instead.
	DoubleSlash PathError = iota + 1 // double slash in path

	// InvalidStartChar is returned when a component begins with '.'.
	InvalidStartChar // invalid start char in some component of path

	// InvalidEndChar is returned when a component ends with a space, '.',
	// '~', '^' or '!'.
	InvalidEndChar // invalid end char in some component of path

	// InvalidChar is returned when a component contains a forbidden
	// character.
	InvalidChar // invalid char in path

	// ReservedName is returned when a component is (or begins with, up to
	// a '.') one of the Windows device names, case-insensitively.
	ReservedName // reserved name in path

	// EscapedRoot is returned when resolving ".." would rise above the
	// root of an absolute path, whether during New or during a join.
	EscapedRoot // path tried to denote root's parent (too many "..")

	// DotDotFile is returned when the whole path is ".." or ends in "/..";
	// only "../" forms are accepted.
	DotDotFile // path ended with ".." (instead of "../")

	// BasePathNotDir is returned by TryJoin when the receiver is a file
	// path and the argument does not begin with "../".
	BasePathNotDir // called join on a path that was not a dir

	// PathNotRelative is returned by TryJoin when the argument is
	// absolute. TryJoinOrReplace never returns this.
	PathNotRelative // called join with a path that was not relative
)

func (e PathError) Error() string {
	return e.String()
}

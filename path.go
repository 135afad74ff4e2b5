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

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Path is an immutable, validated, Unicode-NFD-normalized path in the uvfs
// hierarchy. It is a defined string type: Go has no borrow checker, so
// there is no distinction between a borrowed Path and an owned PathBuf at
// the representation level (see PathBuf). Equality and ordering are plain
// Go string comparison over the canonical form, which is codepoint-wise as
// required.
//
// # Restrictions
//
//   - A path is zero or more components separated by '/'.
//   - An absolute path begins with '/'. A path that does not begin with
//     '/' is relative, and cannot be used to open, list, or update a file.
//   - A path denoting a directory MUST end with '/'; a path denoting a
//     file MUST NOT.
//   - A component MUST be non-empty, MUST NOT begin with '.', MUST NOT end
//     with a space, '.', '~', '^' or '!', and MUST NOT contain any of the
//     C0/C1 control characters or '"', '*', '/', ':', '?', '\', '<', '>',
//     '|'.
//   - A component MUST NOT be (case-insensitively) one of the Windows
//     reserved device names, nor begin with one of them followed by '.'.
//   - "." components are removed and ".." components are resolved, except
//     that a run of leading ".." in a relative path is retained, and ".."
//     above the root of an absolute path is an error.
//   - The text is stored in Unicode Normalization Form D.
type Path string

// PathBuf is the mutable counterpart of Path, supporting join operations
// that grow or shrink the underlying text in place. PathBuf's zero value is
// the empty path.
type PathBuf struct {
	inner string
}

var (
	invalidStartCharPattern = regexp.MustCompile(`^\.`)
	invalidEndCharPattern   = regexp.MustCompile(`[. ~^!]$`)
	invalidCharPattern      = regexp.MustCompile(`[\x{0000}-\x{001F}\x{0080}-\x{009F}"*/:?\\<>|]`)
	invalidNamePattern      = regexp.MustCompile(`(?i)^(AUX|CO(M[1-9]|N)|LPT[1-9]|NUL|PRN)(\.|$)`)
)

// New validates and normalizes s, returning a Path. If s is already in
// canonical form, New returns it unmodified without allocating; otherwise
// it builds the canonical form and returns that.
func New(s string) (Path, error) {
	canon, err := canonicalize(s)
	if err != nil {
		return "", err
	}

	return Path(canon), nil
}

// Must is New, panicking on error. Intended for use on trusted, hardcoded
// strings at initialization time, where a build-time-checked literal
// (package pathlit) is unavailable or impractical.
func Must(s string) Path {
	p, err := New(s)
	if err != nil {
		panic("uvfs: invalid path " + quoteForPanic(s) + ": " + err.Error())
	}

	return p
}

// NewBuf is New, returning a PathBuf.
func NewBuf(s string) (PathBuf, error) {
	canon, err := canonicalize(s)
	if err != nil {
		return PathBuf{}, err
	}

	return PathBuf{inner: canon}, nil
}

// MustBuf is NewBuf, panicking on error.
func MustBuf(s string) PathBuf {
	b, err := NewBuf(s)
	if err != nil {
		panic("uvfs: invalid path " + quoteForPanic(s) + ": " + err.Error())
	}

	return b
}

func quoteForPanic(s string) string {
	var sb strings.Builder

	sb.WriteByte('"')
	sb.WriteString(s)
	sb.WriteByte('"')

	return sb.String()
}

// canonicalize implements the validation and normalization algorithm: fast
// path trivial inputs, reject the handful of whole-string error cases,
// validate every component against the four character-class rules in
// order, then rebuild the canonical form only if something needs fixing.
func canonicalize(s string) (string, error) {
	if s == "" || s == "/" {
		return s, nil
	}

	if s == "//" {
		return "", DoubleSlash
	}

	if s == ".." || strings.HasSuffix(s, "/..") {
		return "", DotDotFile
	}

	isAbs := strings.HasPrefix(s, "/")

	subset := strings.TrimPrefix(s, "/")
	subset = strings.TrimSuffix(subset, "/")

	components := strings.Split(subset, "/")

	needEdit := false
	anyNonDotDot := false

	for _, c := range components {
		switch c {
		case ".":
			needEdit = true
		case "..":
			// A ".." run is canonical only as a leading run in a relative
			// path; in an absolute path it must resolve (or escape root).
			if anyNonDotDot || isAbs {
				needEdit = true
			}
		default:
			if err := validateComponent(c); err != nil {
				return "", err
			}

			anyNonDotDot = true
		}
	}

	if !needEdit && norm.NFD.IsNormalString(s) {
		return s, nil
	}

	return rebuild(s, components)
}

// validateComponent applies the four character-class rules in a fixed
// order: start char, end char, interior char, reserved name. The first
// failing rule determines the error.
func validateComponent(c string) error {
	// An empty component can only come from a run of slashes; it fails the
	// start-char rule, the first in order.
	if c == "" || invalidStartCharPattern.MatchString(c) {
		return InvalidStartChar
	}

	if invalidEndCharPattern.MatchString(c) {
		return InvalidEndChar
	}

	if invalidCharPattern.MatchString(c) {
		return InvalidChar
	}

	if invalidNamePattern.MatchString(c) {
		return ReservedName
	}

	return nil
}

// rebuild constructs the canonical form of s given its already-split
// components, eliding '.', resolving '..' against the accumulator, and
// applying canonical (NFD) decomposition to every surviving component.
func rebuild(s string, components []string) (string, error) {
	var ret strings.Builder

	ret.Grow(len(s) + 1)

	if strings.HasPrefix(s, "/") {
		ret.WriteByte('/')
	}

	for _, c := range components {
		switch c {
		case ".":
			continue
		case "..":
			cur := ret.String()
			switch {
			case cur == "" || strings.HasSuffix(cur, "../"):
				ret.WriteString("../")
			case cur == "/":
				return "", EscapedRoot
			default:
				popComponent(&ret)
			}
		default:
			ret.WriteString(norm.NFD.String(c))
			ret.WriteByte('/')
		}
	}

	out := ret.String()
	if !strings.HasSuffix(s, "/") && strings.HasSuffix(out, "/") {
		out = out[:len(out)-1]
	}

	return out, nil
}

// popComponent removes the innermost component (and its trailing slash)
// from the end of an in-progress canonical path being built by rebuild.
func popComponent(ret *strings.Builder) {
	s := ret.String()
	s = strings.TrimSuffix(s, "/")

	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[:i+1]
	} else {
		s = ""
	}

	ret.Reset()
	ret.WriteString(s)
}

// String returns the path as a string.
func (p Path) String() string {
	return string(p)
}

// IsAbs returns true if the path is absolute (begins with '/').
func (p Path) IsAbs() bool {
	return strings.HasPrefix(string(p), "/")
}

// IsRelative returns true if the path is relative (does not begin with
// '/').
func (p Path) IsRelative() bool {
	return !p.IsAbs()
}

// IsDir returns true if the path denotes a directory: it ends with '/' or
// is empty.
func (p Path) IsDir() bool {
	return p == "" || strings.HasSuffix(string(p), "/")
}

// Parent returns the path to the parent directory of p. "" and "/" return
// themselves.
func (p Path) Parent() Path {
	if p == "" || p == "/" {
		return p
	}

	s := strings.TrimSuffix(string(p), "/")
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return Path(s[:i+1])
	}

	return ""
}

// Ext returns the last '.'-separated suffix of the final component, and
// whether one was present.
func (p Path) Ext() (string, bool) {
	comps := p.Components()
	if len(comps) == 0 {
		return "", false
	}

	last := string(comps[len(comps)-1])

	i := strings.LastIndexByte(last, '.')
	if i < 0 {
		return "", false
	}

	return last[i+1:], true
}

// WithPrefixAbsolute returns the remainder of p after stripping the
// directory path other, and true, if other's text (minus its trailing
// '/') is a strict prefix of p's text at a component boundary. It returns
// ("", false) if other is not a directory path or is not a prefix of p.
//
// This is how the union-mount engine computes a per-source path from a
// mount point and a logical path: the "descent" below the mount point.
func (p Path) WithPrefixAbsolute(other Path) (Path, bool) {
	if !other.IsDir() {
		return "", false
	}

	trimmed := strings.TrimSuffix(string(other), "/")

	rest, ok := strings.CutPrefix(string(p), trimmed)
	if !ok {
		return "", false
	}

	if !strings.HasPrefix(rest, "/") {
		return "", false
	}

	return Path(rest), true
}

// Components returns the '/'-separated components of p's interior (no
// leading or trailing separator). An empty path has zero components.
func (p Path) Components() []Path {
	s := strings.TrimPrefix(string(p), "/")
	s = strings.TrimSuffix(s, "/")

	if s == "" {
		return nil
	}

	parts := strings.Split(s, "/")
	out := make([]Path, len(parts))

	for i, part := range parts {
		out[i] = Path(part)
	}

	return out
}

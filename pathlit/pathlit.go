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

// Package pathlit marks path string literals for build-time validation.
//
// Go has no const-eval or proc-macro facility, so an invalid literal
// cannot be rejected by the compiler itself. Instead, Literal is both a
// valid (if slow) runtime constructor and
// the call-site marker that cmd/uvfspathgen scans for: running `go
// generate` over a package that calls pathlit.Literal("...") validates
// every such literal ahead of time and emits a sibling
// "<file>_pathlit.go" defining a package-level uvfs.Path constant for each
// call site, exactly as this repository's own `//go:generate stringer`
// directives turn named constants into generated String() methods.
//
// Call sites meant to be covered by generation should use the generated
// constant once it exists; Literal itself remains safe to call directly
// wherever generation is impractical (for example, inside a test helper
// building paths from a non-literal format string).
package pathlit

import "github.com/unionvfs/uvfs"

// Literal validates s, the single string literal argument a caller passes
// at a marked call site, and returns the resulting Path. It panics on an
// invalid literal, exactly as uvfs.Must does, since a literal is expected
// to be correct by construction; cmd/uvfspathgen turns that panic into a
// generation-time error reported at the literal's file:line:col instead.
func Literal(s string) uvfs.Path {
	return uvfs.Must(s)
}

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

// Package uvfs defines the path algebra and the Source capability shared by
// every concrete filesystem backend and by the union-mount engine.
//
// # Overview
//
// uvfs presents a single UNIX-ish hierarchy rooted at "/". Backing sources
// are mounted at arbitrary points in that hierarchy; where two sources are
// mounted so that their contents overlap, the result is a union: every file
// or directory in either source appears in the merged tree, with the more
// recently mounted source winning at file granularity.
//
// Given tree A:
//
//	/bar/
//	    /bar/baz
//	/foo
//
// and tree B:
//
//	/bar/
//	    /bar/bang
//	/foo
//
// mounting A then B at "/" produces:
//
//	/bar/
//	    /bar/bang (from B)
//	    /bar/baz  (from A)
//	/foo          (from B)
//
// A directory in any mount shadows a file of the same name in another
// mount. Mounting A at "/" and B at "/plugins/fnord/" synthesizes the
// intermediate "/plugins/" directory even though no source physically
// contains it.
//
// # Paths
//
// Use the Path and PathBuf types in this package instead of the
// OS-dependent path/filepath package. See the Path documentation for the
// exact restrictions; in short, any filename that is legal on Windows is
// also legal here, plus a few extra restrictions around trailing
// characters reserved for backing-store bookkeeping.
package uvfs

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

package mount

import (
	"sort"
	"strings"

	"github.com/unionvfs/uvfs"
)

// mergeListing sorts and deduplicates the accumulated entries from a List
// traversal. The tie-break rule is deliberate: when a file entry "foo" and a
// directory entry "foo/" collide, the directory form must sort immediately
// before the file form so the dedup pass below can discard the file in
// favor of the directory, never the reverse.
func mergeListing(acc []uvfs.Path) []uvfs.Path {
	sort.Slice(acc, func(i, j int) bool {
		return listingLess(acc[i], acc[j])
	})

	out := acc[:0]

	for i, p := range acc {
		if i > 0 && sameOrShadowed(out[len(out)-1], p) {
			continue
		}

		out = append(out, p)
	}

	return out
}

func baseName(p uvfs.Path) string {
	return strings.TrimSuffix(string(p), "/")
}

func listingLess(a, b uvfs.Path) bool {
	ab, bb := baseName(a), baseName(b)

	if ab != bb {
		return ab < bb
	}

	aDir, bDir := a.IsDir(), b.IsDir()
	if aDir != bDir {
		return aDir
	}

	return false
}

// sameOrShadowed reports whether next is either an exact duplicate of prev,
// or a file entry whose base name matches a directory entry already kept.
func sameOrShadowed(prev, next uvfs.Path) bool {
	if prev == next {
		return true
	}

	return prev.IsDir() && baseName(prev) == baseName(next)
}

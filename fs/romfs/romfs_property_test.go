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

package romfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unionvfs/uvfs"
	"github.com/unionvfs/uvfs/fs/romfs"
	"github.com/unionvfs/uvfs/internal/rndtree"
)

// TestRandomTreesListParentContainsChild exercises many randomly shaped
// trees rather than only the hand-written scenarios in romfs_test.go:
// every constructed file appears in a listing of its parent directory,
// and the directory form of its name appears in that listing iff the
// entry is itself a directory.
func TestRandomTreesListParentContainsChild(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		listing := rndtree.Gen(rndtree.Opts{
			NbDirs:      12,
			NbFiles:     30,
			MaxFileSize: 64,
			MaxDepth:    5,
		})

		entries := make([]romfs.Entry, len(listing))
		for i, e := range listing {
			entries[i] = romfs.Entry{Path: e.Path, Data: e.Data}
		}

		source := romfs.New(entries)

		for _, e := range listing {
			parent := e.Path.Parent()

			siblings, err := source.List(parent)
			require.NoError(t, err, "listing parent of %q", e.Path)

			wantName := lastComponent(e.Path)
			if e.Path.IsDir() {
				wantName += "/"
			}

			assert.Contains(t, siblings, uvfs.Path(wantName), "parent listing of %q missing %q", e.Path, wantName)
		}
	}
}

// TestRandomTreesListIsSortedAndDeduplicated checks the sorted,
// duplicate-free listing shape against the in-memory source's own
// listings, which is a stronger statement than the engine merge tests in
// mount/engine_test.go: romfs.List must already hand back entries in this
// shape, since the engine merely concatenates per-source results before
// sorting.
func TestRandomTreesListIsSortedAndDeduplicated(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		listing := rndtree.Gen(rndtree.Opts{
			NbDirs:      8,
			NbFiles:     20,
			MaxFileSize: 16,
			MaxDepth:    4,
		})

		entries := make([]romfs.Entry, len(listing))
		for i, e := range listing {
			entries[i] = romfs.Entry{Path: e.Path, Data: e.Data}
		}

		source := romfs.New(entries)

		assertSubtreeSorted(t, source, uvfs.Must("/"))
	}
}

func assertSubtreeSorted(t *testing.T, source *romfs.Source, dir uvfs.Path) {
	t.Helper()

	names, err := source.List(dir)
	require.NoError(t, err)

	seen := map[string]bool{}

	for i, n := range names {
		key := trimSlash(n.String())
		assert.False(t, seen[key], "duplicate base name %q in listing of %q", key, dir)
		seen[key] = true

		if i > 0 {
			assert.True(t, names[i-1].String() < n.String(), "listing of %q not sorted at %q/%q", dir, names[i-1], n)
		}

		if n.IsDir() {
			assertSubtreeSorted(t, source, uvfs.Must(string(dir)+string(n)))
		}
	}
}

func lastComponent(p uvfs.Path) string {
	comps := p.Components()
	if len(comps) == 0 {
		return ""
	}

	return string(comps[len(comps)-1])
}

func trimSlash(s string) string {
	if len(s) > 0 && s[len(s)-1] == '/' {
		return s[:len(s)-1]
	}

	return s
}

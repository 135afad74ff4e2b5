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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unionvfs/uvfs"
)

func paths(ss ...string) []uvfs.Path {
	out := make([]uvfs.Path, len(ss))
	for i, s := range ss {
		out[i] = uvfs.Path(s)
	}

	return out
}

func TestMergeListingSortsAndDeduplicates(t *testing.T) {
	got := mergeListing(paths("zeta", "alpha", "mid", "alpha"))
	assert.Equal(t, paths("alpha", "mid", "zeta"), got)
}

func TestMergeListingDirectoryShadowsFile(t *testing.T) {
	// The same name as both file and directory: the directory must win, in
	// either arrival order.
	got := mergeListing(paths("foo", "foo/"))
	assert.Equal(t, paths("foo/"), got)

	got = mergeListing(paths("foo/", "foo"))
	assert.Equal(t, paths("foo/"), got)
}

func TestMergeListingDuplicateDirectories(t *testing.T) {
	got := mergeListing(paths("bar/", "bar/", "foo", "bar/"))
	assert.Equal(t, paths("bar/", "foo"), got)
}

func TestMergeListingMixed(t *testing.T) {
	got := mergeListing(paths("bar/", "foo", "plugins/", "bar/", "foo", "foo/"))
	assert.Equal(t, paths("bar/", "foo/", "plugins/"), got)
}

func TestMergeListingEmpty(t *testing.T) {
	assert.Empty(t, mergeListing(nil))
}

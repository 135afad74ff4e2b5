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

package vfsutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unionvfs/uvfs"
	"github.com/unionvfs/uvfs/fs/romfs"
	"github.com/unionvfs/uvfs/mount"
	"github.com/unionvfs/uvfs/vfsutil"
)

func p(s string) uvfs.Path { return uvfs.Must(s) }

func unionEngine(t *testing.T) *mount.Engine {
	t.Helper()

	e := mount.New()

	require.NoError(t, e.Mount(p("/"), romfs.New([]romfs.Entry{
		{Path: p("/docs/guide.md"), Data: []byte("# guide")},
		{Path: p("/docs/api/reference.md"), Data: []byte("# api")},
		{Path: p("/logo.png"), Data: []byte{0x89}},
	})))

	require.NoError(t, e.Mount(p("/plugins/extra/"), romfs.New([]romfs.Entry{
		{Path: p("/readme.md"), Data: []byte("# plugin")},
	})))

	return e
}

func pathStrings(paths []uvfs.Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}

	return out
}

func TestGlobDoubleStar(t *testing.T) {
	e := unionEngine(t)

	got, err := vfsutil.Glob(e, "**/*.md")
	require.NoError(t, err)

	// "**" crosses directory levels, including the phantom "/plugins/"
	// directory synthesized from the second mount's anchor.
	assert.ElementsMatch(t, []string{
		"/docs/guide.md",
		"/docs/api/reference.md",
		"/plugins/extra/readme.md",
	}, pathStrings(got))
}

func TestGlobSingleLevel(t *testing.T) {
	e := unionEngine(t)

	got, err := vfsutil.Glob(e, "docs/*.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"/docs/guide.md"}, pathStrings(got))
}

func TestGlobNoMatches(t *testing.T) {
	e := unionEngine(t)

	got, err := vfsutil.Glob(e, "**/*.wav")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGlobDirectoriesNotReturned(t *testing.T) {
	e := unionEngine(t)

	got, err := vfsutil.Glob(e, "**")
	require.NoError(t, err)

	for _, m := range got {
		assert.False(t, m.IsDir(), "glob returned directory %q", m)
	}
}

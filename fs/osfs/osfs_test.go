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

package osfs_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unionvfs/uvfs"
	"github.com/unionvfs/uvfs/fs/osfs"
)

func p(s string) uvfs.Path { return uvfs.Must(s) }

func readAll(t *testing.T, f uvfs.DataFile) string {
	t.Helper()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	return string(data)
}

func writeHost(t *testing.T, base string, rel string, data string) {
	t.Helper()

	full := filepath.Join(base, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(data), 0o644))
}

func TestOpenReadsHostFile(t *testing.T) {
	base := t.TempDir()
	writeHost(t, base, "sub/greeting", "hello")

	s := osfs.New(base, false)

	f, err := s.Open(p("/sub/greeting"))
	require.NoError(t, err)
	assert.Equal(t, "hello", readAll(t, f))
}

func TestOpenErrorKinds(t *testing.T) {
	base := t.TempDir()
	writeHost(t, base, "dir/inner", "x")

	s := osfs.New(base, false)

	_, err := s.Open(p("/missing"))
	assert.ErrorIs(t, err, uvfs.ErrNotFound)

	// "/dir" is file-typed as a uvfs path but names a host directory.
	_, err = s.Open(p("/dir"))
	assert.ErrorIs(t, err, uvfs.ErrIsADirectory)
}

func TestOpenFallsBackToBackup(t *testing.T) {
	base := t.TempDir()
	writeHost(t, base, "settings~", "old settings")

	s := osfs.New(base, false)

	// The primary is gone (as after a crash between the final two rename
	// steps of an update); the "~" backup must still be readable under the
	// primary's name.
	f, err := s.Open(p("/settings"))
	require.NoError(t, err)
	assert.Equal(t, "old settings", readAll(t, f))
}

func TestListHidesSidecars(t *testing.T) {
	base := t.TempDir()
	writeHost(t, base, "kept", "a")
	writeHost(t, base, "staged^", "b")
	writeHost(t, base, "scratch!", "c")
	writeHost(t, base, "double~~", "d")
	writeHost(t, base, "backup-only~", "e")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "sub"), 0o755))

	s := osfs.New(base, false)

	ls, err := s.List(p("/"))
	require.NoError(t, err)

	got := make([]string, len(ls))
	for i, e := range ls {
		got[i] = e.String()
	}

	// "^", "!" and "~~" entries are hidden entirely; a single trailing "~"
	// is stripped so the backup is listed under its logical name.
	assert.ElementsMatch(t, []string{"kept", "backup-only", "sub/"}, got)
}

func TestListErrorKinds(t *testing.T) {
	base := t.TempDir()
	writeHost(t, base, "plain", "x")

	s := osfs.New(base, false)

	_, err := s.List(p("/missing/"))
	assert.ErrorIs(t, err, uvfs.ErrNotFound)

	_, err = s.List(p("/plain/"))
	assert.ErrorIs(t, err, uvfs.ErrNotADirectory)
}

func TestUpdateLeavesBackup(t *testing.T) {
	base := t.TempDir()
	writeHost(t, base, "doc", "version 1")

	s := osfs.New(base, false)

	require.NoError(t, s.Update(p("/doc"), []byte("version 2")))

	// New content under the primary name.
	got, err := os.ReadFile(filepath.Join(base, "doc"))
	require.NoError(t, err)
	assert.Equal(t, "version 2", string(got))

	// Old content retired to the "~" backup.
	got, err = os.ReadFile(filepath.Join(base, "doc~"))
	require.NoError(t, err)
	assert.Equal(t, "version 1", string(got))

	// No stage file left behind.
	_, err = os.Stat(filepath.Join(base, "doc^"))
	assert.True(t, os.IsNotExist(err))
}

func TestUpdateCreatesFileAndParents(t *testing.T) {
	base := t.TempDir()

	s := osfs.New(base, false)

	require.NoError(t, s.Update(p("/deep/tree/leaf"), []byte("fresh")))

	f, err := s.Open(p("/deep/tree/leaf"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", readAll(t, f))
}

func TestUpdateReplacesExistingBackup(t *testing.T) {
	base := t.TempDir()
	writeHost(t, base, "doc", "version 2")
	writeHost(t, base, "doc~", "version 1")

	s := osfs.New(base, false)

	require.NoError(t, s.Update(p("/doc"), []byte("version 3")))

	got, err := os.ReadFile(filepath.Join(base, "doc~"))
	require.NoError(t, err)
	assert.Equal(t, "version 2", string(got))
}

func TestUpdateReadOnly(t *testing.T) {
	base := t.TempDir()
	writeHost(t, base, "doc", "x")

	s := osfs.New(base, true)

	err := s.Update(p("/doc"), []byte("y"))
	assert.ErrorIs(t, err, uvfs.ErrReadOnlyFilesystem)

	// Read-only means untouched, too.
	got, err := os.ReadFile(filepath.Join(base, "doc"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))
}

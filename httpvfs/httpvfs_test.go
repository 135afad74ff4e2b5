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

package httpvfs_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unionvfs/uvfs"
	"github.com/unionvfs/uvfs/fs/osfs"
	"github.com/unionvfs/uvfs/fs/romfs"
	"github.com/unionvfs/uvfs/httpvfs"
	"github.com/unionvfs/uvfs/mount"
)

func p(s string) uvfs.Path { return uvfs.Must(s) }

func testServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	e := mount.New()

	require.NoError(t, e.Mount(p("/"), romfs.New([]romfs.Entry{
		{Path: p("/assets/banner.txt"), Data: []byte("shipped banner")},
	})))

	writable := t.TempDir()
	require.NoError(t, e.Mount(p("/state/"), osfs.New(writable, false)))

	srv := httptest.NewServer(httpvfs.Handler(e))
	t.Cleanup(srv.Close)

	return srv, writable
}

func TestGetFile(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/files/assets/banner.txt")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "shipped banner", string(body))
}

func TestGetFileNotFound(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/files/assets/missing.txt")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetDirectoryAsFileIsBadRequest(t *testing.T) {
	srv, _ := testServer(t)

	// "/files/" resolves to the root directory, which cannot be opened.
	resp, err := http.Get(srv.URL + "/files/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListDirectory(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/list/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var names []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))

	// "state/" is a phantom directory synthesized from the osfs anchor.
	assert.Equal(t, []string{"assets/", "state/"}, names)
}

func TestListFileIsBadRequest(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/list/assets/banner.txt")
	require.NoError(t, err)
	defer resp.Body.Close()

	// /list/ forces a trailing slash; the romfs reports NotADirectory for
	// "banner.txt/", which surfaces as a client error.
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPutFile(t *testing.T) {
	srv, writable := testServer(t)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/files/state/note", strings.NewReader("remember this"))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	got, err := os.ReadFile(filepath.Join(writable, "note"))
	require.NoError(t, err)
	assert.Equal(t, "remember this", string(got))
}

func TestPutReadOnlyIsForbidden(t *testing.T) {
	srv, _ := testServer(t)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/files/assets/banner.txt", strings.NewReader("graffiti"))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

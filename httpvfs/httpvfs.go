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

// Package httpvfs exposes a mount.Engine over HTTP: GET a file, GET a
// directory listing as JSON, or PUT to replace a file's contents.
package httpvfs

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/unionvfs/uvfs"
	"github.com/unionvfs/uvfs/mount"
)

// Handler adapts engine to net/http, routed with gorilla/mux:
//
//	GET  /files/{path:.*}  streams the named file
//	GET  /list/{path:.*}   returns a JSON array of directory entries
//	PUT  /files/{path:.*}  replaces the named file's contents with the request body
func Handler(engine *mount.Engine) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/files/{path:.*}", fileHandler(engine)).Methods(http.MethodGet, http.MethodPut)
	r.HandleFunc("/list/{path:.*}", listHandler(engine)).Methods(http.MethodGet)

	return r
}

func fileHandler(engine *mount.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path, err := requestPath(r, false)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		switch r.Method {
		case http.MethodGet:
			serveFile(w, engine, path)
		case http.MethodPut:
			updateFile(w, r, engine, path)
		}
	}
}

func serveFile(w http.ResponseWriter, engine *mount.Engine, path uvfs.Path) {
	f, err := engine.Open(path)
	if err != nil {
		writeError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/octet-stream")

	if _, err := io.Copy(w, f); err != nil {
		logrus.WithError(err).WithField("path", path.String()).Warn("httpvfs: error streaming file")
	}
}

func updateFile(w http.ResponseWriter, r *http.Request, engine *mount.Engine, path uvfs.Path) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := engine.Update(path, data); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func listHandler(engine *mount.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path, err := requestPath(r, true)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		entries, err := engine.List(path)
		if err != nil {
			writeError(w, err)
			return
		}

		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.String()
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(names)
	}
}

// requestPath builds an absolute uvfs.Path from the {path} route variable,
// appending a trailing slash when dir is true (for /list/ requests).
func requestPath(r *http.Request, dir bool) (uvfs.Path, error) {
	raw := "/" + mux.Vars(r)["path"]
	if dir && raw != "/" {
		raw += "/"
	}

	return uvfs.New(raw)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, uvfs.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, uvfs.ErrIsADirectory), errors.Is(err, uvfs.ErrNotADirectory):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, uvfs.ErrReadOnlyFilesystem):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

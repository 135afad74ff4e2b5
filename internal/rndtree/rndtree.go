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

// Package rndtree generates random (path, data) listings for property
// testing the path algebra and the in-memory tree source across many
// shapes of tree, rather than only the hand-written scenarios.
package rndtree

import (
	"fmt"

	"github.com/valyala/fastrand"

	"github.com/unionvfs/uvfs"
)

// Opts controls the shape of a generated tree.
type Opts struct {
	NbDirs      int // number of directories, not counting the root
	NbFiles     int // number of files
	MaxFileSize int // maximum size, in bytes, of a generated file
	MaxDepth    int // maximum nesting depth of generated directories
}

// Entry is one generated (path, data) pair, with the same fields as
// fs/romfs.Entry. It is a distinct type, so callers copy each Entry into a
// romfs.Entry before passing the listing to romfs.New.
type Entry struct {
	Path uvfs.Path
	Data []byte
}

// dir tracks one generated directory's absolute path and depth, so child
// directories and files can be attached to a randomly chosen parent.
type dir struct {
	path  string // absolute, trailing "/", e.g. "/dir-3/dir-7/"
	depth int
}

// Gen generates a random tree according to opts and returns its entries,
// including an explicit directory Entry for every generated directory (so
// an empty directory is still represented) and one file Entry per
// generated file. It draws from the package-level fastrand generator, so
// successive calls within a test binary never repeat the same sequence.
func Gen(opts Opts) []Entry {
	dirs := []dir{{path: "/", depth: 0}}
	entries := make([]Entry, 0, opts.NbDirs+opts.NbFiles)

	for i := 0; i < opts.NbDirs; i++ {
		parent := dirs[fastrand.Uint32n(uint32(len(dirs)))]
		name := fmt.Sprintf("dir-%d", i)
		path := parent.path + name + "/"

		entries = append(entries, Entry{Path: uvfs.Must(path)})

		depth := parent.depth + 1
		if opts.MaxDepth <= 0 || depth < opts.MaxDepth {
			dirs = append(dirs, dir{path: path, depth: depth})
		}
	}

	for i := 0; i < opts.NbFiles; i++ {
		parent := dirs[fastrand.Uint32n(uint32(len(dirs)))]
		name := fmt.Sprintf("file-%d", i)
		path := parent.path + name

		size := 0
		if opts.MaxFileSize > 0 {
			size = int(fastrand.Uint32n(uint32(opts.MaxFileSize) + 1))
		}

		data := make([]byte, size)
		for j := range data {
			data[j] = byte(fastrand.Uint32n(256))
		}

		entries = append(entries, Entry{Path: uvfs.Must(path), Data: data})
	}

	return entries
}

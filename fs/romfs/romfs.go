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

// Package romfs implements a read-only uvfs.Source backed by a prebuilt,
// in-memory tree of static files and directories, suitable for embedding
// assets with go:embed.
package romfs

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/unionvfs/uvfs"
)

// node is one entry of the tree: either a file holding a static byte slice,
// or a directory holding its children sorted by name.
type node struct {
	data     []byte // nil for a directory
	isDir    bool
	children []child
}

type child struct {
	name uvfs.Path
	node *node
}

// Entry is one (path, data) pair fed to New. A directory entry (one whose
// Path ends with '/') must have empty Data; it exists only to assert that
// the directory itself is present even if empty.
type Entry struct {
	Path uvfs.Path
	Data []byte
}

// Source is a read-only uvfs.Source over a tree built at construction time.
// Its zero value is not usable; build one with New.
type Source struct {
	root *node
}

// New builds a Source from listing. It panics if listing is malformed: any
// relative path, an explicit "/" entry, a directory entry with non-empty
// data, a file nested under another file, or a duplicate path. These are
// all programmer errors in the caller's static listing, not recoverable
// runtime conditions, so they are fatal rather than returned as errors.
func New(listing []Entry) *Source {
	root := &node{isDir: true}

	for _, e := range listing {
		insert(root, e)
	}

	return &Source{root: root}
}

func insert(root *node, e Entry) {
	path := e.Path

	if !path.IsAbs() {
		panic(fmt.Sprintf("uvfs/fs/romfs: listing contained a relative path: %q", path))
	}

	if path == "/" {
		panic("uvfs/fs/romfs: listing contained an explicit root")
	}

	if path.IsDir() && len(e.Data) > 0 {
		panic(fmt.Sprintf("uvfs/fs/romfs: listing contained a directory with data: %q", path))
	}

	comps := path.Components()
	cur := root

	for _, c := range comps[:len(comps)-1] {
		if !cur.isDir {
			panic(fmt.Sprintf("uvfs/fs/romfs: listing contained a file that was \"under\" another file: %q", path))
		}

		cur = descend(cur, c)
	}

	last := comps[len(comps)-1]

	if !cur.isDir {
		panic(fmt.Sprintf("uvfs/fs/romfs: listing contained a file that was \"under\" another file: %q", path))
	}

	i, found := search(cur.children, last)
	if found {
		panic(fmt.Sprintf("uvfs/fs/romfs: listing contained a duplicate: %q", path))
	}

	var leaf *node
	if path.IsDir() {
		leaf = &node{isDir: true}
	} else {
		leaf = &node{data: e.Data}
	}

	cur.children = append(cur.children, child{})
	copy(cur.children[i+1:], cur.children[i:])
	cur.children[i] = child{name: last, node: leaf}
}

// descend returns the existing subdirectory named name under dir, creating
// it (as an empty directory) if it is not already present.
func descend(dir *node, name uvfs.Path) *node {
	i, found := search(dir.children, name)
	if found {
		return dir.children[i].node
	}

	dir.children = append(dir.children, child{})
	copy(dir.children[i+1:], dir.children[i:])
	dir.children[i] = child{name: name, node: &node{isDir: true}}

	return dir.children[i].node
}

// search performs a binary search for name among children, which must
// already be sorted by name. It returns the insertion index and whether an
// exact match was found there.
func search(children []child, name uvfs.Path) (int, bool) {
	i := sort.Search(len(children), func(i int) bool {
		return children[i].name >= name
	})

	return i, i < len(children) && children[i].name == name
}

// resolve walks path's components from the root, returning the node found,
// or nil if no such path exists.
func (s *Source) resolve(path uvfs.Path) *node {
	cur := s.root

	for _, c := range path.Components() {
		if !cur.isDir {
			return nil
		}

		i, found := search(cur.children, c)
		if !found {
			return nil
		}

		cur = cur.children[i].node
	}

	return cur
}

// Open implements uvfs.Source.
func (s *Source) Open(path uvfs.Path) (uvfs.DataFile, error) {
	n := s.resolve(path)

	switch {
	case n == nil:
		return nil, uvfs.ErrNotFound
	case n.isDir:
		return nil, uvfs.ErrIsADirectory
	default:
		return &reader{Reader: bytes.NewReader(n.data)}, nil
	}
}

// List implements uvfs.Source.
func (s *Source) List(path uvfs.Path) ([]uvfs.Path, error) {
	n := s.resolve(path)

	switch {
	case n == nil:
		return nil, uvfs.ErrNotFound
	case !n.isDir:
		return nil, uvfs.ErrNotADirectory
	}

	out := make([]uvfs.Path, len(n.children))

	for i, c := range n.children {
		name := c.name
		if c.node.isDir {
			name += "/"
		}

		out[i] = name
	}

	return out, nil
}

// Update implements uvfs.Source. romfs is always read-only.
func (s *Source) Update(uvfs.Path, []byte) error {
	return uvfs.ErrReadOnlyFilesystem
}

// reader adapts a *bytes.Reader (Read+Seek) to uvfs.DataFile by adding a
// no-op Close.
type reader struct {
	*bytes.Reader
}

func (r *reader) Close() error { return nil }

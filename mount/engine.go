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

// Package mount implements the union-mount engine: a registry of
// (mount point, source) pairs that composes several uvfs.Source values into
// a single logical hierarchy.
package mount

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/unionvfs/uvfs"
)

// entry is one row of the mount table: a source anchored at point, tagged
// with a uuid so log lines can correlate Mount/Umount pairs without
// depending on table position, which shifts when mounts are removed.
type entry struct {
	id     uuid.UUID
	point  uvfs.Path
	source uvfs.Source
}

// Engine is an ordered registry of mounted uvfs.Source values, presenting
// their union as a single hierarchy rooted at "/". The zero Engine is not
// usable; construct one with New.
//
// An Engine is safe for concurrent use. Mount takes the table's exclusive
// lock; Open, List and Update take the shared lock only while copying the
// table, then traverse the copy; no source method is ever called while
// holding the lock.
type Engine struct {
	mu      sync.RWMutex
	entries []entry
	log     *logrus.Logger
}

// Option configures an Engine constructed by New.
type Option func(*Engine)

// WithLogger overrides the logger used for mount events and traversal
// tracing. The default is logrus.StandardLogger().
func WithLogger(l *logrus.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// New returns an empty Engine with no mounts.
func New(opts ...Option) *Engine {
	e := &Engine{log: logrus.StandardLogger()}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Mount anchors source at point, which must be an absolute directory path.
// Later mounts take priority over earlier ones at file granularity: Mount
// appends to the end of the table. The same point may be mounted more than
// once; no deduplication is performed.
func (e *Engine) Mount(point uvfs.Path, source uvfs.Source) error {
	if !point.IsAbs() {
		return uvfs.ErrOther
	}

	if !point.IsDir() {
		return uvfs.ErrNotADirectory
	}

	id := uuid.New()

	e.mu.Lock()
	e.entries = append(e.entries, entry{id: id, point: point, source: source})
	e.mu.Unlock()

	e.log.WithFields(logrus.Fields{
		"mount_id": id,
		"point":    point.String(),
	}).Info("mount: source attached")

	return nil
}

// Umount removes the most recently mounted entry anchored exactly at point.
// It reports whether an entry was removed.
func (e *Engine) Umount(point uvfs.Path) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := len(e.entries) - 1; i >= 0; i-- {
		if e.entries[i].point == point {
			id := e.entries[i].id
			e.entries = append(e.entries[:i], e.entries[i+1:]...)

			e.log.WithFields(logrus.Fields{
				"mount_id": id,
				"point":    point.String(),
			}).Info("mount: source detached")

			return true
		}
	}

	return false
}

// snapshot copies the current mount table under the read lock, so the
// traversal that follows never calls into a source while holding it.
func (e *Engine) snapshot() []entry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]entry, len(e.entries))
	copy(out, e.entries)

	return out
}

// Open resolves path against the union of mounted sources and returns a
// readable handle to it. path must be an absolute file path.
func (e *Engine) Open(path uvfs.Path) (uvfs.DataFile, error) {
	return e.OpenContext(context.Background(), path)
}

// OpenContext is Open, checking ctx for cancellation before delegating into
// each candidate source.
func (e *Engine) OpenContext(ctx context.Context, path uvfs.Path) (uvfs.DataFile, error) {
	if !path.IsAbs() {
		return nil, uvfs.ErrOther
	}

	if path.IsDir() {
		return nil, uvfs.ErrIsADirectory
	}

	entries := e.snapshot()

	for i := len(entries) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ent := entries[i]

		suffix, ok := path.WithPrefixAbsolute(ent.point)
		if !ok {
			continue
		}

		f, err := ent.source.Open(suffix)

		logEntry := e.log.WithFields(logrus.Fields{
			"mount_id": ent.id,
			"point":    ent.point.String(),
			"path":     path.String(),
		})

		switch {
		case err == nil:
			logEntry.Debug("open: claimed")
			return f, nil
		case errors.Is(err, uvfs.ErrNotFound):
			logEntry.Debug("open: not claimed")
			continue
		default:
			return nil, err
		}
	}

	return nil, uvfs.ErrNotFound
}

// Update atomically replaces the contents of the file named by path. Only
// the newest mount under which path falls is tried unless it reports
// ReadOnlyFilesystem, in which case the next (older) mount is tried; any
// other result, including NotFound and success, ends the traversal. This
// asymmetry (compared to Open's plain NotFound fall-through) is deliberate:
// it keeps a write from silently landing in a mount shadowed by a
// read-write one closer to the surface.
func (e *Engine) Update(path uvfs.Path, data []byte) error {
	return e.UpdateContext(context.Background(), path, data)
}

// UpdateContext is Update, checking ctx for cancellation before delegating
// into each candidate source.
func (e *Engine) UpdateContext(ctx context.Context, path uvfs.Path, data []byte) error {
	if !path.IsAbs() {
		return uvfs.ErrOther
	}

	if path.IsDir() {
		return uvfs.ErrIsADirectory
	}

	entries := e.snapshot()

	for i := len(entries) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return err
		}

		ent := entries[i]

		suffix, ok := path.WithPrefixAbsolute(ent.point)
		if !ok {
			continue
		}

		err := ent.source.Update(suffix, data)

		e.log.WithFields(logrus.Fields{
			"mount_id": ent.id,
			"point":    ent.point.String(),
			"path":     path.String(),
		}).Debug("update: attempted")

		if errors.Is(err, uvfs.ErrReadOnlyFilesystem) {
			continue
		}

		return err
	}

	return uvfs.ErrReadOnlyFilesystem
}

// List returns the merged, sorted, deduplicated single-component entries of
// the directory named by path, synthesizing any phantom directories implied
// by mount anchors strictly below path. path must be an absolute directory
// path.
func (e *Engine) List(path uvfs.Path) ([]uvfs.Path, error) {
	return e.ListContext(context.Background(), path)
}

// ListContext is List, checking ctx for cancellation between mounts.
func (e *Engine) ListContext(ctx context.Context, path uvfs.Path) ([]uvfs.Path, error) {
	if !path.IsAbs() || !path.IsDir() {
		return nil, uvfs.ErrOther
	}

	entries := e.snapshot()

	var (
		acc          []uvfs.Path
		anySucceeded bool
		sawNotADir   bool
	)

	for _, ent := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if suffix, ok := path.WithPrefixAbsolute(ent.point); ok {
			children, err := ent.source.List(suffix)

			switch {
			case err == nil:
				acc = append(acc, children...)
				anySucceeded = true
			case errors.Is(err, uvfs.ErrNotFound):
				// This source does not claim path; keep looking.
			case errors.Is(err, uvfs.ErrNotADirectory):
				sawNotADir = true
			default:
				return nil, err
			}

			continue
		}

		if remainder, ok := ent.point.WithPrefixAbsolute(path); ok {
			phantom := remainder.Components()[0]
			acc = append(acc, phantom+"/")
			anySucceeded = true
		}
	}

	if !anySucceeded {
		if sawNotADir {
			return nil, uvfs.ErrNotADirectory
		}

		return nil, uvfs.ErrNotFound
	}

	return mergeListing(acc), nil
}

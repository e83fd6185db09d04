// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package objwatch re-parses an OBJ file on a background goroutine
// whenever it changes on disk. Parsing makes no GPU calls; the owner
// of the rendering context receives the results and uploads them.
package objwatch

import (
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/glmesh/obj"
	"github.com/fsnotify/fsnotify"
)

// Mesh is a parsed mesh ready for upload.
type Mesh struct {
	Path     string
	Vertices []obj.Vertex
	Bounds   math32.Box3
}

// Load parses the OBJ file at path. It can be called from any goroutine.
func Load(path string) (*Mesh, error) {
	dec, err := obj.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	vtxs, err := dec.Flatten()
	if err != nil {
		return nil, err
	}
	return &Mesh{Path: path, Vertices: vtxs, Bounds: dec.Bounds()}, nil
}

// Watcher delivers a freshly parsed [Mesh] each time its file is
// written. Files that fail to parse are logged and skipped, so the
// receiver keeps its last good mesh. Only the latest parse is kept
// if the receiver falls behind.
type Watcher struct {
	fsw   *fsnotify.Watcher
	path  string
	loads chan *Mesh
	done  chan struct{}
}

// Watch starts watching path. The directory is watched rather than
// the file so that editors that save by renaming are handled.
func Watch(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Log(err)
	}
	path = filepath.Clean(path)
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, errors.Log(err)
	}
	w := &Watcher{
		fsw:   fsw,
		path:  path,
		loads: make(chan *Mesh, 1),
		done:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Loads returns the channel parsed meshes are delivered on.
func (w *Watcher) Loads() <-chan *Mesh {
	return w.loads
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			ms, err := Load(w.path)
			if err != nil {
				slog.Warn("objwatch: not reloading", "path", w.path, "err", err)
				continue
			}
			w.send(ms)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}

// send replaces any pending mesh with ms.
func (w *Watcher) send(ms *Mesh) {
	for {
		select {
		case w.loads <- ms:
			return
		default:
		}
		select {
		case <-w.loads:
		default:
		}
	}
}

// Close stops watching and waits for the watch goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

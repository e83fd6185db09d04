// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangle = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

const twoTriangles = triangle + "v 1 1 0\nf 3 2 4\n"

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	require.NoError(t, os.WriteFile(path, []byte(triangle), 0o644))
	ms, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, ms.Vertices, 3)
	assert.Equal(t, math32.Vec3(1, 1, 0), ms.Bounds.Max)
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.obj")
	require.NoError(t, os.WriteFile(path, []byte(triangle), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	// unrelated files and bad content are skipped
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.obj"), []byte(triangle), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("f 1 2 3 4\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(twoTriangles), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ms := <-w.Loads():
			if len(ms.Vertices) == 6 {
				assert.Equal(t, filepath.Clean(path), ms.Path)
				return
			}
		case <-deadline:
			t.Fatal("no reload after writing the watched file")
		}
	}
}

func TestWatchMissingDir(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope", "mesh.obj"))
	assert.Error(t, err)
}

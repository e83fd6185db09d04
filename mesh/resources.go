// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"log/slog"

	"cogentcore.org/glmesh/gpu"
	"cogentcore.org/glmesh/resource"
)

// Buffer is the unique owner of a GPU buffer object.
type Buffer struct {
	resource.Unique[gpu.Handle]
}

// VertexArray is the unique owner of a GPU vertex array object.
type VertexArray struct {
	resource.Unique[gpu.Handle]
}

// DeleteBuffer returns the release action for buffers made through gl.
func DeleteBuffer(gl gpu.GL) func(gpu.Handle) {
	return func(h gpu.Handle) {
		gl.DeleteBuffer(h)
	}
}

// DeleteVertexArray returns the release action for vertex arrays
// made through gl.
func DeleteVertexArray(gl gpu.GL) func(gpu.Handle) {
	return func(h gpu.Handle) {
		gl.DeleteVertexArray(h)
	}
}

// NewBuffer allocates one buffer object through gl and takes
// ownership of it. The result is empty if gl could not allocate one.
func NewBuffer(gl gpu.GL) Buffer {
	h := gl.GenBuffer()
	if h.IsNil() {
		slog.Error("mesh: graphics API could not allocate a buffer object")
	}
	return Buffer{resource.New(h, gpu.NoHandle, DeleteBuffer(gl))}
}

// NewVertexArray allocates one vertex array object through gl and takes
// ownership of it. The result is empty if gl could not allocate one.
func NewVertexArray(gl gpu.GL) VertexArray {
	h := gl.GenVertexArray()
	if h.IsNil() {
		slog.Error("mesh: graphics API could not allocate a vertex array object")
	}
	return VertexArray{resource.New(h, gpu.NoHandle, DeleteVertexArray(gl))}
}

// Move returns a new Buffer owning the handle of b, leaving b empty.
func (b *Buffer) Move() Buffer {
	return Buffer{b.Unique.Move()}
}

// Take releases the buffer held by b, if any, and takes the one
// held by src, leaving src empty.
func (b *Buffer) Take(src *Buffer) {
	if src == nil {
		return
	}
	b.Unique.Take(&src.Unique)
}

// Move returns a new VertexArray owning the handle of va, leaving va empty.
func (va *VertexArray) Move() VertexArray {
	return VertexArray{va.Unique.Move()}
}

// Take releases the vertex array held by va, if any, and takes the one
// held by src, leaving src empty.
func (va *VertexArray) Take(src *VertexArray) {
	if src == nil {
		return
	}
	va.Unique.Take(&src.Unique)
}

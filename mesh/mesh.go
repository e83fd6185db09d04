// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh manages static triangle meshes resident on the GPU.
//
// A [StaticMesh] uniquely owns one vertex array and one vertex buffer
// holding three interleaved [obj.Vertex] records per triangle, drawn
// non-indexed with [Draw]. Use [LoadStatic] to build one from an OBJ
// file, or [Upload] for vertices decoded elsewhere (for example on a
// worker goroutine; all GPU calls must happen on the context thread).
package mesh

import (
	"cogentcore.org/glmesh/gpu"
)

// StaticMesh is a GPU mesh made of triangles that is uploaded once
// and drawn many times. VertexBuffer holds exactly 3*NumTriangles
// vertex records laid out as described by [Layout].
// A StaticMesh must not be copied; use [StaticMesh.Move].
type StaticMesh struct {
	VAO          VertexArray
	VertexBuffer Buffer
	NumTriangles int
}

// NumVertices returns the number of vertices drawn by [Draw].
func (ms *StaticMesh) NumVertices() int {
	return 3 * ms.NumTriangles
}

// Move returns a new StaticMesh owning the resources of ms.
// ms is left holding no resources and no triangles.
func (ms *StaticMesh) Move() *StaticMesh {
	nm := &StaticMesh{
		VAO:          ms.VAO.Move(),
		VertexBuffer: ms.VertexBuffer.Move(),
		NumTriangles: ms.NumTriangles,
	}
	ms.NumTriangles = 0
	return nm
}

// Take releases the resources of ms and takes those of src,
// leaving src empty.
func (ms *StaticMesh) Take(src *StaticMesh) {
	if src == nil || src == ms {
		return
	}
	ms.VAO.Take(&src.VAO)
	ms.VertexBuffer.Take(&src.VertexBuffer)
	ms.NumTriangles = src.NumTriangles
	src.NumTriangles = 0
}

// Close releases the GPU resources of ms. It is safe to call
// more than once and on a nil StaticMesh.
func (ms *StaticMesh) Close() error {
	if ms == nil {
		return nil
	}
	ms.VAO.Close()
	ms.VertexBuffer.Close()
	ms.NumTriangles = 0
	return nil
}

// Draw binds the vertex array of ms and draws all of its triangles.
// A rendering context must be current and a program using the
// attribute locations of [Layout] must be in use.
func Draw(gl gpu.GL, ms *StaticMesh) {
	gl.BindVertexArray(ms.VAO.Get())
	gl.DrawArrays(gpu.Triangles, 0, int32(ms.NumVertices()))
}

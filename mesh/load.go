// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glmesh/gpu"
	"cogentcore.org/glmesh/obj"
)

// Attribute locations expected by shaders drawing a [StaticMesh].
const (
	AttribPosition uint32 = 0
	AttribTexcoord uint32 = 1
	AttribNormal   uint32 = 2
)

// VertexStride is the size in bytes of one interleaved vertex record.
const VertexStride = 8 * 4

// Attrib describes one float attribute of the interleaved vertex record.
type Attrib struct {
	Location uint32

	// Size is the number of float32 components.
	Size int32

	// Offset is the byte offset within the record.
	Offset int
}

// Layout is the attribute layout of every [StaticMesh] vertex buffer:
// position, texcoord, and normal, tightly packed in that order.
var Layout = []Attrib{
	{AttribPosition, 3, 0},
	{AttribTexcoord, 2, 3 * 4},
	{AttribNormal, 3, 5 * 4},
}

// LoadStatic loads the OBJ file at path and uploads it as a new
// [StaticMesh]. It fails with an [*obj.IOError] or [*obj.FormatError],
// or if the graphics API cannot allocate the mesh objects. On failure
// no GPU objects created by the call remain alive.
func LoadStatic(gl gpu.GL, path string) (*StaticMesh, error) {
	vtxs, err := obj.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ms, err := Upload(gl, vtxs)
	if err != nil {
		return nil, fmt.Errorf("mesh.LoadStatic %s: %w", path, err)
	}
	slog.Debug("mesh: loaded", "path", path, "triangles", ms.NumTriangles, "vao", ms.VAO.Get(), "buffer", ms.VertexBuffer.Get())
	return ms, nil
}

// Upload creates a [StaticMesh] drawing vtxs as a triangle list:
// it uploads the vertices into a new static buffer and records the
// [Layout] in a new vertex array. len(vtxs) must be a multiple of 3.
// On failure every object created so far is released.
func Upload(gl gpu.GL, vtxs []obj.Vertex) (*StaticMesh, error) {
	if len(vtxs)%3 != 0 {
		return nil, fmt.Errorf("mesh.Upload: %d vertices do not form whole triangles", len(vtxs))
	}
	ms := &StaticMesh{}
	ok := false
	defer func() {
		if !ok {
			ms.Close()
		}
	}()

	ms.VertexBuffer = NewBuffer(gl)
	if ms.VertexBuffer.IsNil() {
		return nil, errors.New("mesh.Upload: could not allocate a vertex buffer")
	}
	gl.BindBuffer(gpu.ArrayBuffer, ms.VertexBuffer.Get())
	gl.BufferData(gpu.ArrayBuffer, Encode(vtxs), gpu.StaticDraw)

	ms.VAO = NewVertexArray(gl)
	if ms.VAO.IsNil() {
		gl.BindBuffer(gpu.ArrayBuffer, gpu.NoHandle)
		return nil, errors.New("mesh.Upload: could not allocate a vertex array")
	}
	gl.BindVertexArray(ms.VAO.Get())
	for _, at := range Layout {
		gl.EnableVertexAttribArray(at.Location)
		gl.VertexAttribPointer(at.Location, at.Size, gpu.Float32, false, VertexStride, at.Offset)
	}
	gl.BindVertexArray(gpu.NoHandle)
	gl.BindBuffer(gpu.ArrayBuffer, gpu.NoHandle)

	ms.NumTriangles = len(vtxs) / 3
	ok = true
	return ms, nil
}

// Encode returns the interleaved little-endian float32 representation
// of vtxs, [VertexStride] bytes per vertex.
func Encode(vtxs []obj.Vertex) []byte {
	b := make([]byte, 0, len(vtxs)*VertexStride)
	put := func(vs ...float32) {
		for _, v := range vs {
			b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
		}
	}
	for i := range vtxs {
		v := &vtxs[i]
		put(v.Position.X, v.Position.Y, v.Position.Z)
		put(v.Texcoord.X, v.Texcoord.Y)
		put(v.Normal.X, v.Normal.Y, v.Normal.Z)
	}
	return b
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"encoding/binary"
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/glmesh/gpu"
	"cogentcore.org/glmesh/gpu/gputest"
	"cogentcore.org/glmesh/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floats decodes an uploaded vertex buffer.
func floats(b []byte) []float32 {
	fs := make([]float32, len(b)/4)
	for i := range fs {
		fs[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return fs
}

func TestBufferCloseDeletesOnce(t *testing.T) {
	gl := gputest.New()
	buf := NewBuffer(gl)
	require.False(t, buf.IsNil())
	h := buf.Get()
	assert.True(t, gl.IsLive(h))

	buf.Close()
	buf.Close()
	assert.Equal(t, []gputest.Object{{Kind: gputest.Buffer, Handle: h}}, gl.Deleted)
	assert.False(t, gl.IsLive(h))
	assert.Empty(t, gl.Misuse)
}

func TestVertexArrayCloseDeletesOnce(t *testing.T) {
	gl := gputest.New()
	va := NewVertexArray(gl)
	h := va.Get()
	va.Close()
	assert.Equal(t, []gputest.Object{{Kind: gputest.VertexArray, Handle: h}}, gl.Deleted)
	assert.Equal(t, 0, gl.DeleteCount(gputest.Buffer))
}

func TestMoveLeavesSentinel(t *testing.T) {
	gl := gputest.New()
	src := NewBuffer(gl)
	h := src.Get()
	dst := src.Move()

	assert.Equal(t, gpu.NoHandle, src.Get())
	assert.Equal(t, h, dst.Get())
	src.Close()
	assert.Empty(t, gl.Deleted, "moved-from buffer must not delete")

	dst.Close()
	assert.Equal(t, 1, gl.DeleteCount(gputest.Buffer))
	assert.Empty(t, gl.Misuse)
}

func TestTakeReleasesPrior(t *testing.T) {
	gl := gputest.New()
	a := NewVertexArray(gl)
	b := NewVertexArray(gl)
	ha, hb := a.Get(), b.Get()

	a.Take(&b)
	assert.Equal(t, []gputest.Object{{Kind: gputest.VertexArray, Handle: ha}}, gl.Deleted)
	assert.Equal(t, hb, a.Get())
	assert.True(t, b.IsNil())
	a.Close()
	b.Close()
	assert.Equal(t, 2, gl.DeleteCount(gputest.VertexArray))
	assert.Empty(t, gl.Misuse)
}

func TestFactoryFailure(t *testing.T) {
	gl := gputest.New()
	gl.FailBuffers = true
	buf := NewBuffer(gl)
	assert.True(t, buf.IsNil())
	buf.Close()
	assert.Empty(t, gl.Deleted)
}

func TestLoadTriangle(t *testing.T) {
	gl := gputest.New()
	ms, err := LoadStatic(gl, "testdata/triangle.obj")
	require.NoError(t, err)
	defer ms.Close()

	assert.Equal(t, 1, ms.NumTriangles)
	require.Len(t, gl.Uploads, 1)
	up := gl.Uploads[0]
	assert.Equal(t, ms.VertexBuffer.Get(), up.Buffer)
	assert.Equal(t, gpu.ArrayBuffer, up.Target)
	assert.Equal(t, gpu.StaticDraw, up.Usage)
	assert.Equal(t, []float32{
		0, 0, 0, 0, 0, 0, 0, 0,
		1, 0, 0, 0, 0, 0, 0, 0,
		0, 1, 0, 0, 0, 0, 0, 0,
	}, floats(up.Data))

	attrs := gl.Attribs[ms.VAO.Get()]
	require.Len(t, attrs, 3)
	want := map[uint32]gputest.Attrib{
		AttribPosition: {Size: 3, Offset: 0},
		AttribTexcoord: {Size: 2, Offset: 12},
		AttribNormal:   {Size: 3, Offset: 20},
	}
	for loc, w := range want {
		at := attrs[loc]
		require.NotNil(t, at, "location %d", loc)
		assert.True(t, at.Enabled)
		assert.Equal(t, ms.VertexBuffer.Get(), at.Buffer)
		assert.Equal(t, w.Size, at.Size)
		assert.Equal(t, w.Offset, at.Offset)
		assert.Equal(t, int32(VertexStride), at.Stride)
		assert.Equal(t, gpu.Float32, at.Type)
		assert.False(t, at.Normalized)
	}
	assert.Equal(t, gpu.NoHandle, gl.BoundVertexArray)
	assert.Empty(t, gl.Misuse)
}

func TestLoadCube(t *testing.T) {
	gl := gputest.New()
	ms, err := LoadStatic(gl, "testdata/cube.obj")
	require.NoError(t, err)
	assert.Equal(t, 12, ms.NumTriangles)
	assert.Equal(t, 36*VertexStride, gl.BufferSize(ms.VertexBuffer.Get()))

	ms.Close()
	assert.Equal(t, 0, gl.Live(gputest.Buffer))
	assert.Equal(t, 0, gl.Live(gputest.VertexArray))
	assert.Empty(t, gl.Misuse)
}

func TestLoadFormatErrors(t *testing.T) {
	for _, fn := range []string{"testdata/quad.obj", "testdata/badindex.obj"} {
		t.Run(fn, func(t *testing.T) {
			gl := gputest.New()
			ms, err := LoadStatic(gl, fn)
			assert.Nil(t, ms)
			var fe *obj.FormatError
			assert.ErrorAs(t, err, &fe)
			assert.Equal(t, len(gl.Created), len(gl.Deleted))
			assert.Equal(t, 0, gl.Live(gputest.Buffer))
			assert.Equal(t, 0, gl.Live(gputest.VertexArray))
		})
	}
}

func TestLoadMissing(t *testing.T) {
	gl := gputest.New()
	_, err := LoadStatic(gl, "testdata/missing.obj")
	var ioe *obj.IOError
	assert.ErrorAs(t, err, &ioe)
	assert.Empty(t, gl.Created)
}

func TestUploadFailureReleases(t *testing.T) {
	gl := gputest.New()
	gl.FailVertexArrays = true
	vtxs := make([]obj.Vertex, 3)
	ms, err := Upload(gl, vtxs)
	assert.Error(t, err)
	assert.Nil(t, ms)
	assert.Equal(t, 1, gl.DeleteCount(gputest.Buffer), "buffer created before the failure is deleted")
	assert.Equal(t, 0, gl.Live(gputest.Buffer))
	assert.Empty(t, gl.Misuse)

	gl = gputest.New()
	gl.FailBuffers = true
	_, err = Upload(gl, vtxs)
	assert.Error(t, err)
	assert.Empty(t, gl.Created)
	assert.Empty(t, gl.Deleted)
}

func TestUploadPartialTriangle(t *testing.T) {
	gl := gputest.New()
	_, err := Upload(gl, make([]obj.Vertex, 4))
	assert.Error(t, err)
	assert.Empty(t, gl.Created)
}

func TestUploadEmpty(t *testing.T) {
	gl := gputest.New()
	ms, err := Upload(gl, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, ms.NumTriangles)
	Draw(gl, ms)
	assert.Equal(t, gputest.Draw{VertexArray: ms.VAO.Get(), Mode: gpu.Triangles}, gl.Draws[0])
	ms.Close()
}

func TestDraw(t *testing.T) {
	gl := gputest.New()
	vtxs := make([]obj.Vertex, 12)
	vtxs[4].Normal = math32.Vec3(0, 0, 1)
	ms, err := Upload(gl, vtxs)
	require.NoError(t, err)
	assert.Equal(t, 4, ms.NumTriangles)

	Draw(gl, ms)
	require.Len(t, gl.Draws, 1)
	assert.Equal(t, gputest.Draw{VertexArray: ms.VAO.Get(), Mode: gpu.Triangles, First: 0, Count: 12}, gl.Draws[0])
	assert.Equal(t, ms.VAO.Get(), gl.BoundVertexArray)
	assert.Empty(t, gl.Misuse)
}

func TestStaticMeshMove(t *testing.T) {
	gl := gputest.New()
	ms, err := LoadStatic(gl, "testdata/triangle.obj")
	require.NoError(t, err)
	vao, buf := ms.VAO.Get(), ms.VertexBuffer.Get()

	nm := ms.Move()
	assert.True(t, ms.VAO.IsNil())
	assert.True(t, ms.VertexBuffer.IsNil())
	assert.Equal(t, 0, ms.NumTriangles)
	assert.Equal(t, vao, nm.VAO.Get())
	assert.Equal(t, buf, nm.VertexBuffer.Get())
	assert.Equal(t, 1, nm.NumTriangles)

	ms.Close()
	assert.Empty(t, gl.Deleted)
	nm.Close()
	assert.Len(t, gl.Deleted, 2)
	assert.Empty(t, gl.Misuse)

	var nilms *StaticMesh
	assert.NoError(t, nilms.Close())
}

func TestStaticMeshTake(t *testing.T) {
	gl := gputest.New()
	cur, err := LoadStatic(gl, "testdata/triangle.obj")
	require.NoError(t, err)
	next, err := LoadStatic(gl, "testdata/cube.obj")
	require.NoError(t, err)
	oldVAO, oldBuf := cur.VAO.Get(), cur.VertexBuffer.Get()

	cur.Take(next)
	assert.Equal(t, 12, cur.NumTriangles)
	assert.Equal(t, 0, next.NumTriangles)
	assert.False(t, gl.IsLive(oldVAO))
	assert.False(t, gl.IsLive(oldBuf))

	next.Close()
	assert.Len(t, gl.Deleted, 2)
	cur.Close()
	assert.Len(t, gl.Deleted, 4)
	assert.Empty(t, gl.Misuse)
}

func TestEncode(t *testing.T) {
	v := obj.Vertex{
		Position: math32.Vec3(1, 2, 3),
		Texcoord: math32.Vec2(4, 5),
		Normal:   math32.Vec3(6, 7, 8),
	}
	b := Encode([]obj.Vertex{v})
	assert.Len(t, b, VertexStride)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8}, floats(b))
}

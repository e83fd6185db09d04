// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || freebsd

// Package glgpu implements [gpu.GL] on top of OpenGL 4.1 core profile
// using github.com/go-gl/gl. Every method must be called on the thread
// that owns the current OpenGL context, after [Init].
package glgpu

import (
	"log/slog"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glmesh/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads the OpenGL function pointers for the current context.
// It must be called once a context has been made current.
func Init() error {
	if err := gl.Init(); err != nil {
		return errors.Log(err)
	}
	slog.Debug("glgpu: initialized", "version", Version())
	return nil
}

// Version returns the version string reported by the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// GL is the OpenGL implementation of [gpu.GL]. It has no state of its
// own: the zero value is ready to use once [Init] has succeeded.
type GL struct{}

var _ gpu.GL = GL{}

func (GL) GenBuffer() gpu.Handle {
	var name uint32
	gl.GenBuffers(1, &name)
	return gpu.HandleOf(name)
}

func (GL) DeleteBuffer(h gpu.Handle) {
	name := h.Uint32()
	gl.DeleteBuffers(1, &name)
}

func (GL) GenVertexArray() gpu.Handle {
	var name uint32
	gl.GenVertexArrays(1, &name)
	return gpu.HandleOf(name)
}

func (GL) DeleteVertexArray(h gpu.Handle) {
	name := h.Uint32()
	gl.DeleteVertexArrays(1, &name)
}

func (GL) BindBuffer(target gpu.BufferTarget, h gpu.Handle) {
	gl.BindBuffer(bufferTarget(target), h.Uint32())
}

func (GL) BufferData(target gpu.BufferTarget, data []byte, usage gpu.BufferUsage) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(bufferTarget(target), len(data), ptr, bufferUsage(usage))
}

func (GL) BindVertexArray(h gpu.Handle) {
	gl.BindVertexArray(h.Uint32())
}

func (GL) EnableVertexAttribArray(location uint32) {
	gl.EnableVertexAttribArray(location)
}

func (GL) VertexAttribPointer(location uint32, size int32, typ gpu.DataType, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(location, size, dataType(typ), normalized, stride, uintptr(offset))
}

func (GL) DrawArrays(mode gpu.Primitive, first, count int32) {
	gl.DrawArrays(primitive(mode), first, count)
}

func bufferTarget(t gpu.BufferTarget) uint32 {
	if t == gpu.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func bufferUsage(u gpu.BufferUsage) uint32 {
	switch u {
	case gpu.DynamicDraw:
		return gl.DYNAMIC_DRAW
	case gpu.StreamDraw:
		return gl.STREAM_DRAW
	}
	return gl.STATIC_DRAW
}

func dataType(d gpu.DataType) uint32 {
	switch d {
	case gpu.Int32:
		return gl.INT
	case gpu.Uint32:
		return gl.UNSIGNED_INT
	}
	return gl.FLOAT
}

func primitive(p gpu.Primitive) uint32 {
	switch p {
	case gpu.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case gpu.Lines:
		return gl.LINES
	case gpu.Points:
		return gl.POINTS
	}
	return gl.TRIANGLES
}

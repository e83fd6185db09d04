// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// BufferTarget is a buffer binding point.
type BufferTarget int32

const (
	// ArrayBuffer holds vertex attribute data.
	ArrayBuffer BufferTarget = iota

	// ElementArrayBuffer holds vertex indexes.
	ElementArrayBuffer
)

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "ArrayBuffer"
	case ElementArrayBuffer:
		return "ElementArrayBuffer"
	}
	return "BufferTarget(?)"
}

// BufferUsage is the expected access pattern of a buffer's data store.
type BufferUsage int32

const (
	// StaticDraw data is uploaded once and drawn many times.
	StaticDraw BufferUsage = iota

	// DynamicDraw data is modified repeatedly and drawn many times.
	DynamicDraw

	// StreamDraw data is modified once and drawn at most a few times.
	StreamDraw
)

func (u BufferUsage) String() string {
	switch u {
	case StaticDraw:
		return "StaticDraw"
	case DynamicDraw:
		return "DynamicDraw"
	case StreamDraw:
		return "StreamDraw"
	}
	return "BufferUsage(?)"
}

// DataType is the component type of a vertex attribute.
type DataType int32

const (
	// Float32 is a 32-bit IEEE 754 float.
	Float32 DataType = iota

	// Int32 is a signed 32-bit integer.
	Int32

	// Uint32 is an unsigned 32-bit integer.
	Uint32
)

func (d DataType) String() string {
	switch d {
	case Float32:
		return "Float32"
	case Int32:
		return "Int32"
	case Uint32:
		return "Uint32"
	}
	return "DataType(?)"
}

// Primitive is the kind of primitive assembled by a draw call.
type Primitive int32

const (
	// Triangles draws one triangle per three vertices.
	Triangles Primitive = iota

	// TriangleStrip draws a triangle for each vertex after the second,
	// sharing the two vertices before it.
	TriangleStrip

	// Lines draws one segment per two vertices.
	Lines

	// Points draws one point per vertex.
	Points
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "Triangles"
	case TriangleStrip:
		return "TriangleStrip"
	case Lines:
		return "Lines"
	case Points:
		return "Points"
	}
	return "Primitive(?)"
}

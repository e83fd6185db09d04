// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu defines the narrow graphics call surface used to create,
// configure, draw, and destroy GPU-resident mesh objects.
//
// The currently bound buffer and vertex array, and the current rendering
// context itself, are state owned by the graphics API. Nothing here caches
// or mirrors that state: every operation goes straight through a [GL].
// All calls must be made on the thread that owns the current context.
// See package glgpu for the OpenGL implementation and package gputest
// for a recording implementation used in tests.
package gpu

// GL is the subset of the OpenGL API needed to manage static meshes.
// Each method maps onto a single API entry point.
type GL interface {

	// GenBuffer allocates one buffer object name.
	// It returns [NoHandle] if the API could not allocate one.
	GenBuffer() Handle

	// DeleteBuffer destroys one buffer object.
	DeleteBuffer(h Handle)

	// GenVertexArray allocates one vertex array object name.
	// It returns [NoHandle] if the API could not allocate one.
	GenVertexArray() Handle

	// DeleteVertexArray destroys one vertex array object.
	DeleteVertexArray(h Handle)

	// BindBuffer binds h to the given target; [NoHandle] unbinds.
	BindBuffer(target BufferTarget, h Handle)

	// BufferData creates and initializes the data store of the
	// buffer bound to target with a copy of data.
	BufferData(target BufferTarget, data []byte, usage BufferUsage)

	// BindVertexArray makes h the active vertex array; [NoHandle] unbinds.
	BindVertexArray(h Handle)

	// EnableVertexAttribArray enables the generic attribute at location
	// in the bound vertex array.
	EnableVertexAttribArray(location uint32)

	// VertexAttribPointer describes where the attribute at location is
	// read from in the buffer currently bound to [ArrayBuffer].
	VertexAttribPointer(location uint32, size int32, typ DataType, normalized bool, stride int32, offset int)

	// DrawArrays renders count vertices starting at first from the
	// bound vertex array.
	DrawArrays(mode Primitive, first, count int32)
}

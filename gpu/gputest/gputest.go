// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a recording [gpu.GL] for tests that need
// to check which objects were created, bound, uploaded, drawn, and
// destroyed, without a real rendering context.
package gputest

import (
	"fmt"
	"slices"

	"cogentcore.org/glmesh/gpu"
)

// Kind is the kind of object a handle names.
type Kind int32

const (
	// Buffer is a buffer object.
	Buffer Kind = iota

	// VertexArray is a vertex array object.
	VertexArray
)

func (k Kind) String() string {
	if k == VertexArray {
		return "VertexArray"
	}
	return "Buffer"
}

// Object identifies one API object.
type Object struct {
	Kind   Kind
	Handle gpu.Handle
}

// Upload records one BufferData call.
type Upload struct {
	Buffer gpu.Handle
	Target gpu.BufferTarget
	Data   []byte
	Usage  gpu.BufferUsage
}

// Attrib records one VertexAttribPointer call, as captured
// by the vertex array that was bound at the time.
type Attrib struct {
	Buffer     gpu.Handle
	Size       int32
	Type       gpu.DataType
	Normalized bool
	Stride     int32
	Offset     int
	Enabled    bool
}

// Draw records one DrawArrays call.
type Draw struct {
	VertexArray gpu.Handle
	Mode        gpu.Primitive
	First       int32
	Count       int32
}

// GL is a recording implementation of [gpu.GL]. Handles are
// allocated sequentially starting at 1, as real drivers do.
// The zero value is not usable; call [New].
type GL struct {

	// FailBuffers makes GenBuffer return [gpu.NoHandle].
	FailBuffers bool

	// FailVertexArrays makes GenVertexArray return [gpu.NoHandle].
	FailVertexArrays bool

	// Created lists every object allocated, in order.
	Created []Object

	// Deleted lists every delete call, in order, including invalid ones.
	Deleted []Object

	// Misuse collects calls a real driver would reject or silently
	// ignore, such as deleting an object twice.
	Misuse []string

	// Uploads lists every BufferData call.
	Uploads []Upload

	// Draws lists every DrawArrays call.
	Draws []Draw

	// Attribs holds the attribute layout of each vertex array,
	// keyed by location.
	Attribs map[gpu.Handle]map[uint32]*Attrib

	// BoundVertexArray is the active vertex array.
	BoundVertexArray gpu.Handle

	next   uint32
	live   map[gpu.Handle]Kind
	bound  map[gpu.BufferTarget]gpu.Handle
	filled map[gpu.Handle]int
}

var _ gpu.GL = (*GL)(nil)

// New returns a new recording GL with no objects.
func New() *GL {
	return &GL{
		Attribs: make(map[gpu.Handle]map[uint32]*Attrib),
		live:    make(map[gpu.Handle]Kind),
		bound:   make(map[gpu.BufferTarget]gpu.Handle),
		filled:  make(map[gpu.Handle]int),
	}
}

func (g *GL) misuse(format string, args ...any) {
	g.Misuse = append(g.Misuse, fmt.Sprintf(format, args...))
}

func (g *GL) gen(kind Kind) gpu.Handle {
	g.next++
	h := gpu.HandleOf(g.next)
	g.live[h] = kind
	g.Created = append(g.Created, Object{kind, h})
	return h
}

func (g *GL) del(kind Kind, h gpu.Handle) {
	g.Deleted = append(g.Deleted, Object{kind, h})
	if h.IsNil() {
		g.misuse("delete %v of %v", kind, h)
		return
	}
	k, ok := g.live[h]
	if !ok || k != kind {
		g.misuse("delete %v %v which is not live", kind, h)
		return
	}
	delete(g.live, h)
	for t, b := range g.bound {
		if b == h {
			g.bound[t] = gpu.NoHandle
		}
	}
	if g.BoundVertexArray == h {
		g.BoundVertexArray = gpu.NoHandle
	}
}

func (g *GL) GenBuffer() gpu.Handle {
	if g.FailBuffers {
		return gpu.NoHandle
	}
	return g.gen(Buffer)
}

func (g *GL) DeleteBuffer(h gpu.Handle) {
	g.del(Buffer, h)
}

func (g *GL) GenVertexArray() gpu.Handle {
	if g.FailVertexArrays {
		return gpu.NoHandle
	}
	h := g.gen(VertexArray)
	g.Attribs[h] = make(map[uint32]*Attrib)
	return h
}

func (g *GL) DeleteVertexArray(h gpu.Handle) {
	g.del(VertexArray, h)
}

func (g *GL) BindBuffer(target gpu.BufferTarget, h gpu.Handle) {
	if !h.IsNil() && g.live[h] != Buffer {
		g.misuse("bind %v to %v: not a live buffer", h, target)
	}
	g.bound[target] = h
}

func (g *GL) BufferData(target gpu.BufferTarget, data []byte, usage gpu.BufferUsage) {
	h := g.bound[target]
	if h.IsNil() {
		g.misuse("BufferData with no buffer bound to %v", target)
		return
	}
	g.Uploads = append(g.Uploads, Upload{h, target, slices.Clone(data), usage})
	g.filled[h] = len(data)
}

func (g *GL) BindVertexArray(h gpu.Handle) {
	if !h.IsNil() && g.live[h] != VertexArray {
		g.misuse("bind vertex array %v: not live", h)
	}
	g.BoundVertexArray = h
}

func (g *GL) attrib(location uint32) *Attrib {
	vao := g.BoundVertexArray
	if vao.IsNil() {
		g.misuse("attribute %d set with no vertex array bound", location)
		return nil
	}
	as := g.Attribs[vao]
	at := as[location]
	if at == nil {
		at = &Attrib{}
		as[location] = at
	}
	return at
}

func (g *GL) EnableVertexAttribArray(location uint32) {
	if at := g.attrib(location); at != nil {
		at.Enabled = true
	}
}

func (g *GL) VertexAttribPointer(location uint32, size int32, typ gpu.DataType, normalized bool, stride int32, offset int) {
	at := g.attrib(location)
	if at == nil {
		return
	}
	buf := g.bound[gpu.ArrayBuffer]
	if buf.IsNil() {
		g.misuse("attribute %d set with no array buffer bound", location)
	}
	at.Buffer = buf
	at.Size = size
	at.Type = typ
	at.Normalized = normalized
	at.Stride = stride
	at.Offset = offset
}

func (g *GL) DrawArrays(mode gpu.Primitive, first, count int32) {
	if g.BoundVertexArray.IsNil() {
		g.misuse("DrawArrays with no vertex array bound")
	}
	g.Draws = append(g.Draws, Draw{g.BoundVertexArray, mode, first, count})
}

// IsLive returns whether h names a live object.
func (g *GL) IsLive(h gpu.Handle) bool {
	_, ok := g.live[h]
	return ok
}

// Live returns the number of live objects of the given kind.
func (g *GL) Live(kind Kind) int {
	n := 0
	for _, k := range g.live {
		if k == kind {
			n++
		}
	}
	return n
}

// DeleteCount returns the number of delete calls made for the given kind.
func (g *GL) DeleteCount(kind Kind) int {
	n := 0
	for _, o := range g.Deleted {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// BufferSize returns the size in bytes of the data store of buffer h.
func (g *GL) BufferSize(h gpu.Handle) int {
	return g.filled[h]
}

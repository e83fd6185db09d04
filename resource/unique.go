// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resource provides single-owner lifetime management for
// opaque resource identifiers such as graphics API object names.
package resource

// noCopy may be embedded in structs that must not be copied after
// first use; go vet's copylocks check reports any copy.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Unique is the exclusive owner of at most one handle of type H.
// It releases the handle it holds, exactly once, through the release
// function it was created with, and never calls release on the empty
// sentinel value. Ownership moves with [Unique.Move] and [Unique.Take];
// a Unique must not be copied.
//
// The zero value holds the zero H as its sentinel and releases nothing.
type Unique[H comparable] struct {
	_       noCopy
	handle  H
	none    H
	release func(H)
}

// New returns a Unique that owns h. none is the sentinel value
// meaning "no resource", and release destroys a live handle.
func New[H comparable](h, none H, release func(H)) Unique[H] {
	return Unique[H]{handle: h, none: none, release: release}
}

// Empty returns a Unique that holds no resource yet.
func Empty[H comparable](none H, release func(H)) Unique[H] {
	return Unique[H]{handle: none, none: none, release: release}
}

// Get returns the held handle without changing ownership.
// It returns the zero H for a nil Unique.
func (u *Unique[H]) Get() H {
	if u == nil {
		var zero H
		return zero
	}
	return u.handle
}

// IsNil returns whether u holds no resource.
func (u *Unique[H]) IsNil() bool {
	return u == nil || u.handle == u.none
}

// Reset releases the currently held handle, if any, and takes
// ownership of h. Resetting to the handle already held is a no-op.
func (u *Unique[H]) Reset(h H) {
	old := u.handle
	if old == h {
		return
	}
	u.handle = h
	if old != u.none && u.release != nil {
		u.release(old)
	}
}

// Detach gives up ownership of the held handle without releasing it,
// and returns it. u is left empty.
func (u *Unique[H]) Detach() H {
	h := u.handle
	u.handle = u.none
	return h
}

// Move returns a new Unique that owns the handle held by u,
// with the same sentinel and release function. u is left empty.
func (u *Unique[H]) Move() Unique[H] {
	return Unique[H]{handle: u.Detach(), none: u.none, release: u.release}
}

// Take transfers ownership of the handle held by src to u, releasing
// the handle u held before, if any, and adopts the sentinel and release
// function of src. src is left empty. Taking from u itself or from nil
// does nothing.
//
// Unlike [Unique.Reset], Take releases u's handle even when it equals
// the one held by src: two owners never share a resource, so equal
// handles name different objects.
func (u *Unique[H]) Take(src *Unique[H]) {
	if src == nil || src == u {
		return
	}
	u.Close()
	u.handle = src.Detach()
	u.none, u.release = src.none, src.release
}

// Close releases the held handle, if any, leaving u empty.
// It is safe to call more than once and on a nil Unique.
func (u *Unique[H]) Close() error {
	if u == nil {
		return nil
	}
	u.Reset(u.none)
	return nil
}

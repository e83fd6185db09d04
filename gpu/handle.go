// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "strconv"

// Handle is an opaque object name issued by the graphics API
// (a buffer, vertex array, texture, etc). The zero value is
// [NoHandle], which the API never hands out for a live object,
// so Handle can be used directly as the sentinel-carrying value
// of a [resource.Unique] owner.
type Handle uint32

// NoHandle is the reserved "no resource" handle.
const NoHandle Handle = 0

// HandleOf converts a raw API object name into a [Handle].
func HandleOf(name uint32) Handle {
	return Handle(name)
}

// IsNil returns whether h is [NoHandle].
func (h Handle) IsNil() bool {
	return h == NoHandle
}

// Uint32 returns the raw API object name, for passing to API calls.
func (h Handle) Uint32() uint32 {
	return uint32(h)
}

func (h Handle) String() string {
	if h.IsNil() {
		return "none"
	}
	return "#" + strconv.FormatUint(uint64(h), 10)
}

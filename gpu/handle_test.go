// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandle(t *testing.T) {
	assert.True(t, NoHandle.IsNil())
	assert.Equal(t, "none", NoHandle.String())

	h := HandleOf(42)
	assert.False(t, h.IsNil())
	assert.Equal(t, uint32(42), h.Uint32())
	assert.Equal(t, "#42", h.String())
	assert.Equal(t, h, HandleOf(h.Uint32()))

	var zero Handle
	assert.Equal(t, NoHandle, zero)
}

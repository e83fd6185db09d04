// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"cogentcore.org/core/math32"
)

// Vertex is one interleaved vertex record: position, texture
// coordinate, and normal, in that order.
type Vertex struct {
	Position math32.Vector3
	Texcoord math32.Vector2
	Normal   math32.Vector3
}

// NumTriangles returns the number of faces decoded.
func (dec *Decoder) NumTriangles() int {
	return len(dec.Faces)
}

// Flatten resolves every face reference against the tables and
// returns three vertices per face, in face order. Vertices shared
// between faces are duplicated, not welded. Omitted texture
// coordinates default to (0,0) and omitted normals to (0,0,0).
// An index outside its table fails with a [*FormatError] for the
// line of the face.
func (dec *Decoder) Flatten() ([]Vertex, error) {
	vtxs := make([]Vertex, 0, 3*len(dec.Faces))
	for fi := range dec.Faces {
		face := &dec.Faces[fi]
		for _, ref := range face.Refs {
			vtx, err := dec.resolve(face.Line, ref)
			if err != nil {
				return nil, err
			}
			vtxs = append(vtxs, vtx)
		}
	}
	return vtxs, nil
}

func (dec *Decoder) resolve(line int, ref Ref) (Vertex, error) {
	var vtx Vertex
	if err := checkIndex(line, ref.Position, len(dec.Positions), "position"); err != nil {
		return vtx, err
	}
	vtx.Position = dec.Positions[ref.Position-1]
	if ref.Texcoord != 0 {
		if err := checkIndex(line, ref.Texcoord, len(dec.Texcoords), "texcoord"); err != nil {
			return vtx, err
		}
		vtx.Texcoord = dec.Texcoords[ref.Texcoord-1]
	}
	if ref.Normal != 0 {
		if err := checkIndex(line, ref.Normal, len(dec.Normals), "normal"); err != nil {
			return vtx, err
		}
		vtx.Normal = dec.Normals[ref.Normal-1]
	}
	return vtx, nil
}

func checkIndex(line, idx, n int, table string) error {
	if idx < 1 || idx > n {
		return formatError(line, "%s index %d out of range: %d %s entries", table, idx, n, table)
	}
	return nil
}

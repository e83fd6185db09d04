// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj parses a strict subset of the Wavefront OBJ format
// (*.obj) into a flat, non-indexed stream of interleaved vertices.
//
// Only four directives are understood:
//
//	v  x y z            vertex position
//	vt u v              vertex texture coordinate
//	vn x y z            vertex normal
//	f  p[/t][/n] x3     triangular face
//
// Lines whose first field starts with '#' are comments. Any other
// directive (o, g, s, usemtl, mtllib, ...) is ignored. A recognized
// directive that is malformed fails the whole decode with a
// [FormatError]. Faces must be triangles and indexes must be positive
// (1-based); polygons with more vertices and relative (negative)
// indexes are rejected rather than triangulated or resolved.
package obj

import (
	"bufio"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// maxLine is the longest line accepted, in bytes.
const maxLine = 1 << 20

// Ref is one corner of a face: 1-based indexes into the
// position, texcoord, and normal tables. Texcoord and Normal
// are 0 when the reference omits them.
type Ref struct {
	Position int
	Texcoord int
	Normal   int
}

// Face is a parsed triangle, with the line it was declared on.
type Face struct {
	Refs [3]Ref
	Line int
}

// Decoder holds the tables read from one OBJ input. Face indexes are
// not checked against the tables until [Decoder.Flatten], so faces may
// refer to vertex data declared later in the file.
type Decoder struct {
	Positions []math32.Vector3
	Texcoords []math32.Vector2
	Normals   []math32.Vector3
	Faces     []Face

	// Lines is the number of lines read.
	Lines int

	// Ignored is the number of directives skipped as unsupported.
	Ignored int

	line int
}

// directives maps each supported keyword to its parser.
var directives = map[string]func(dec *Decoder, fields []string) error{
	"v":  (*Decoder).parseVertex,
	"vt": (*Decoder).parseTexcoord,
	"vn": (*Decoder).parseNormal,
	"f":  (*Decoder).parseFace,
}

// Decode reads all of r and returns the resulting tables.
// Read failures are returned as an [*IOError], content problems
// as a [*FormatError].
func Decode(r io.Reader) (*Decoder, error) {
	dec := &Decoder{}
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLine)
	for sc.Scan() {
		dec.line++
		line := sc.Text()
		if dec.line == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if err := dec.parseLine(line); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err == bufio.ErrTooLong {
		return nil, formatError(dec.line+1, "line longer than %d bytes", maxLine)
	} else if err != nil {
		return nil, &IOError{Err: err}
	}
	dec.Lines = dec.line
	if dec.Ignored > 0 {
		slog.Debug("obj: ignored unsupported directives", "count", dec.Ignored)
	}
	return dec, nil
}

// DecodeFile opens and decodes the named file.
func DecodeFile(path string) (*Decoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()
	dec, err := Decode(f)
	if ioe, ok := err.(*IOError); ok {
		ioe.Path = path
	}
	return dec, err
}

// ReadFile decodes the named file and flattens it into
// three vertices per face.
func ReadFile(path string) ([]Vertex, error) {
	dec, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return dec.Flatten()
}

func (dec *Decoder) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	parse, ok := directives[fields[0]]
	if !ok {
		dec.Ignored++
		return nil
	}
	return parse(dec, fields[1:])
}

// parseFloats parses exactly len(vals) finite decimal numbers from
// the fields of a kw directive. NaN, infinities, and hexadecimal
// floats are not numbers in OBJ files.
func (dec *Decoder) parseFloats(kw string, fields []string, vals []float32) error {
	if len(fields) != len(vals) {
		return formatError(dec.line, "'%s' needs %d values, got %d", kw, len(vals), len(fields))
	}
	for i, f := range fields {
		if strings.ContainsAny(f, "xX") {
			return formatError(dec.line, "'%s' value %q is not a number", kw, f)
		}
		v, err := strconv.ParseFloat(f, 32)
		switch {
		case errors.Is(err, strconv.ErrRange):
			return formatError(dec.line, "'%s' value %q is out of float32 range", kw, f)
		case err != nil, math.IsNaN(v), math.IsInf(v, 0):
			return formatError(dec.line, "'%s' value %q is not a number", kw, f)
		}
		vals[i] = float32(v)
	}
	return nil
}

// v <x> <y> <z>
func (dec *Decoder) parseVertex(fields []string) error {
	var v [3]float32
	if err := dec.parseFloats("v", fields, v[:]); err != nil {
		return err
	}
	dec.Positions = append(dec.Positions, math32.Vec3(v[0], v[1], v[2]))
	return nil
}

// vt <u> <v>
func (dec *Decoder) parseTexcoord(fields []string) error {
	var v [2]float32
	if err := dec.parseFloats("vt", fields, v[:]); err != nil {
		return err
	}
	dec.Texcoords = append(dec.Texcoords, math32.Vec2(v[0], v[1]))
	return nil
}

// vn <x> <y> <z>
func (dec *Decoder) parseNormal(fields []string) error {
	var v [3]float32
	if err := dec.parseFloats("vn", fields, v[:]); err != nil {
		return err
	}
	dec.Normals = append(dec.Normals, math32.Vec3(v[0], v[1], v[2]))
	return nil
}

// f v1[/vt1][/vn1] v2[/vt2][/vn2] v3[/vt3][/vn3]
func (dec *Decoder) parseFace(fields []string) error {
	if len(fields) != 3 {
		return formatError(dec.line, "face has %d vertices, only triangles are supported", len(fields))
	}
	face := Face{Line: dec.line}
	for i, f := range fields {
		ref, err := dec.parseRef(f)
		if err != nil {
			return err
		}
		face.Refs[i] = ref
	}
	dec.Faces = append(dec.Faces, face)
	return nil
}

func (dec *Decoder) parseRef(f string) (Ref, error) {
	parts := strings.Split(f, "/")
	if len(parts) > 3 {
		return Ref{}, formatError(dec.line, "face vertex %q has too many parts", f)
	}
	var ref Ref
	var err error
	if ref.Position, err = dec.parseIndex(f, parts[0], "position"); err != nil {
		return Ref{}, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if ref.Texcoord, err = dec.parseIndex(f, parts[1], "texcoord"); err != nil {
			return Ref{}, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if ref.Normal, err = dec.parseIndex(f, parts[2], "normal"); err != nil {
			return Ref{}, err
		}
	}
	return ref, nil
}

func (dec *Decoder) parseIndex(f, s, table string) (int, error) {
	if s == "" {
		return 0, formatError(dec.line, "face vertex %q has no %s index", f, table)
	}
	idx, err := strconv.Atoi(s)
	switch {
	case err != nil:
		return 0, formatError(dec.line, "face vertex %q: %s index %q is not an integer", f, table, s)
	case idx < 0:
		return 0, formatError(dec.line, "face vertex %q: relative %s index %d is not supported", f, table, idx)
	case idx == 0:
		return 0, formatError(dec.line, "face vertex %q: %s index 0 is invalid (indexes start at 1)", f, table)
	}
	return idx, nil
}

// Bounds returns the bounding box of all positions.
// It is empty if there are none.
func (dec *Decoder) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for _, p := range dec.Positions {
		bb.ExpandByPoint(p)
	}
	return bb
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/glmesh/mesh"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// vertexShader spins the mesh around the y axis and fits its
// bounding box into the view. Attribute locations match [mesh.Layout].
var vertexShader = fmt.Sprintf(`#version 410 core
layout(location = %d) in vec3 position;
layout(location = %d) in vec2 texcoord;
layout(location = %d) in vec3 normal;

uniform vec3 center;
uniform float scale;
uniform float angle;
uniform float aspect;

out vec3 vnormal;
out vec2 vtexcoord;

void main() {
	float c = cos(angle);
	float s = sin(angle);
	mat3 rot = mat3(c, 0, -s, 0, 1, 0, s, 0, c);
	vec3 p = rot * ((position - center) * scale);
	gl_Position = vec4(p.x / aspect, p.y, p.z * 0.5, 1.0);
	vnormal = rot * normal;
	vtexcoord = texcoord;
}
`, mesh.AttribPosition, mesh.AttribTexcoord, mesh.AttribNormal)

// fragmentShader uses a headlight; faces without normals are drawn
// in a flat color tinted by their texture coordinates.
const fragmentShader = `#version 410 core
in vec3 vnormal;
in vec2 vtexcoord;
out vec4 color;

void main() {
	vec3 base = vec3(0.55 + 0.3 * vtexcoord, 0.7);
	if (dot(vnormal, vnormal) == 0.0) {
		color = vec4(base, 1.0);
		return;
	}
	float d = abs(normalize(vnormal).z);
	color = vec4(base * (0.25 + 0.75 * d), 1.0);
}
`

// program is the shader program used to view meshes.
type program struct {
	handle uint32
	center int32
	scale  int32
	angle  int32
	aspect int32
}

func newProgram() (*program, error) {
	vs, err := compileShader(vertexShader+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fragmentShader+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	pg := &program{handle: gl.CreateProgram()}
	gl.AttachShader(pg.handle, vs)
	gl.AttachShader(pg.handle, fs)
	gl.LinkProgram(pg.handle)
	var status int32
	gl.GetProgramiv(pg.handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(pg.handle, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(pg.handle)
		return nil, fmt.Errorf("meshview: failed to link program: %v", log)
	}
	pg.center = gl.GetUniformLocation(pg.handle, gl.Str("center\x00"))
	pg.scale = gl.GetUniformLocation(pg.handle, gl.Str("scale\x00"))
	pg.angle = gl.GetUniformLocation(pg.handle, gl.Str("angle\x00"))
	pg.aspect = gl.GetUniformLocation(pg.handle, gl.Str("aspect\x00"))
	return pg, nil
}

func compileShader(src string, typ uint32) (uint32, error) {
	sh := gl.CreateShader(typ)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("meshview: failed to compile shader: %v", log)
	}
	return sh, nil
}

func infoLog(obj uint32, getiv func(uint32, uint32, *int32), getlog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(obj, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	getlog(obj, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// render clears the framebuffer and sets up the program for
// drawing a mesh with the given bounds at time t (seconds).
func (pg *program) render(width, height int, bounds math32.Box3, t float32) {
	if height <= 0 {
		height = 1
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0.12, 0.12, 0.14, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	var center math32.Vector3
	scale := float32(1)
	if !bounds.IsEmpty() {
		center = bounds.Center()
		if size := bounds.Size().Length(); size > 0 {
			scale = 1.6 / size
		}
	}
	gl.UseProgram(pg.handle)
	gl.Uniform3f(pg.center, center.X, center.Y, center.Z)
	gl.Uniform1f(pg.scale, scale)
	gl.Uniform1f(pg.angle, 0.5*t)
	gl.Uniform1f(pg.aspect, float32(width)/float32(height))
}

func (pg *program) delete() {
	gl.DeleteProgram(pg.handle)
}

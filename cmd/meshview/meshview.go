// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command meshview loads Wavefront OBJ meshes and either displays
// them in a window or prints statistics about them.
package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/glmesh/gpu/glgpu"
	"cogentcore.org/glmesh/mesh"
	"cogentcore.org/glmesh/obj"
	"cogentcore.org/glmesh/obj/objwatch"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GL calls must all happen on the thread that owns the context
	runtime.LockOSThread()
}

// Config is the configuration information for the meshview cli.
type Config struct {

	// Mesh is the OBJ file to load.
	Mesh string `posarg:"0"`

	// Width is the initial window width in pixels.
	Width int `default:"800"`

	// Height is the initial window height in pixels.
	Height int `default:"600"`

	// Watch reloads the mesh whenever the file changes on disk.
	Watch bool `cmd:"view" flag:"w,watch"`

	// Debug turns on debug logging.
	Debug bool `flag:"debug"`
}

func main() {
	opts := cli.DefaultOptions("meshview", "Meshview displays and inspects Wavefront OBJ triangle meshes.")
	cli.Run(opts, &Config{}, &cli.Cmd[*Config]{
		Func: View,
		Name: "view",
		Doc:  "View opens a window and draws the mesh, slowly rotating.",
		Root: true,
	}, &cli.Cmd[*Config]{
		Func: Info,
		Name: "info",
		Doc:  "Info prints statistics about the mesh without opening a window.",
	})
}

func setup(c *Config) error {
	if c.Debug {
		logx.UserLevel = slog.LevelDebug
	}
	if c.Mesh == "" {
		return errors.New("meshview: no mesh file given")
	}
	if !errors.Log1(fsx.FileExists(c.Mesh)) {
		return fmt.Errorf("meshview: %s does not exist", c.Mesh)
	}
	return nil
}

// View opens a window and draws the mesh, slowly rotating.
func View(c *Config) error {
	if err := setup(c); err != nil {
		return err
	}
	// parse before opening the window, so that bad files fail fast
	ld, err := objwatch.Load(c.Mesh)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return errors.Log(err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(c.Width, c.Height, "meshview: "+filepath.Base(c.Mesh), nil, nil)
	if err != nil {
		return errors.Log(err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	if err := glgpu.Init(); err != nil {
		return err
	}

	gl := glgpu.GL{}
	ms, err := mesh.Upload(gl, ld.Vertices)
	if err != nil {
		return errors.Log(err)
	}
	defer ms.Close()
	pg, err := newProgram()
	if err != nil {
		return errors.Log(err)
	}
	defer pg.delete()

	// parsed meshes arrive from the watcher goroutine and are
	// uploaded here, on the context thread
	var reloads <-chan *objwatch.Mesh
	if c.Watch {
		w, err := objwatch.Watch(c.Mesh)
		if err != nil {
			return err
		}
		defer w.Close()
		reloads = w.Loads()
	}

	bounds := ld.Bounds
	for !win.ShouldClose() {
		select {
		case ld := <-reloads:
			nm, err := mesh.Upload(gl, ld.Vertices)
			if errors.Log(err) == nil {
				ms.Take(nm)
				bounds = ld.Bounds
				slog.Info("meshview: reloaded", "path", c.Mesh, "triangles", ms.NumTriangles)
			}
		default:
		}
		w, h := win.GetFramebufferSize()
		pg.render(w, h, bounds, float32(glfw.GetTime()))
		mesh.Draw(gl, ms)
		win.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// Info prints statistics about the mesh without opening a window.
func Info(c *Config) error {
	if err := setup(c); err != nil {
		return err
	}
	dec, err := obj.DecodeFile(c.Mesh)
	if err != nil {
		return err
	}
	vtxs, err := dec.Flatten()
	if err != nil {
		return err
	}
	bb := dec.Bounds()
	fmt.Printf("file:       %s\n", c.Mesh)
	fmt.Printf("lines:      %d (%d unsupported directives ignored)\n", dec.Lines, dec.Ignored)
	fmt.Printf("positions:  %d\n", len(dec.Positions))
	fmt.Printf("texcoords:  %d\n", len(dec.Texcoords))
	fmt.Printf("normals:    %d\n", len(dec.Normals))
	fmt.Printf("triangles:  %d\n", dec.NumTriangles())
	fmt.Printf("vertices:   %d (%d bytes)\n", len(vtxs), len(vtxs)*mesh.VertexStride)
	if !bb.IsEmpty() {
		fmt.Printf("bounds:     %v - %v\n", bb.Min, bb.Max)
	}
	return nil
}

package main

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-logr/logr"
	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/textedit"
	"github.com/go-theft-auto/textedit/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "textedit example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func runGLFW(cfg textedit.Config, logger logr.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fw, fh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fw, fh)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	face := basicfont.Face7x13
	atlas := textedit.NewGlyphAtlas(face)
	if err := renderer.UploadAtlas(atlas); err != nil {
		return err
	}

	input := opengl.NewGLFWInputAdapter(window)
	style, err := cfg.Theme.Style(textedit.GTAStyle())
	if err != nil {
		return err
	}

	host := textedit.NewHost(
		textedit.WithStyle(style),
		textedit.WithRenderer(renderer, atlas),
		textedit.WithHostLogger(logger),
		textedit.WithTextInputHandler(input.SetTextInput),
	)
	host.Add(buildEditors(cfg, logger, keepGeometry,
		textedit.WithMetrics(textedit.NewFaceMetrics(face)),
		textedit.WithClipboard(opengl.NewGLFWClipboard(window)),
	)...)
	host.SetScale(cfg.Scale * input.ContentScale())

	for !window.ShouldClose() {
		glfw.PollEvents()
		host.DispatchAll(input.Drain())

		w, h := window.GetFramebufferSize()
		host.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := host.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func keepGeometry(ec textedit.EditorConfig) textedit.EditorConfig { return ec }

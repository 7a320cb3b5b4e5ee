// Command gen renders editors in typical states, captures framebuffer pixels,
// and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/textedit"
	"github.com/go-theft-auto/textedit/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single editor screenshot to capture.
type screenshot struct {
	name   string // filename without extension
	width  int    // viewport width
	height int    // viewport height
	setup  func(metrics textedit.MetricsProvider) []*textedit.Editor
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	face := basicfont.Face7x13
	atlas := textedit.NewGlyphAtlas(face)
	if err := renderer.UploadAtlas(atlas); err != nil {
		return err
	}
	metrics := textedit.NewFaceMetrics(face)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		host := textedit.NewHost(
			textedit.WithStyle(textedit.GTAStyle()),
			textedit.WithRenderer(renderer, atlas),
		)
		host.Add(s.setup(metrics)...)
		if err := capture(renderer, host, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, host *textedit.Host, s screenshot, outDir string) error {
	// The hidden window stays at 800x600, larger than every screenshot; only
	// the projection changes.
	renderer.Resize(s.width, s.height)

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := host.Render(); err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// OpenGL rows start at the bottom
	rowLen := s.width * 4
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		src := (s.height - 1 - y) * rowLen
		copy(img.Pix[y*img.Stride:], pixels[src:src+rowLen])
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

const lorem = "The quick brown fox jumps over the lazy dog. " +
	"Pack my box with five dozen liquor jugs.\n\nHow vexingly quick daft zebras jump!"

func buildScreenshots() []screenshot {
	opts := func(m textedit.MetricsProvider, extra ...textedit.EditorOption) []textedit.EditorOption {
		return append([]textedit.EditorOption{textedit.WithMetrics(m)}, extra...)
	}

	return []screenshot{
		{
			name: "single_placeholder", width: 320, height: 40,
			setup: func(m textedit.MetricsProvider) []*textedit.Editor {
				return []*textedit.Editor{
					textedit.NewEditor(textedit.Rect{X: 10, Y: 10, W: 300}, opts(m, textedit.WithPlaceholder("Player name"))...),
				}
			},
		},
		{
			name: "single_selection", width: 320, height: 40,
			setup: func(m textedit.MetricsProvider) []*textedit.Editor {
				e := textedit.NewEditor(textedit.Rect{X: 10, Y: 10, W: 300}, opts(m, textedit.WithText("Grove Street Families"))...)
				e.SetActive(true)
				e.Select(6, 12)
				return []*textedit.Editor{e}
			},
		},
		{
			name: "single_scrolled", width: 200, height: 40,
			setup: func(m textedit.MetricsProvider) []*textedit.Editor {
				e := textedit.NewEditor(textedit.Rect{X: 10, Y: 10, W: 180}, opts(m, textedit.WithText(lorem))...)
				e.SetActive(true)
				return []*textedit.Editor{e}
			},
		},
		{
			name: "multi_wrapped", width: 320, height: 160,
			setup: func(m textedit.MetricsProvider) []*textedit.Editor {
				e := textedit.NewEditor(textedit.Rect{X: 10, Y: 10, W: 300, H: 140},
					opts(m, textedit.WithMultiline(), textedit.WithText(lorem))...)
				e.SetActive(true)
				e.Select(10, 60)
				return []*textedit.Editor{e}
			},
		},
	}
}

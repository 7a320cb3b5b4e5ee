package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/textedit"
)

func TestGLFWKeyToKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want textedit.Key
	}{
		{glfw.KeyLeft, textedit.KeyLeft},
		{glfw.KeyDown, textedit.KeyDown},
		{glfw.KeyEnter, textedit.KeyEnter},
		{glfw.KeyKPEnter, textedit.KeyEnter},
		{glfw.KeyV, textedit.KeyV},
		{glfw.KeyF5, textedit.KeyNone},
	}
	for _, tt := range tests {
		if got := glfwKeyToKey(tt.in); got != tt.want {
			t.Errorf("glfwKeyToKey(%d) = %s, want %s", tt.in, textedit.KeyName(got), textedit.KeyName(tt.want))
		}
	}
}

func TestConvertMods(t *testing.T) {
	got := convertMods(glfw.ModControl | glfw.ModShift)
	if !got.Has(textedit.ModCtrl | textedit.ModShift) {
		t.Errorf("convertMods = %04b", got)
	}
	if got.Has(textedit.ModAlt) {
		t.Error("alt reported without ModAlt")
	}
}

func TestGLFWMouseButtonToButton(t *testing.T) {
	if got := glfwMouseButtonToButton(glfw.MouseButtonRight); got != textedit.MouseButtonRight {
		t.Errorf("right button = %d", got)
	}
	if got := glfwMouseButtonToButton(glfw.MouseButton4); got >= 0 {
		t.Errorf("extra button mapped to %d", got)
	}
}

func TestOrthoMatrix(t *testing.T) {
	m := orthoMatrix(0, 800, 600, 0, -1, 1)
	if m[0] != 2.0/800 || m[5] != -2.0/600 {
		t.Errorf("scale terms = %v, %v", m[0], m[5])
	}
	if m[12] != -1 || m[13] != 1 {
		t.Errorf("translation = %v, %v", m[12], m[13])
	}
}

func TestScissorRect(t *testing.T) {
	tests := []struct {
		name       string
		clip       [4]float32
		x, y, w, h int32
		ok         bool
	}{
		{"inside", [4]float32{10, 20, 110, 70}, 10, 530, 100, 50, true},
		{"clamped to framebuffer", [4]float32{-10, -10, 900, 700}, 0, 0, 800, 600, true},
		{"off screen", [4]float32{810, 0, 900, 10}, 0, 0, 0, 0, false},
		{"empty", [4]float32{5, 5, 5, 50}, 0, 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h, ok := scissorRect(tt.clip, 800, 600)
			if ok != tt.ok || x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("scissorRect(%v) = %d,%d %dx%d %v; want %d,%d %dx%d %v",
					tt.clip, x, y, w, h, ok, tt.x, tt.y, tt.w, tt.h, tt.ok)
			}
		})
	}
}

/*
Package textedit provides an embeddable text-editing engine for games and
tools: single-line and multi-line editors with a rune buffer, selection,
word wrapping, scrolling and a backend-neutral render model.

# Overview

An Editor owns its text, cursor, selection and scroll position. Hosts feed
it Events (pointer, text input, key and clipboard commands) and read back a
RenderModel describing what is visible: lines of text with their positions,
selection rectangles and the cursor. The model is in device pixels so any
backend can paint it; this module ships an OpenGL renderer (backend/opengl)
and a tcell terminal backend (backend/terminal).

Text widths come from a MetricsProvider. MonospaceMetrics is a fixed-width
default, FaceMetrics measures golang.org/x/image font faces and CellMetrics
measures terminal cells.

A Host groups editors, keeps at most one of them focused, routes events and
turns editors into a DrawList for a Renderer.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1920, 1080)
	atlas := textedit.NewGlyphAtlas(basicfont.Face7x13)
	renderer.UploadAtlas(atlas)

	host := textedit.NewHost(
	    textedit.WithStyle(textedit.GTAStyle()),
	    textedit.WithRenderer(renderer, atlas),
	)
	name := textedit.NewEditor(textedit.Rect{X: 20, Y: 20, W: 300},
	    textedit.WithPlaceholder("Player name"),
	    textedit.WithMaxLength(24),
	    textedit.WithOnCommit(func(s string) { player.SetName(s) }),
	)
	host.Add(name)

	// Game loop
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    host.DispatchAll(input.Drain())
	    host.Render()
	    window.SwapBuffers()
	}

# Keyboard Shortcuts Reference

Navigation:

	Left Arrow       Move cursor one character left
	Right Arrow      Move cursor one character right
	Ctrl+Left        Move cursor one word left
	Ctrl+Right       Move cursor one word right
	Up / Down        Move cursor one visual line (multi-line)
	Page Up / Down   Move cursor one screen of lines (multi-line)
	Home             Jump to start of visual line
	End              Jump to end of visual line
	Ctrl+Home        Jump to start of text
	Ctrl+End         Jump to end of text

In single-line editors Home and End jump to the start and end of the text.

Selection:

	Shift+<motion>   Extend selection with any of the motions above
	Ctrl+A           Select all text
	Click+Drag       Select with the mouse
	Shift+Click      Extend selection to the clicked position

Clipboard Operations:

	Ctrl+C           Copy selected text to clipboard
	Ctrl+X           Cut selected text to clipboard
	Ctrl+V           Paste from clipboard

On macOS Cmd works in place of Ctrl.

Control:

	Enter            Commit and unfocus (single-line), new line (multi-line)
	Escape           Unfocus without committing
	Backspace        Delete character before cursor (or delete selection)
	Delete           Delete character after cursor (or delete selection)
	Ctrl+Backspace   Delete word before cursor
	Ctrl+Delete      Delete word after cursor

Host:

	Tab              Focus next editor
	Shift+Tab        Focus previous editor
*/
package textedit

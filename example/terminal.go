package main

import (
	"errors"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"golang.org/x/term"

	"github.com/go-theft-auto/textedit"
	"github.com/go-theft-auto/textedit/backend/terminal"
)

// Config geometry is in pixels; the terminal backend maps it onto cells of
// this size.
const (
	cellWidth  = 8
	cellHeight = 16
)

func runTerminal(cfg textedit.Config, logger logr.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("terminal backend needs a terminal on stdout")
	}

	t, err := terminal.Open()
	if err != nil {
		return err
	}
	defer t.Close()

	style, err := cfg.Theme.Style(textedit.DefaultStyle())
	if err != nil {
		return err
	}
	host := textedit.NewHost(
		textedit.WithStyle(style),
		textedit.WithHostLogger(logger),
		textedit.WithTextInputHandler(t.SetTextInput),
	)
	host.Add(buildEditors(cfg, logger, toCells,
		textedit.WithMetrics(textedit.CellMetrics{}),
		textedit.WithPadding(0),
	)...)

	screen := t.Screen()
	for {
		screen.Clear()
		t.Draw(host)
		screen.Show()

		ev := screen.PollEvent()
		switch e := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			continue
		case *tcell.EventKey:
			// Ctrl+Q quits; Escape with nothing focused too.
			if e.Key() == tcell.KeyCtrlQ || (e.Key() == tcell.KeyEscape && host.Focused() == nil) {
				return nil
			}
		}
		host.DispatchAll(t.ConvertEvent(ev))
	}
}

func toCells(ec textedit.EditorConfig) textedit.EditorConfig {
	ec.X /= cellWidth
	ec.Y /= cellHeight
	ec.Width /= cellWidth
	ec.Height /= cellHeight
	ec.Padding = 0
	return ec
}

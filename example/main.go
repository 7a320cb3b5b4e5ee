// Example opens a few text editors described by a TOML config, either in a
// GLFW window or in the terminal.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # GLFW window
//	go run ./example/ -backend terminal -config example/editors.toml -v 1 -log /tmp/textedit.log
//
// Click an editor or press Tab to focus it. Return in a single-line editor
// commits its text to the log; Escape drops focus.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/go-theft-auto/textedit"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	backend := flag.String("backend", "glfw", "glfw or terminal")
	configPath := flag.String("config", "", "TOML file describing the editors (default: built-in)")
	verbosity := flag.Int("v", 0, "log verbosity (1: focus and rejected edits, 2: every event)")
	logPath := flag.String("log", "", "log file (default: stderr for glfw, discarded for terminal)")
	flag.Parse()

	cfg := textedit.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = textedit.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	logger, closeLog, err := newLogger(*logPath, *backend == "terminal", *verbosity)
	if err != nil {
		return err
	}
	defer closeLog()

	switch *backend {
	case "glfw":
		return runGLFW(cfg, logger)
	case "terminal":
		return runTerminal(cfg, logger)
	default:
		return fmt.Errorf("unknown backend %q", *backend)
	}
}

func newLogger(path string, quiet bool, verbosity int) (logr.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return logr.Discard(), closeFn, fmt.Errorf("open log: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case quiet:
		return logr.Discard(), closeFn, nil
	}
	stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(out, "textedit ", log.LstdFlags)), closeFn, nil
}

// buildEditors creates one editor per config entry. extra options are
// applied before the config's own.
func buildEditors(cfg textedit.Config, logger logr.Logger, geometry func(textedit.EditorConfig) textedit.EditorConfig, extra ...textedit.EditorOption) []*textedit.Editor {
	editors := make([]*textedit.Editor, 0, len(cfg.Editors))
	for i, ec := range cfg.Editors {
		ec = geometry(ec)
		name := ec.Name
		if name == "" {
			name = fmt.Sprintf("editor%d", i)
		}
		l := logger.WithValues("editor", name)
		opts := append([]textedit.EditorOption{
			textedit.WithLogger(l),
			textedit.WithOnCommit(func(text string) {
				l.Info("committed", "text", text)
			}),
		}, extra...)
		editors = append(editors, textedit.NewEditor(ec.Bounds(), ec.Options(opts...)...))
	}
	return editors
}

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"termbrot/internal/config"
	"termbrot/internal/termsize"
	"termbrot/internal/tui"
)

// logEnv names a file to log to while the terminal is taken by the UI.
const logEnv = "TERMBROT_LOG"

func main() {
	if err := run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("termbrot: %v", err)
	}
}

func run() error {
	if p := os.Getenv(logEnv); p != "" {
		f, err := tea.LogToFile(p, "termbrot")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	path := config.Path()
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	vp, err := termsize.Viewport(termsize.Stdout, cfg.Margin)
	if err != nil {
		log.Printf("terminal size unavailable, using %s: %v", vp, err)
	}

	m, err := tui.New(cfg, vp)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())

	if path != "" {
		w, err := config.Watch(path, func(cfg config.Config, err error) {
			p.Send(tui.ConfigMsg{Config: cfg, Err: err})
		})
		if err != nil {
			log.Printf("config hot reload disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(tui.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

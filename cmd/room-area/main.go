package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/room-area/internal/app"
	"github.com/treykane/room-area/internal/config"
	"github.com/treykane/room-area/internal/logging"
	"github.com/treykane/room-area/internal/store"
)

func main() {
	log := logging.New("main")

	cfg, err := config.LoadOrInit()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	log.Debug("using store", "path", cfg.StorePath)

	m := app.New(cfg, store.NewAdapter(store.NewFileKV(cfg.StorePath)))
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

package main

import (
	"github.com/Garsondee/Tank-Duel/internal/config"
	"github.com/Garsondee/Tank-Duel/internal/game"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	s, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load settings", "error", err)
	}

	var layouts []game.Layout
	if s.LayoutsPath != "" {
		specs, err := config.LoadLayouts(s.LayoutsPath)
		if err != nil {
			log.Fatal("Failed to load layouts", "error", err)
		}
		for _, l := range specs {
			layouts = append(layouts, game.RelativeLayout(l.Fractions()))
		}
		log.Info("Loaded custom layouts", "path", s.LayoutsPath, "count", len(layouts))
	}

	g := game.New(game.Options{
		Width:     s.Width,
		Height:    s.Height,
		Players:   s.Players,
		Touch:     s.Touch,
		Seed:      s.Seed,
		DebugPath: s.DebugPath,
		ShowLog:   s.ShowLog,
		Layouts:   layouts,
	})
	log.Info("Starting Tank Duel", "size", []int{s.Width, s.Height}, "players", s.Players, "touch", s.Touch)

	ebiten.SetWindowTitle("Tank Duel")
	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("Game loop exited", "error", err)
	}
}

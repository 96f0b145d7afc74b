// Command pasteboard opens a whiteboard window. Paste images with Ctrl+V,
// arrange them with the mouse and save the board, or a marquee region of
// it, as a PNG.
package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pasteboard"
	"github.com/phanxgames/pasteboard/internal/config"
	"github.com/phanxgames/pasteboard/shell"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()})))

	board := pasteboard.NewBoard(pasteboard.Options{
		Logger:               slog.Default().With("component", "board"),
		CommitEachResizeStep: cfg.CommitEachResizeStep,
		PinClampedEdges:      cfg.PinClampedEdges,
	})

	clip, err := newSystemClipboard()
	if err != nil {
		slog.Warn("system clipboard unavailable, paste disabled", "error", err)
	}

	game := shell.New(board, shell.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		ExportDir: cfg.ExportDir,
		Clipboard: clip,
		Logger:    slog.Default().With("component", "shell"),
	})

	if cfg.Script != "" {
		runner, err := shell.LoadScriptFile(cfg.Script)
		if err != nil {
			slog.Error("load script", "path", cfg.Script, "error", err)
			os.Exit(1)
		}
		game.SetScript(runner)
		slog.Info("replaying script", "path", cfg.Script)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	slog.Info("starting", "width", cfg.Width, "height", cfg.Height, "exports", cfg.ExportDir)
	if err := ebiten.RunGame(game); err != nil {
		slog.Error("run", "error", err)
		os.Exit(1)
	}
}

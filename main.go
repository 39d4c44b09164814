// Chessboard - a two-player chess board built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/ui"
)

func main() {
	dataDir := flag.String("data-dir", "", "directory for the game database (default: per-user data dir)")
	boardSize := flag.Int("board-size", board.DefaultSurface, "board edge in logical pixels")
	noStorage := flag.Bool("no-storage", false, "do not load or save preferences, statistics or games")
	flag.Parse()

	ui.SetBoardSize(*boardSize)

	game, err := ui.NewGame(ui.Options{
		DataDir:   *dataDir,
		NoStorage: *noStorage,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Chessboard")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// Package ui is the Ebitengine front end: it draws the board and panel,
// turns mouse input into game actions and reacts to game events with
// sounds, toasts and persisted statistics.
package ui

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/game"
	"github.com/hailam/chessboard/internal/storage"
)

// PanelWidth is the width of the side panel in logical pixels.
const PanelWidth = 320

// MinBoardSize is the smallest accepted board edge.
const MinBoardSize = 320

// Window geometry in logical pixels. Set before NewGame via SetBoardSize.
var (
	BoardSize    = int(board.DefaultSurface)
	SquareSize   = BoardSize / board.Size
	ScreenWidth  = BoardSize + PanelWidth
	ScreenHeight = BoardSize
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by widgets and modals.
var UIScale float64 = 1.0

// SetBoardSize changes the board edge. Values below MinBoardSize are raised
// to it and the edge is rounded down to a whole number of cells.
func SetBoardSize(px int) {
	if px < MinBoardSize {
		px = MinBoardSize
	}
	px -= px % board.Size
	BoardSize = px
	SquareSize = px / board.Size
	ScreenWidth = px + PanelWidth
	ScreenHeight = px
}

// Options configures NewGame.
type Options struct {
	// DataDir overrides the database directory.
	DataDir string
	// NoStorage runs without persistence.
	NoStorage bool
}

// Game implements ebiten.Game interface.
type Game struct {
	match *game.Game

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences
	stats   *storage.GameStats

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager

	// Modals
	settingsModal *SettingsModal
	promotion     *PromotionPicker

	// Turn bookkeeping between SelectOrAct and the next frame
	captured    CapturedTrays
	lastCapture bool
	castling    bool
	turnEnded   bool

	startedAt  time.Time
	gameResult string

	// HiDPI scaling
	scale float64
}

// NewGame creates the window state and opens storage. A storage failure is
// logged and the game runs without persistence.
func NewGame(opts Options) (*Game, error) {
	g := &Game{
		renderer:  NewRenderer(SquareSize),
		input:     NewInputHandler(),
		feedback:  NewFeedbackManager(),
		startedAt: time.Now(),
		scale:     1.0,
	}

	match, err := game.New(float64(BoardSize), float64(BoardSize), g.handlers())
	if err != nil {
		return nil, err
	}
	g.match = match

	if !opts.NoStorage {
		g.storage, err = storage.NewStorage(opts.DataDir)
		if err != nil {
			log.Printf("Warning: Failed to initialize storage: %v", err)
			g.storage = nil
		}
	}

	g.loadPreferences()
	g.loadStats()

	g.panel = NewPanel(g)
	g.settingsModal = NewSettingsModal()
	g.promotion = NewPromotionPicker(g.choosePromotion)

	g.resumeSavedGame()
	return g, nil
}

func (g *Game) handlers() game.Handlers {
	return game.Handlers{
		OnSideChanged:     g.onSideChanged,
		OnCapture:         g.onCapture,
		OnGameEnd:         g.onGameEnd,
		OnPromotionNeeded: g.onPromotionNeeded,
	}
}

func (g *Game) onSideChanged(board.Side) {
	g.turnEnded = true
}

func (g *Game) onCapture(captured, by board.Piece) {
	g.captured.Add(captured, by)
	g.lastCapture = true
	log.Printf("[GAME] %v lost a %v", captured.Side, captured.Kind)
}

func (g *Game) onGameEnd(winner board.Side) {
	g.gameResult = winner.String() + " wins by checkmate"
	g.feedback.OnCheckmate(winner)
	g.recordResult(winner)
	if g.storage != nil {
		if err := g.storage.ClearGame(); err != nil {
			log.Printf("Warning: Failed to clear saved game: %v", err)
		}
	}
}

func (g *Game) onPromotionNeeded(req game.PromotionRequest) {
	g.promotion.Show(req)
}

// choosePromotion completes a suspended turn with the picked kind.
func (g *Game) choosePromotion(kind board.Kind) {
	req, ok := g.match.PendingPromotion()
	if !ok {
		return
	}
	if err := g.match.ResumeWithPromotion(kind); err != nil {
		log.Printf("Warning: Promotion to %v rejected: %v", kind, err)
		g.promotion.Show(req)
		return
	}
	g.feedback.OnPromotion(req.Cell, kind)
	g.afterInput()
}

// recordResult stores a finished or abandoned game in the statistics.
func (g *Game) recordResult(winner board.Side) {
	result := storage.GameResult{
		Winner:   winner,
		Plies:    g.match.Ply(),
		Duration: time.Since(g.startedAt),
	}
	if g.storage == nil {
		applyResult(g.stats, result)
		return
	}
	if err := g.storage.RecordGame(result); err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
		return
	}
	g.loadStats()
}

// applyResult updates in-memory statistics when there is no database.
func applyResult(stats *storage.GameStats, result storage.GameResult) {
	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration
	if result.Plies > stats.LongestGame {
		stats.LongestGame = result.Plies
	}
	switch result.Winner {
	case board.White:
		stats.WhiteWins++
	case board.Black:
		stats.BlackWins++
	default:
		stats.Abandoned++
	}
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	g.prefs = storage.DefaultPreferences()
	if g.storage != nil {
		prefs, err := g.storage.LoadPreferences()
		if err != nil {
			log.Printf("Warning: Failed to load preferences: %v", err)
		} else {
			g.prefs = prefs
		}
	}
	g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

func (g *Game) loadStats() {
	if g.storage == nil {
		if g.stats == nil {
			g.stats = storage.NewGameStats()
		}
		return
	}
	stats, err := g.storage.LoadStats()
	if err != nil {
		log.Printf("Warning: Failed to load stats: %v", err)
		stats = storage.NewGameStats()
	}
	g.stats = stats
}

// resumeSavedGame restores an unfinished game from the last session.
func (g *Game) resumeSavedGame() {
	if g.storage == nil {
		return
	}
	snap, err := g.storage.LoadGame()
	if errors.Is(err, storage.ErrNoSavedGame) {
		return
	}
	if err != nil {
		log.Printf("Warning: Failed to load saved game: %v", err)
		return
	}
	if err := g.match.Restore(snap); err != nil {
		log.Printf("Warning: Discarding saved game: %v", err)
		if err := g.storage.ClearGame(); err != nil {
			log.Printf("Warning: Failed to clear saved game: %v", err)
		}
		return
	}

	g.captured = capturedFromBoard(g.match.Board())
	log.Printf("[GAME] Resumed saved game at ply %d, %v to move", g.match.Ply(), g.match.SideToMove())
	g.feedback.OnResumed()
}

// saveGame stores the game in progress so it survives a restart.
func (g *Game) saveGame() {
	if g.storage == nil || g.match.IsOver() {
		return
	}
	if err := g.storage.SaveGame(g.match.Snapshot()); err != nil {
		log.Printf("Warning: Failed to save game: %v", err)
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	// Promotion picker blocks everything else until a choice is made
	if g.promotion.IsVisible() {
		g.promotion.Update(g.input)
		g.updateCursor()
		return nil
	}

	if g.settingsModal.IsVisible() {
		g.settingsModal.Update(g.input)
		g.updateCursor()
		return nil
	}

	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	if IsKeyJustPressed(ebiten.KeyR) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		g.RestartAction()
	}

	g.handleBoardInput()
	g.updateCursor()
	return nil
}

// handleBoardInput forwards a click on the board to the match.
func (g *Game) handleBoardInput() {
	if !g.input.IsLeftJustPressed() {
		return
	}
	mx, my := g.input.MousePosition()
	pos, ok := g.match.Board().CellAt(float64(mx), float64(my))
	if !ok || g.match.IsOver() {
		return
	}

	piece := g.match.Board().PieceAt(pos)
	if !piece.IsNone() && piece.Side != g.match.SideToMove() && !g.match.LegalMoves().Allows(pos) {
		g.feedback.OnNotYourTurn(pos, g.match.SideToMove())
	}

	g.castling = containsPos(g.match.Highlights().Castlings, pos)
	g.lastCapture = false
	g.turnEnded = false

	g.match.SelectOrAct(float64(mx), float64(my))
	if g.lastCapture {
		g.feedback.OnCapture(pos)
	}

	if !g.promotion.IsVisible() {
		g.afterInput()
	}
}

// afterInput reacts to a completed turn once the match has re-evaluated check.
func (g *Game) afterInput() {
	if !g.turnEnded {
		return
	}
	g.turnEnded = false

	capture, castling := g.lastCapture, g.castling
	g.castling = false
	g.lastCapture = false

	// checkmate has already announced itself
	if g.match.IsOver() {
		return
	}
	g.feedback.OnMoveMade(capture, castling)
	if king := g.match.Highlights().Checked; king.IsValid() {
		g.feedback.OnCheck(king)
	}
	g.saveGame()
}

func containsPos(ps []board.Pos, p board.Pos) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	var anyHovered bool
	switch {
	case g.promotion.IsVisible():
		anyHovered = g.promotion.AnyButtonHovered()
	case g.settingsModal.IsVisible():
		anyHovered = g.settingsModal.AnyButtonHovered()
	default:
		anyHovered = g.panel.AnyButtonHovered() || g.hoveringOwnPiece()
	}

	if anyHovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

func (g *Game) hoveringOwnPiece() bool {
	if g.match.IsOver() {
		return false
	}
	mx, my := g.input.MousePosition()
	pos, ok := g.match.Board().CellAt(float64(mx), float64(my))
	if !ok {
		return false
	}
	piece := g.match.Board().PieceAt(pos)
	return (!piece.IsNone() && piece.Side == g.match.SideToMove()) || g.match.LegalMoves().Allows(pos)
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)
	screen.Fill(g.renderer.Theme().Background)

	b := g.match.Board()
	h := g.match.Highlights()

	g.renderer.DrawBoard(screen, b)
	g.renderer.DrawCheck(screen, b, h.Checked)
	g.renderer.DrawSelection(screen, b, h.Selected)
	if g.prefs.ShowHighlights {
		g.renderer.DrawHighlights(screen, b, h)
	}
	g.renderer.DrawPieces(screen, b, g.feedback.Animations())

	g.feedback.Draw(screen, g.renderer, b)
	g.panel.Draw(screen, g.renderer)

	g.promotion.Draw(screen, g.renderer)
	g.settingsModal.Draw(screen)
}

// Layout returns the game's screen dimensions.
// Width is dynamic based on panel collapsed state.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale

	if g.panel != nil && g.panel.Collapsed() {
		return int(float64(BoardSize+CollapsedWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
	}
	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// RestartAction starts a new game. A game abandoned mid-way counts in the
// statistics.
func (g *Game) RestartAction() {
	if g.match.Ply() > 0 && !g.match.IsOver() {
		g.recordResult(board.NoSide)
	}

	g.match.Restart()
	g.captured.Reset()
	g.promotion.Hide()
	g.gameResult = ""
	g.lastCapture = false
	g.castling = false
	g.turnEnded = false
	g.startedAt = time.Now()

	if g.storage != nil {
		if err := g.storage.ClearGame(); err != nil {
			log.Printf("Warning: Failed to clear saved game: %v", err)
		}
	}
	g.feedback.OnNewGame()
}

// ShowSettings opens the settings modal.
func (g *Game) ShowSettings() {
	g.settingsModal.Show(*g.prefs, func(prefs storage.UserPreferences) {
		g.prefs.SoundEnabled = prefs.SoundEnabled
		g.prefs.ShowHighlights = prefs.ShowHighlights
		g.feedback.Audio().SetEnabled(prefs.SoundEnabled)
		g.savePreferences()
	})
}

// SideToMove returns the side whose turn it is.
func (g *Game) SideToMove() board.Side {
	return g.match.SideToMove()
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.match.InCheck()
}

// Ply returns the number of completed turns.
func (g *Game) Ply() int {
	return g.match.Ply()
}

// GameOver returns true if the game is over.
func (g *Game) GameOver() bool {
	return g.match.IsOver()
}

// GameResult returns the game result string.
func (g *Game) GameResult() string {
	if g.gameResult == "" && g.match.IsOver() {
		return g.match.Winner().String() + " wins by checkmate"
	}
	return g.gameResult
}

// Captured returns the captured-piece trays.
func (g *Game) Captured() CapturedTrays {
	return g.captured
}

// Stats returns the win statistics.
func (g *Game) Stats() *storage.GameStats {
	return g.stats
}

// Close saves the game in progress and closes storage.
func (g *Game) Close() {
	if g.storage == nil {
		return
	}
	if g.match.Ply() > 0 {
		g.saveGame()
	}
	g.savePreferences()
	if err := g.storage.Close(); err != nil {
		log.Printf("Warning: Failed to close storage: %v", err)
	}
}

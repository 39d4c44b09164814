package ui

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/storage"
)

func TestPickerOrigin(t *testing.T) {
	tests := []struct {
		name             string
		anchorX, anchorY float64
		wantX, wantY     int
	}{
		{"centred", 360, 280, 200, 240},
		{"left edge", 40, 600, 0, 560},
		{"right edge", 600, 40, 320, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := pickerOrigin(tt.anchorX, tt.anchorY, 4, 80, 640)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("pickerOrigin(%v, %v) = (%d, %d), want (%d, %d)",
					tt.anchorX, tt.anchorY, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCapturedTrays(t *testing.T) {
	var trays CapturedTrays
	wp := board.NewPiece(board.Pawn, board.White)
	bq := board.NewPiece(board.Queen, board.Black)
	bn := board.NewPiece(board.Knight, board.Black)

	trays.Add(board.NewPiece(board.Pawn, board.Black), wp)
	trays.Add(board.NewPiece(board.Rook, board.Black), wp)
	trays.Add(wp, bq)
	trays.Add(board.NewPiece(board.Bishop, board.White), bn)

	want := []board.Piece{
		board.NewPiece(board.Rook, board.Black),
		board.NewPiece(board.Pawn, board.Black),
	}
	if diff := cmp.Diff(want, trays[board.White]); diff != "" {
		t.Errorf("white tray mismatch (-want +got):\n%s", diff)
	}
	if got := trays.Material(board.White); got != 6 {
		t.Errorf("Material(White) = %d, want 6", got)
	}
	if got := trays.Material(board.Black); got != 4 {
		t.Errorf("Material(Black) = %d, want 4", got)
	}

	trays.Reset()
	if len(trays[board.White]) != 0 || len(trays[board.Black]) != 0 {
		t.Errorf("Reset left %v", trays)
	}
}

func TestCapturedFromBoard(t *testing.T) {
	b := board.MustParseLayout("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPP1/RNBQKBN1")
	trays := capturedFromBoard(b)

	want := CapturedTrays{
		board.White: {board.NewPiece(board.Queen, board.Black)},
		board.Black: {board.NewPiece(board.Rook, board.White), board.NewPiece(board.Pawn, board.White)},
	}
	if diff := cmp.Diff(want, trays); diff != "" {
		t.Errorf("capturedFromBoard mismatch (-want +got):\n%s", diff)
	}
}

func TestCapturedFromBoardIgnoresPromotedSurplus(t *testing.T) {
	// white promoted its h-pawn to a second queen
	b := board.MustParseLayout("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPP1/RNBQKBNQ")
	trays := capturedFromBoard(b)

	want := CapturedTrays{
		board.Black: {board.NewPiece(board.Rook, board.White), board.NewPiece(board.Pawn, board.White)},
	}
	if diff := cmp.Diff(want, trays); diff != "" {
		t.Errorf("capturedFromBoard mismatch (-want +got):\n%s", diff)
	}
}

func TestSetBoardSize(t *testing.T) {
	defer SetBoardSize(board.DefaultSurface)

	tests := []struct {
		in, want int
	}{
		{640, 640},
		{803, 800},
		{100, MinBoardSize},
	}
	for _, tt := range tests {
		SetBoardSize(tt.in)
		if BoardSize != tt.want {
			t.Errorf("SetBoardSize(%d): BoardSize = %d, want %d", tt.in, BoardSize, tt.want)
		}
		if SquareSize*board.Size != BoardSize {
			t.Errorf("SetBoardSize(%d): SquareSize = %d", tt.in, SquareSize)
		}
		if ScreenWidth != BoardSize+PanelWidth || ScreenHeight != BoardSize {
			t.Errorf("SetBoardSize(%d): screen %dx%d", tt.in, ScreenWidth, ScreenHeight)
		}
	}
}

func TestApplyResult(t *testing.T) {
	stats := storage.NewGameStats()
	applyResult(stats, storage.GameResult{Winner: board.Black, Plies: 4, Duration: time.Minute})
	applyResult(stats, storage.GameResult{Winner: board.NoSide, Plies: 10, Duration: time.Minute})

	want := &storage.GameStats{
		GamesPlayed:   2,
		BlackWins:     1,
		Abandoned:     1,
		TotalPlayTime: 2 * time.Minute,
		LongestGame:   10,
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestFade(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 0},
		{0.1, 0.5},
		{1, 1},
		{1.9, 0.5},
		{2.5, 0},
	}
	for _, tt := range tests {
		got := fade(tt.elapsed, 2, 0.2)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("fade(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

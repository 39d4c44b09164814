package storage

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/game"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestPreferences(t *testing.T) {
	s := openTestStorage(t)

	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if !prefs.SoundEnabled || !prefs.ShowHighlights {
		t.Errorf("defaults = %+v, want sound and highlights on", prefs)
	}

	prefs.SoundEnabled = false
	if err := s.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}

	got, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if diff := cmp.Diff(prefs, got, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Errorf("preferences mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordGame(t *testing.T) {
	s := openTestStorage(t)

	results := []GameResult{
		{Winner: board.White, Plies: 40, Duration: time.Minute},
		{Winner: board.Black, Plies: 4, Duration: 10 * time.Second},
		{Winner: board.White, Plies: 71, Duration: 2 * time.Minute},
		{Winner: board.NoSide, Plies: 12, Duration: 30 * time.Second},
	}
	for _, r := range results {
		if err := s.RecordGame(r); err != nil {
			t.Fatalf("RecordGame(%+v): %v", r, err)
		}
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	want := &GameStats{
		GamesPlayed:   4,
		WhiteWins:     2,
		BlackWins:     1,
		Abandoned:     1,
		TotalPlayTime: 3*time.Minute + 40*time.Second,
		LongestGame:   71,
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if stats.Wins(board.White) != 2 || stats.Wins(board.Black) != 1 || stats.Wins(board.NoSide) != 0 {
		t.Errorf("Wins() = %d/%d", stats.Wins(board.White), stats.Wins(board.Black))
	}
}

func TestSavedGame(t *testing.T) {
	s := openTestStorage(t)

	if _, err := s.LoadGame(); !errors.Is(err, ErrNoSavedGame) {
		t.Fatalf("LoadGame on empty store error = %v, want ErrNoSavedGame", err)
	}

	g, err := game.New(board.DefaultSurface, board.DefaultSurface, game.Handlers{})
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	g.Select(board.MustPos("e2"))
	g.Select(board.MustPos("e4"))
	snap := g.Snapshot()

	if err := s.SaveGame(snap); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	got, err := s.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if diff := cmp.Diff(snap, got); diff != "" {
		t.Errorf("saved game mismatch (-want +got):\n%s", diff)
	}

	if err := s.ClearGame(); err != nil {
		t.Fatalf("ClearGame: %v", err)
	}
	if _, err := s.LoadGame(); !errors.Is(err, ErrNoSavedGame) {
		t.Errorf("LoadGame after clear error = %v, want ErrNoSavedGame", err)
	}
}

func TestDataPaths(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_DATA_HOME only applies on linux")
	}
	base := t.TempDir()
	t.Setenv(DataDirEnv, "")
	t.Setenv("XDG_DATA_HOME", base)

	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if want := filepath.Join(base, appName, "db"); dbDir != want {
		t.Errorf("GetDatabaseDir() = %s, want %s", dbDir, want)
	}
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}
}

func TestDataDirOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "custom")
	t.Setenv(DataDirEnv, dir)

	got, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if got != dir {
		t.Errorf("GetDataDir() = %s, want %s", got, dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("override directory was not created: %v", err)
	}
}

func TestUserBaseDir(t *testing.T) {
	t.Setenv("APPDATA", "/appdata")
	t.Setenv("XDG_DATA_HOME", "/xdg")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		goos string
		want string
	}{
		{"linux", "/xdg"},
		{"windows", "/appdata"},
		{"darwin", filepath.Join(home, "Library", "Application Support")},
	}
	for _, tt := range tests {
		got, err := userBaseDir(tt.goos)
		if err != nil {
			t.Fatalf("userBaseDir(%s): %v", tt.goos, err)
		}
		if got != tt.want {
			t.Errorf("userBaseDir(%s) = %s, want %s", tt.goos, got, tt.want)
		}
	}
}

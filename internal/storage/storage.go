package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/game"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keySavedGame   = "saved_game"
)

// ErrNoSavedGame is returned by LoadGame when nothing was saved.
var ErrNoSavedGame = errors.New("storage: no saved game")

// UserPreferences stores user settings
type UserPreferences struct {
	SoundEnabled   bool      `json:"sound_enabled"`
	ShowHighlights bool      `json:"show_highlights"`
	LastPlayed     time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		SoundEnabled:   true,
		ShowHighlights: true,
		LastPlayed:     time.Now(),
	}
}

// GameStats counts finished games on this machine.
type GameStats struct {
	GamesPlayed   int           `json:"games_played"`
	WhiteWins     int           `json:"white_wins"`
	BlackWins     int           `json:"black_wins"`
	Abandoned     int           `json:"abandoned"`
	TotalPlayTime time.Duration `json:"total_play_time"`
	LongestGame   int           `json:"longest_game_plies"`
}

// NewGameStats returns empty game statistics
func NewGameStats() *GameStats {
	return &GameStats{}
}

// Wins returns the number of games won by side.
func (s *GameStats) Wins(side board.Side) int {
	switch side {
	case board.White:
		return s.WhiteWins
	case board.Black:
		return s.BlackWins
	}
	return 0
}

// GameResult describes a game that ended by checkmate or was abandoned.
type GameResult struct {
	// Winner is board.NoSide for a game restarted before checkmate.
	Winner   board.Side
	Plies    int
	Duration time.Duration
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in dir, or in the default data
// directory when dir is empty.
func NewStorage(dir string) (*Storage, error) {
	if dir == "" {
		var err error
		dir, err = GetDatabaseDir()
		if err != nil {
			return nil, err
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // badger is noisy at info level

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dir, err)
	}
	log.Printf("[STORAGE] Opened %s", dir)

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// put stores v as JSON under key.
func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes the JSON under key into v. found is false, and v untouched,
// when the key does not exist.
func (s *Storage) get(key string, v any) (found bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	return found, err
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	_, err := s.get(keyPreferences, prefs)
	return prefs, err
}

// SaveStats saves game statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()
	_, err := s.get(keyStats, stats)
	return stats, err
}

// RecordGame records a completed game and updates statistics
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

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

	return s.SaveStats(stats)
}

// SaveGame stores the unfinished game so it can be resumed on next launch.
func (s *Storage) SaveGame(snap game.Snapshot) error {
	return s.put(keySavedGame, snap)
}

// LoadGame returns the saved game, or ErrNoSavedGame.
func (s *Storage) LoadGame() (game.Snapshot, error) {
	var snap game.Snapshot
	found, err := s.get(keySavedGame, &snap)
	if err != nil {
		return game.Snapshot{}, err
	}
	if !found {
		return game.Snapshot{}, ErrNoSavedGame
	}
	return snap, nil
}

// ClearGame forgets the saved game.
func (s *Storage) ClearGame() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keySavedGame))
	})
}

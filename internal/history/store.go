// Package history persists finished runs in SQLite.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"skazmor/internal/game"
)

// ErrNotConfigured is returned by a nil or closed store.
var ErrNotConfigured = errors.New("storage is not configured")

// Run is one finished run.
type Run struct {
	ID          string         `json:"id"`
	Seed        int64          `json:"seed"`
	Status      game.Status    `json:"status"`
	Curse       game.CurseType `json:"curse,omitempty"`
	HP          int            `json:"hp"`
	MaxHP       int            `json:"maxHp"`
	Coins       int            `json:"coins"`
	CardsIssued int            `json:"cardsIssued"`
	Stats       game.Stats     `json:"stats"`
	Overheads   game.Overheads `json:"overheads"`
	FinishedAt  time.Time      `json:"finishedAt"`
}

// NewRun summarizes st as a history record with a fresh id.
func NewRun(seed int64, st game.GameState, finishedAt time.Time) Run {
	return Run{
		ID:          uuid.NewString(),
		Seed:        seed,
		Status:      st.Status,
		Curse:       st.Curse,
		HP:          st.Player.HP,
		MaxHP:       st.Player.MaxHP,
		Coins:       st.Player.Coins,
		CardsIssued: st.IssuedCards,
		Stats:       st.Stats,
		Overheads:   st.Overheads,
		FinishedAt:  finishedAt.UTC(),
	}
}

// Store persists runs in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite history store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o750); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordRun stores the finished state st played with seed.
func (s *Store) RecordRun(ctx context.Context, seed int64, st game.GameState) error {
	if s == nil || s.sqlDB == nil {
		return ErrNotConfigured
	}
	return s.Record(ctx, NewRun(seed, st, s.now()))
}

// Record inserts one run.
func (s *Store) Record(ctx context.Context, run Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return ErrNotConfigured
	}
	if strings.TrimSpace(run.ID) == "" {
		return fmt.Errorf("run id is required")
	}
	if run.Status != game.StatusWon && run.Status != game.StatusLost {
		return fmt.Errorf("run %s is not finished: %s", run.ID, run.Status)
	}
	stats, err := json.Marshal(run.Stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	overheads, err := json.Marshal(run.Overheads)
	if err != nil {
		return fmt.Errorf("encode overheads: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO runs (
		   id,
		   seed,
		   status,
		   curse,
		   hp,
		   max_hp,
		   coins,
		   cards_issued,
		   stats_json,
		   overheads_json,
		   finished_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Seed,
		string(run.Status),
		string(run.Curse),
		run.HP,
		run.MaxHP,
		run.Coins,
		run.CardsIssued,
		string(stats),
		string(overheads),
		toMillis(run.FinishedAt),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// List returns up to limit runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, ErrNotConfigured
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, seed, status, curse, hp, max_hp, coins, cards_issued, stats_json, overheads_json, finished_at
		 FROM runs
		 ORDER BY finished_at DESC, id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run                  Run
			status, curse        string
			statsJSON, overheads string
			finishedAt           int64
		)
		if err := rows.Scan(&run.ID, &run.Seed, &status, &curse, &run.HP, &run.MaxHP, &run.Coins, &run.CardsIssued, &statsJSON, &overheads, &finishedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(statsJSON), &run.Stats); err != nil {
			return nil, fmt.Errorf("decode stats for %s: %w", run.ID, err)
		}
		if err := json.Unmarshal([]byte(overheads), &run.Overheads); err != nil {
			return nil, fmt.Errorf("decode overheads for %s: %w", run.ID, err)
		}
		run.Status = game.Status(status)
		run.Curse = game.CurseType(curse)
		run.FinishedAt = fromMillis(finishedAt)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/moodbite/moodbite/internal/model"
)

// StateKey is the fixed durable-storage key the whole application state
// lives under.
const StateKey = "restaurant_db"

// Load deserializes the persisted state. If no record exists yet, the
// default state is materialized and persisted before returning, exactly
// once: the insert is conditional, so a concurrent or repeated Load never
// overwrites a record written in between.
func (s *Store) Load(ctx context.Context) (*model.State, error) {
	state, err := s.read(ctx)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	def := model.DefaultState()
	data, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal default state: %w", err)
	}

	// Insert only when absent; if another writer got there first, fall
	// through to re-read whatever it wrote.
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO state (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO NOTHING
	`, StateKey, string(data), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("seed default state: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		slog.Info("default state materialized", "key", StateKey)
		return def, nil
	}

	return s.read(ctx)
}

// Save serializes the entire in-memory state and overwrites the durable
// record. Called after every mutating endpoint; there is no partial or
// incremental persistence. A failure here propagates to the caller of the
// enclosing endpoint.
func (s *Store) Save(ctx context.Context, state *model.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO state (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, StateKey, string(data), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	slog.Debug("state persisted", "key", StateKey, "bytes", len(data))
	return nil
}

// read returns the persisted state, or sql.ErrNoRows when absent.
func (s *Store) read(ctx context.Context) (*model.State, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM state WHERE key = ?
	`, StateKey).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("read state: %w", err)
	}

	var state model.State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return &state, nil
}

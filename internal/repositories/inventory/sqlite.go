package inventory

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-gamekit/internal/entities"
	"github.com/KirkDiggler/rpg-gamekit/internal/errors"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS inventory_saves (
	player_id TEXT PRIMARY KEY,
	saved_at  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS inventory_items (
	player_id TEXT NOT NULL REFERENCES inventory_saves(player_id) ON DELETE CASCADE,
	position  INTEGER NOT NULL,
	name      TEXT NOT NULL,
	amount    INTEGER NOT NULL CHECK (amount >= 0),
	PRIMARY KEY (player_id, position)
);`

// SQLiteRepository persists inventories in a SQLite save file
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) a save file at path
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "apply inventory schema")
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the SQLite handle.
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Get retrieves a saved inventory in its saved order
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	var savedAt int64
	err := r.db.QueryRowContext(ctx,
		`SELECT saved_at FROM inventory_saves WHERE player_id = ?`, input.PlayerID,
	).Scan(&savedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("inventory for player %s not found", input.PlayerID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get inventory for player %s", input.PlayerID)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT name, amount FROM inventory_items WHERE player_id = ? ORDER BY position`, input.PlayerID,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list items for player %s", input.PlayerID)
	}
	defer func() { _ = rows.Close() }()

	items := []entities.InventoryItem{}
	for rows.Next() {
		var item entities.InventoryItem
		if err := rows.Scan(&item.Name, &item.Amount); err != nil {
			return nil, errors.Wrap(err, "failed to scan inventory item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate inventory items")
	}

	return &GetOutput{
		Data: &InventoryData{
			PlayerID: input.PlayerID,
			Items:    items,
			SavedAt:  time.UnixMilli(savedAt).UTC(),
		},
	}, nil
}

// Save replaces a player's snapshot in one transaction
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin inventory save")
	}
	defer func() { _ = tx.Rollback() }()

	savedAt := input.SavedAt.UTC()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO inventory_saves (player_id, saved_at) VALUES (?, ?)
		 ON CONFLICT(player_id) DO UPDATE SET saved_at = excluded.saved_at`,
		input.PlayerID, savedAt.UnixMilli(),
	); err != nil {
		return nil, errors.Wrapf(err, "failed to save inventory for player %s", input.PlayerID)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM inventory_items WHERE player_id = ?`, input.PlayerID); err != nil {
		return nil, errors.Wrapf(err, "failed to clear items for player %s", input.PlayerID)
	}
	for position, item := range input.Items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO inventory_items (player_id, position, name, amount) VALUES (?, ?, ?, ?)`,
			input.PlayerID, position, item.Name, item.Amount,
		); err != nil {
			return nil, errors.Wrapf(err, "failed to save item %s", item.Name)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit inventory save")
	}

	return &SaveOutput{
		Data: &InventoryData{
			PlayerID: input.PlayerID,
			Items:    copyItems(input.Items),
			SavedAt:  time.UnixMilli(savedAt.UnixMilli()).UTC(),
		},
	}, nil
}

// Delete removes a player's snapshot and its items
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_saves WHERE player_id = ?`, input.PlayerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete inventory for player %s", input.PlayerID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read delete result")
	}
	if n == 0 {
		return nil, errors.NotFoundf("inventory for player %s not found", input.PlayerID)
	}

	return &DeleteOutput{}, nil
}

var _ Repository = (*SQLiteRepository)(nil)

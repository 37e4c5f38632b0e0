// Package sqliteregion persists regions in an embedded SQLite database.
// It is the default provider: one file holds every region and survives restarts.
package sqliteregion

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"supplychain/internal/adapters/out/region"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

type store struct {
	db *sql.DB
}

// Open creates or opens the database at path and returns a provider over it.
//
// The database is configured with:
//   - WAL mode
//   - FULL synchronous mode, so a committed write survives power loss
//   - a 5-second busy timeout
//
// Open is idempotent: reopening a path yields the regions written before.
func Open(path string) (*region.Provider, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return region.NewProvider(&store{db: db}, region.DefaultBlockSize), nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = FULL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

func (s *store) GetBlocks(ctx context.Context, tag string, first, last int64) (map[int64][]byte, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT block, data FROM region_blocks
		WHERE tag = ? AND block BETWEEN ? AND ?
	`, tag, first, last)
	if err != nil {
		return nil, fmt.Errorf("get blocks: %w", err)
	}
	defer rows.Close()

	blocks := make(map[int64][]byte)
	for rows.Next() {
		var (
			idx  int64
			data []byte
		)
		if err := rows.Scan(&idx, &data); err != nil {
			return nil, fmt.Errorf("get blocks: %w", err)
		}
		blocks[idx] = data
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get blocks: %w", err)
	}
	return blocks, nil
}

func (s *store) PutBlocks(ctx context.Context, tag string, blocks map[int64][]byte, size int64) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put blocks: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for idx, data := range blocks {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO region_blocks (tag, block, data) VALUES (?, ?, ?)
			ON CONFLICT(tag, block) DO UPDATE SET data = excluded.data
		`, tag, idx, data); err != nil {
			return fmt.Errorf("put blocks: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO regions (tag, size) VALUES (?, ?)
		ON CONFLICT(tag) DO UPDATE SET size = excluded.size
	`, tag, size); err != nil {
		return fmt.Errorf("put blocks: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("put blocks: %w", err)
	}
	return nil
}

func (s *store) Size(ctx context.Context, tag string) (int64, error) {
	var size int64
	err := s.db.QueryRowContext(ctx, `SELECT size FROM regions WHERE tag = ?`, tag).Scan(&size)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("size: %w", err)
	}
	return size, nil
}

func (s *store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/amonks/when/timeframe"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS task (
	id         INTEGER PRIMARY KEY,
	content    TEXT    NOT NULL,
	timeframe  TEXT    NOT NULL DEFAULT '',
	done       INTEGER NOT NULL DEFAULT 0,
	created_ts INTEGER NOT NULL,
	updated_ts INTEGER NOT NULL
)`

// SQLite stores tasks in a single table of a SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("sqlite store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("failed to open db with dsn %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Load returns every task ordered by id.
func (d *SQLite) Load() ([]Task, error) {
	return listTasks(context.Background(), d.db)
}

// Update applies fn inside a transaction and rewrites the table with its
// result.
func (d *SQLite) Update(fn func([]Task) ([]Task, error)) error {
	ctx := context.Background()
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tasks, err := listTasks(ctx, tx)
	if err != nil {
		return err
	}
	tasks, err = fn(tasks)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM task`); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	stmt := `INSERT INTO task (id, content, timeframe, done, created_ts, updated_ts) VALUES (?, ?, ?, ?, ?, ?)`
	for _, t := range tasks {
		tf, err := t.Timeframe.MarshalText()
		if err != nil {
			return fmt.Errorf("encode task %d: %w", t.ID, err)
		}
		if _, err := tx.ExecContext(ctx, stmt,
			t.ID, t.Content, string(tf), t.Done, t.CreatedAt.UnixMilli(), t.UpdatedAt.UnixMilli(),
		); err != nil {
			return fmt.Errorf("failed to insert task %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Close closes the database.
func (d *SQLite) Close() error {
	return d.db.Close()
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listTasks(ctx context.Context, q queryer) ([]Task, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, content, timeframe, done, created_ts, updated_ts FROM task ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var (
			t                Task
			tf               string
			created, updated int64
		)
		if err := rows.Scan(&t.ID, &t.Content, &tf, &t.Done, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		var decoded timeframe.Timeframe
		if err := decoded.UnmarshalText([]byte(tf)); err != nil {
			return nil, fmt.Errorf("decode task %d: %w", t.ID, err)
		}
		t.Timeframe = decoded
		t.CreatedAt = time.UnixMilli(created)
		t.UpdatedAt = time.UnixMilli(updated)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kickclock/internal/modules/practice/domain"
	"kickclock/internal/platform/tx"

	_ "modernc.org/sqlite"
)

type SQLiteKickIndex struct {
	db *sql.DB
}

func NewSQLiteKickIndex(dbPath string) (*SQLiteKickIndex, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	index := &SQLiteKickIndex{db: db}
	if err := index.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return index, nil
}

// DB exposes the handle so a tx.SQLManager can share it.
func (s *SQLiteKickIndex) DB() *sql.DB { return s.db }

func (s *SQLiteKickIndex) Close() error { return s.db.Close() }

func (s *SQLiteKickIndex) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kicks (
  id TEXT PRIMARY KEY,
  practice_id TEXT NOT NULL,
  practice_date TEXT NOT NULL,
  seq INTEGER NOT NULL,
  type TEXT NOT NULL,
  kicker TEXT,
  longsnapper TEXT,
  holder TEXT,
  yard_line TEXT,
  distance TEXT,
  detail_json TEXT NOT NULL,
  logged_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create kicks table: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS kicks_practice ON kicks (practice_id, seq)`); err != nil {
		return fmt.Errorf("create kicks index: %w", err)
	}
	return nil
}

func (s *SQLiteKickIndex) UpsertKick(ctx context.Context, practice domain.Practice, kick domain.Kick) error {
	detail, err := json.Marshal(kick)
	if err != nil {
		return fmt.Errorf("marshal kick detail: %w", err)
	}
	const stmt = `
INSERT INTO kicks (id, practice_id, practice_date, seq, type, kicker, longsnapper, holder, yard_line, distance, detail_json, logged_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  practice_id=excluded.practice_id,
  practice_date=excluded.practice_date,
  seq=excluded.seq,
  type=excluded.type,
  kicker=excluded.kicker,
  longsnapper=excluded.longsnapper,
  holder=excluded.holder,
  yard_line=excluded.yard_line,
  distance=excluded.distance,
  detail_json=excluded.detail_json,
  logged_at=excluded.logged_at;
`
	_, err = tx.Executor(ctx, s.db).ExecContext(ctx, stmt,
		kick.ID,
		practice.ID,
		practice.Date,
		kick.Seq,
		string(kick.Type),
		kick.Kicker,
		kick.Longsnapper,
		kick.Holder,
		kick.YardLine(),
		kick.Distance(),
		string(detail),
		kick.LoggedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert kick: %w", err)
	}
	return nil
}

// ListKicks returns kicks ordered by practice date and sequence. An empty
// practiceID matches every practice.
func (s *SQLiteKickIndex) ListKicks(ctx context.Context, practiceID string) ([]domain.Kick, error) {
	query := `SELECT detail_json FROM kicks`
	var args []any
	if practiceID != "" {
		query += ` WHERE practice_id = ?`
		args = append(args, practiceID)
	}
	query += ` ORDER BY practice_date, practice_id, seq`

	rows, err := tx.Executor(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query kicks: %w", err)
	}
	defer rows.Close()

	var kicks []domain.Kick
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan kick: %w", err)
		}
		var k domain.Kick
		if err := json.Unmarshal([]byte(raw), &k); err != nil {
			return nil, fmt.Errorf("decode kick: %w", err)
		}
		kicks = append(kicks, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kicks: %w", err)
	}
	return kicks, nil
}

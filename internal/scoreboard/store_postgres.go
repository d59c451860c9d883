package scoreboard

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS scoreboard (
    id           BIGSERIAL PRIMARY KEY,
    room_code    TEXT        NOT NULL,
    completed_at TIMESTAMPTZ NOT NULL,
    entry        JSONB       NOT NULL
)`

// PostgresStore 每条记录一行，整条 JSON 存在 entry 列
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore 建表（如不存在）
func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return nil, fmt.Errorf("create scoreboard table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Append(ctx context.Context, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx,
		`INSERT INTO scoreboard (room_code, completed_at, entry) VALUES ($1, $2, $3)`,
		e.RoomCode, e.CompletedAt, string(data),
	)
	return err
}

func (p *PostgresStore) List(ctx context.Context) ([]Entry, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT entry FROM scoreboard ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("decode scoreboard row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

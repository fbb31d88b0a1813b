package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sandevgo/flashbot/internal/core"
	"github.com/sandevgo/flashbot/pkg/log"
)

// Store is the sqlite-backed conversation context. Same trim semantics
// as the in-memory store; content is persisted as the message's JSON
// wire form.
type Store struct {
	db    *sql.DB
	bound int
}

func NewStore(db *sql.DB, bound int) *Store {
	return &Store{db: db, bound: bound}
}

func (s *Store) Get(ctx context.Context, userID int64) ([]core.Message, error) {
	query := `SELECT role, content FROM context_messages WHERE user_id = ? ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query context: %w", err)
	}
	defer rows.Close()

	var messages []core.Message
	for rows.Next() {
		var msg core.Message
		var content string

		if err := rows.Scan(&msg.Role, &content); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		if err := json.Unmarshal([]byte(content), &msg.Content); err != nil {
			return nil, fmt.Errorf("failed to unmarshal content: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Int("count", len(messages)).Int64("user", userID).Msg("loaded context messages")
	return messages, nil
}

func (s *Store) Append(ctx context.Context, userID int64, msg core.Message) error {
	content, err := json.Marshal(msg.Content)
	if err != nil {
		return fmt.Errorf("failed to marshal content: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO context_messages (user_id, role, content) VALUES (?, ?, ?)`
	if _, err := tx.ExecContext(ctx, query, userID, msg.Role, string(content)); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	// Evict oldest rows beyond the bound
	trim := `DELETE FROM context_messages
	         WHERE user_id = ? AND id NOT IN (
	             SELECT id FROM context_messages WHERE user_id = ? ORDER BY id DESC LIMIT ?
	         )`
	if _, err := tx.ExecContext(ctx, trim, userID, userID, s.bound); err != nil {
		return fmt.Errorf("failed to trim context: %w", err)
	}

	return tx.Commit()
}

func (s *Store) Clear(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM context_messages WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear context: %w", err)
	}
	return nil
}

func (s *Store) Len(ctx context.Context, userID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM context_messages WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count context: %w", err)
	}
	return n, nil
}

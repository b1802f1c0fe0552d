package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type completionsRepo struct {
	db dbtx
}

func (r *completionsRepo) MarkCompleted(ctx context.Context, userID int64, moduleID string, at time.Time) error {
	// ON CONFLICT DO NOTHING makes re-completing a module idempotent and
	// preserves the original completed_at.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO module_completions (user_id, module_id, completed_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, module_id) DO NOTHING`,
		userID, moduleID, at.UTC(),
	)
	return err
}

func (r *completionsRepo) ListCompleted(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT module_id FROM module_completions
		WHERE user_id = ?
		ORDER BY completed_at, module_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *completionsRepo) IsCompleted(ctx context.Context, userID int64, moduleID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
		SELECT 1 FROM module_completions WHERE user_id = ? AND module_id = ?`,
		userID, moduleID,
	).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

package postgres

import (
	"context"
	"database/sql"

	"vaccine-tracker/internal/domain/reminders"
)

type RemindersRepo struct {
	db *sql.DB
}

func NewRemindersRepo(db *sql.DB) *RemindersRepo {
	return &RemindersRepo{db: db}
}

func (r *RemindersRepo) Create(ctx context.Context, rem reminders.Reminder) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (
			id, dose_id, subject_id,
			fire_at, message, consumed, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		rem.ID,
		rem.DoseID,
		rem.SubjectID,
		rem.FireAt,
		rem.Message,
		rem.Consumed,
		rem.CreatedAt,
	)
	return err
}

// Update solo persiste el flag consumed: el resto del reminder es inmutable.
func (r *RemindersRepo) Update(ctx context.Context, rem reminders.Reminder) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reminders SET consumed = $2 WHERE id = $1
	`, rem.ID, rem.Consumed)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RemindersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RemindersRepo) DeleteBySubject(ctx context.Context, subjectID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE subject_id = $1`, subjectID)
	return err
}

func (r *RemindersRepo) ListAll(ctx context.Context) ([]reminders.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, dose_id, subject_id,
			fire_at, message, consumed, created_at
		FROM reminders
		ORDER BY fire_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reminders.Reminder, 0)
	for rows.Next() {
		var rem reminders.Reminder
		if err := rows.Scan(
			&rem.ID,
			&rem.DoseID,
			&rem.SubjectID,
			&rem.FireAt,
			&rem.Message,
			&rem.Consumed,
			&rem.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rem)
	}

	return out, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"

	"vaccine-tracker/internal/domain/subjects"
)

type SubjectsRepo struct {
	db *sql.DB
}

func NewSubjectsRepo(db *sql.DB) *SubjectsRepo {
	return &SubjectsRepo{db: db}
}

func (r *SubjectsRepo) Create(ctx context.Context, s subjects.Subject) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subjects (
			id, owner_account_id, name, birth_date, created_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		s.ID,
		s.OwnerAccountID,
		s.Name,
		s.BirthDate,
		s.CreatedAt,
	)
	return err
}

func (r *SubjectsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SubjectsRepo) ListAll(ctx context.Context) ([]subjects.Subject, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_account_id, name, birth_date, created_at
		FROM subjects
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]subjects.Subject, 0)
	for rows.Next() {
		var s subjects.Subject
		if err := rows.Scan(
			&s.ID,
			&s.OwnerAccountID,
			&s.Name,
			&s.BirthDate,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		// birth_date es DATE: pgx lo devuelve a medianoche UTC
		s.BirthDate = s.BirthDate.UTC()
		out = append(out, s)
	}

	return out, rows.Err()
}

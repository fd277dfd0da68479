package postgres

import (
	"context"
	"database/sql"
	"time"

	"vaccine-tracker/internal/domain/doses"
)

type DosesRepo struct {
	db *sql.DB
}

func NewDosesRepo(db *sql.DB) *DosesRepo {
	return &DosesRepo{db: db}
}

// CreateBatch inserta todo el calendario en una sola transacción.
func (r *DosesRepo) CreateBatch(ctx context.Context, records []doses.DoseRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO dose_records (
			id, subject_id, seq,
			dose_name, category, due_date,
			status, completed_date, note
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range records {
		if _, err := stmt.ExecContext(ctx,
			d.ID,
			d.SubjectID,
			d.Seq,
			d.DoseName,
			d.Category,
			d.DueDate,
			string(d.Status),
			toNullTime(d.CompletedDate),
			d.Note,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *DosesRepo) Update(ctx context.Context, d doses.DoseRecord) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE dose_records
		SET
			status = $2,
			completed_date = $3,
			note = $4
		WHERE id = $1
	`,
		d.ID,
		string(d.Status),
		toNullTime(d.CompletedDate),
		d.Note,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DosesRepo) DeleteBySubject(ctx context.Context, subjectID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM dose_records WHERE subject_id = $1`, subjectID)
	return err
}

func (r *DosesRepo) ListAll(ctx context.Context) ([]doses.DoseRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, subject_id, seq,
			dose_name, category, due_date,
			status, completed_date, note
		FROM dose_records
		ORDER BY subject_id, seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]doses.DoseRecord, 0)
	for rows.Next() {
		var (
			d      doses.DoseRecord
			status string
			cd     sql.NullTime
		)
		if err := rows.Scan(
			&d.ID,
			&d.SubjectID,
			&d.Seq,
			&d.DoseName,
			&d.Category,
			&d.DueDate,
			&status,
			&cd,
			&d.Note,
		); err != nil {
			return nil, err
		}

		d.DueDate = d.DueDate.UTC()
		d.Status = doses.Status(status)
		if cd.Valid {
			t := cd.Time
			d.CompletedDate = &t
		}

		out = append(out, d)
	}

	return out, rows.Err()
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

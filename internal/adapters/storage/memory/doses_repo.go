package memory

import (
	"context"
	"errors"
	"sync"

	"vaccine-tracker/internal/domain/doses"
)

type doseRepo struct {
	mu   sync.RWMutex
	byID map[string]doses.DoseRecord
}

func NewDoseRepo() doses.Repository {
	return &doseRepo{
		byID: make(map[string]doses.DoseRecord),
	}
}

// CreateBatch es todo o nada: valida el lote completo antes de escribir.
func (r *doseRepo) CreateBatch(ctx context.Context, records []doses.DoseRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(records))
	for _, d := range records {
		if d.ID == "" {
			return errors.New("dose id required")
		}
		if _, exists := r.byID[d.ID]; exists {
			return errors.New("dose already exists")
		}
		if _, dup := seen[d.ID]; dup {
			return errors.New("duplicate dose id in batch")
		}
		seen[d.ID] = struct{}{}
	}

	for _, d := range records {
		r.byID[d.ID] = d
	}
	return nil
}

func (r *doseRepo) Update(ctx context.Context, d doses.DoseRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[d.ID]; !exists {
		return ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *doseRepo) DeleteBySubject(ctx context.Context, subjectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, d := range r.byID {
		if d.SubjectID == subjectID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *doseRepo) ListAll(ctx context.Context) ([]doses.DoseRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]doses.DoseRecord, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}
	return out, nil
}

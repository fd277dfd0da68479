package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vaccine-tracker/internal/domain/subjects"
)

var (
	ErrNotFound = errors.New("not found")
)

type subjectRepo struct {
	mu   sync.RWMutex
	byID map[string]subjects.Subject
}

func NewSubjectRepo() subjects.Repository {
	return &subjectRepo{
		byID: make(map[string]subjects.Subject),
	}
}

func (r *subjectRepo) Create(ctx context.Context, s subjects.Subject) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("subject id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("subject already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *subjectRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *subjectRepo) ListAll(ctx context.Context) ([]subjects.Subject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]subjects.Subject, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}

	// Orden estable por created_at asc
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

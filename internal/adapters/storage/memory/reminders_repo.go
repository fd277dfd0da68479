package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vaccine-tracker/internal/domain/reminders"
)

type reminderRepo struct {
	mu   sync.RWMutex
	byID map[string]reminders.Reminder
}

func NewReminderRepo() reminders.Repository {
	return &reminderRepo{
		byID: make(map[string]reminders.Reminder),
	}
}

func (r *reminderRepo) Create(ctx context.Context, rem reminders.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rem.ID == "" {
		return errors.New("reminder id required")
	}
	if _, exists := r.byID[rem.ID]; exists {
		return errors.New("reminder already exists")
	}
	r.byID[rem.ID] = rem
	return nil
}

func (r *reminderRepo) Update(ctx context.Context, rem reminders.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rem.ID]; !exists {
		return ErrNotFound
	}
	r.byID[rem.ID] = rem
	return nil
}

func (r *reminderRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *reminderRepo) DeleteBySubject(ctx context.Context, subjectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, rem := range r.byID {
		if rem.SubjectID == subjectID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *reminderRepo) ListAll(ctx context.Context) ([]reminders.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reminders.Reminder, 0, len(r.byID))
	for _, rem := range r.byID {
		out = append(out, rem)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FireAt.Before(out[j].FireAt)
	})
	return out, nil
}

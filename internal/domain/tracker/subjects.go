package tracker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"vaccine-tracker/internal/domain/doses"
	"vaccine-tracker/internal/domain/schedule"
	"vaccine-tracker/internal/domain/subjects"
	"vaccine-tracker/internal/platform/calendar"

	"github.com/google/uuid"
)

type CreateSubjectInput struct {
	OwnerAccountID string
	Name           string
	BirthDate      time.Time
}

// CreateSubject registra el sujeto y persiste su calendario completo.
func (s *Service) CreateSubject(ctx context.Context, in CreateSubjectInput) (subjects.Subject, []doses.DoseRecord, error) {
	owner := strings.TrimSpace(in.OwnerAccountID)
	if owner == "" || in.BirthDate.IsZero() {
		return subjects.Subject{}, nil, ErrInvalidInput
	}

	now := s.now()
	birth := calendar.DateOf(in.BirthDate)
	if birth.After(calendar.DateOf(now)) {
		return subjects.Subject{}, nil, fmt.Errorf("%w: birth date in the future", ErrInvalidInput)
	}

	sub := subjects.Subject{
		ID:             uuid.NewString(),
		OwnerAccountID: owner,
		Name:           strings.TrimSpace(in.Name),
		BirthDate:      birth,
		CreatedAt:      now,
	}
	records := schedule.Generate(s.template, birth, sub.ID, now)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repos.Subjects.Create(ctx, sub); err != nil {
		return subjects.Subject{}, nil, fmt.Errorf("create subject: %w", err)
	}
	if err := s.repos.Doses.CreateBatch(ctx, records); err != nil {
		err = fmt.Errorf("create doses: %w", err)
		// deshacer el sujeto para no dejarlo sin calendario
		if rbErr := s.repos.Subjects.Delete(ctx, sub.ID); rbErr != nil {
			err = errors.Join(err, fmt.Errorf("rollback subject: %w", rbErr))
		}
		return subjects.Subject{}, nil, err
	}

	s.subjects[sub.ID] = sub
	ids := make([]string, 0, len(records))
	for _, r := range records {
		s.doses[r.ID] = r
		ids = append(ids, r.ID)
	}
	s.bySubject[sub.ID] = ids

	return sub, records, nil
}

// GenerateSchedule expande birth con el template del service sin persistir nada.
func (s *Service) GenerateSchedule(birth time.Time, subjectID string) []doses.DoseRecord {
	return schedule.Generate(s.template, birth, subjectID, s.now())
}

func (s *Service) GetSubject(ctx context.Context, id string) (subjects.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subjects[strings.TrimSpace(id)]
	if !ok {
		return subjects.Subject{}, notFound("subject", id)
	}
	return sub, nil
}

func (s *Service) ListSubjects(ctx context.Context, ownerAccountID string) ([]subjects.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]subjects.Subject, 0)
	for _, sub := range s.subjects {
		if sub.OwnerAccountID == ownerAccountID {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// DeleteSubject borra el sujeto en cascada: dosis y reminders.
// Cada paso que ya se aplicó en el repo se refleja en memoria aunque
// uno posterior falle, así ningún reminder borrado queda armado.
func (s *Service) DeleteSubject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subjects[id]; !ok {
		return notFound("subject", id)
	}

	if err := s.repos.Reminders.DeleteBySubject(ctx, id); err != nil {
		return fmt.Errorf("delete reminders: %w", err)
	}
	for rid, r := range s.reminders {
		if r.SubjectID == id {
			s.sched.Disarm(rid)
			delete(s.reminders, rid)
		}
	}

	if err := s.repos.Doses.DeleteBySubject(ctx, id); err != nil {
		return fmt.Errorf("delete doses: %w", err)
	}
	for _, did := range s.bySubject[id] {
		delete(s.doses, did)
	}
	delete(s.bySubject, id)

	if err := s.repos.Subjects.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	delete(s.subjects, id)

	return nil
}

package tracker

import (
	"context"
	"fmt"
	"time"

	"vaccine-tracker/internal/domain/compliance"
	"vaccine-tracker/internal/domain/doses"
)

func (s *Service) ListDoses(ctx context.Context, subjectID string) ([]doses.DoseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subjects[subjectID]; !ok {
		return nil, notFound("subject", subjectID)
	}
	return s.subjectDosesLocked(subjectID), nil
}

func (s *Service) GetDose(ctx context.Context, id string) (doses.DoseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.doses[id]
	if !ok {
		return doses.DoseRecord{}, notFound("dose", id)
	}
	return r, nil
}

// MarkCompleted lleva la dosis a completed (también desde missed).
// completedAt nil => ahora. Si ya estaba completada devuelve el registro sin cambios.
func (s *Service) MarkCompleted(ctx context.Context, doseID string, completedAt *time.Time, note string) (doses.DoseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.doses[doseID]
	if !ok {
		return doses.DoseRecord{}, notFound("dose", doseID)
	}

	at := s.now()
	if completedAt != nil && !completedAt.IsZero() {
		at = *completedAt
	}

	updated, changed := doses.Complete(r, at, note)
	if !changed {
		return r, nil
	}

	if err := s.repos.Doses.Update(ctx, updated); err != nil {
		return doses.DoseRecord{}, fmt.Errorf("update dose: %w", err)
	}
	s.doses[doseID] = updated

	return updated, nil
}

// Sweep reevalúa todo el working set y persiste las dosis que pasaron a missed.
// Devuelve cuántas cambiaron.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]doses.DoseRecord, 0, len(s.doses))
	for _, r := range s.doses {
		all = append(all, r)
	}
	return s.applySweepLocked(ctx, all)
}

// SweepSubject es el sweep acotado a un sujeto (al abrir su calendario).
func (s *Service) SweepSubject(ctx context.Context, subjectID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subjects[subjectID]; !ok {
		return 0, notFound("subject", subjectID)
	}
	return s.applySweepLocked(ctx, s.subjectDosesLocked(subjectID))
}

func (s *Service) applySweepLocked(ctx context.Context, records []doses.DoseRecord) (int, error) {
	updated, changed := doses.Sweep(records, s.now())
	if !changed {
		return 0, nil
	}

	n := 0
	for i, r := range updated {
		if r.Status == records[i].Status {
			continue
		}
		if err := s.repos.Doses.Update(ctx, r); err != nil {
			return n, fmt.Errorf("update dose %s: %w", r.ID, err)
		}
		s.doses[r.ID] = r
		n++
	}
	return n, nil
}

// Score devuelve el score ponderado y el crudo del sujeto.
func (s *Service) Score(ctx context.Context, subjectID string) (compliance.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subjects[subjectID]; !ok {
		return compliance.Result{}, notFound("subject", subjectID)
	}
	return compliance.Score(s.subjectDosesLocked(subjectID), s.now()), nil
}

func (s *Service) Report(ctx context.Context, subjectID string) (compliance.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subjects[subjectID]; !ok {
		return compliance.Report{}, notFound("subject", subjectID)
	}
	return compliance.Summarize(s.subjectDosesLocked(subjectID), s.now()), nil
}

package tracker

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"vaccine-tracker/internal/domain/reminders"

	"github.com/google/uuid"
)

type ScheduleReminderInput struct {
	DoseID    string
	SubjectID string
	FireAt    time.Time
	Message   string
}

// ScheduleReminder crea y arma un reminder para una dosis del sujeto.
// FireAt en el pasado se acepta: se dispara en la próxima pasada del scheduler.
// No se evitan duplicados sobre la misma dosis.
func (s *Service) ScheduleReminder(ctx context.Context, in ScheduleReminderInput) (reminders.Reminder, error) {
	if in.FireAt.IsZero() {
		return reminders.Reminder{}, fmt.Errorf("%w: fire_at required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dose, ok := s.doses[in.DoseID]
	if !ok || dose.SubjectID != in.SubjectID {
		return reminders.Reminder{}, notFound("dose", in.DoseID)
	}

	msg := strings.TrimSpace(in.Message)
	if msg == "" {
		msg = fmt.Sprintf("%s is due on %s", dose.DoseName, dose.DueDate.Format(time.DateOnly))
	}

	r := reminders.Reminder{
		ID:        uuid.NewString(),
		DoseID:    dose.ID,
		SubjectID: dose.SubjectID,
		FireAt:    in.FireAt,
		Message:   msg,
		CreatedAt: s.now(),
	}

	if err := s.repos.Reminders.Create(ctx, r); err != nil {
		return reminders.Reminder{}, fmt.Errorf("create reminder: %w", err)
	}
	s.reminders[r.ID] = r
	s.sched.Arm(r.ID, r.FireAt)

	return r, nil
}

// CancelReminder borra el reminder; si no se disparó todavía, ya no se dispara.
func (s *Service) CancelReminder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reminders[id]; !ok {
		return notFound("reminder", id)
	}
	if err := s.repos.Reminders.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	delete(s.reminders, id)
	s.sched.Disarm(id)

	return nil
}

func (s *Service) GetReminder(ctx context.Context, id string) (reminders.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reminders[id]
	if !ok {
		return reminders.Reminder{}, notFound("reminder", id)
	}
	return r, nil
}

func (s *Service) ListReminders(ctx context.Context, subjectID string) ([]reminders.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subjects[subjectID]; !ok {
		return nil, notFound("subject", subjectID)
	}

	out := make([]reminders.Reminder, 0)
	for _, r := range s.reminders {
		if r.SubjectID == subjectID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FireAt.Before(out[j].FireAt)
	})
	return out, nil
}

// FireReminder marca el reminder como consumido y emite su notificación.
// Devuelve false si no existe (cancelado) o ya estaba consumido: nunca dispara dos veces.
func (s *Service) FireReminder(ctx context.Context, id string) bool {
	s.mu.Lock()
	r, ok := s.reminders[id]
	if !ok || r.Consumed {
		s.mu.Unlock()
		return false
	}

	r.Consumed = true
	if err := s.repos.Reminders.Update(ctx, r); err != nil {
		// se mantiene consumido en memoria: preferimos no repetir la notificación en este proceso
		s.log.Error("persist consumed reminder failed", map[string]any{"reminder_id": id, "error": err})
	}
	s.reminders[id] = r
	s.sched.Disarm(id)
	s.mu.Unlock()

	s.dispatch(ctx, reminders.Notification{
		ReminderID: r.ID,
		DoseID:     r.DoseID,
		SubjectID:  r.SubjectID,
		Message:    r.Message,
		FireAt:     r.FireAt,
		FiredAt:    s.now(),
	})
	return true
}

// FireDue dispara, en una sola pasada, todos los reminders vencidos según el reloj.
func (s *Service) FireDue(ctx context.Context) int {
	n := 0
	for _, id := range s.sched.PopDue(s.now()) {
		if s.FireReminder(ctx, id) {
			n++
		}
	}
	return n
}

// RunScheduler bloquea disparando reminders hasta que ctx se cancele.
func (s *Service) RunScheduler(ctx context.Context) error {
	return s.sched.Run(ctx, func(ctx context.Context, id string) {
		s.FireReminder(ctx, id)
	})
}

// Wait espera a que terminen las notificaciones en vuelo.
func (s *Service) Wait() {
	s.inflight.Wait()
}

func (s *Service) dispatch(ctx context.Context, n reminders.Notification) {
	// la notificación sobrevive a la cancelación del loop que la disparó
	ctx = context.WithoutCancel(ctx)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		if err := s.notifier.Notify(ctx, n); err != nil {
			s.log.Error("notify reminder failed", map[string]any{
				"reminder_id": n.ReminderID,
				"subject_id":  n.SubjectID,
				"error":       err,
			})
			return
		}
		s.log.Debug("reminder fired", map[string]any{"reminder_id": n.ReminderID, "dose_id": n.DoseID})
	}()
}

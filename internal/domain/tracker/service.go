package tracker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"vaccine-tracker/internal/domain/doses"
	"vaccine-tracker/internal/domain/reminders"
	"vaccine-tracker/internal/domain/schedule"
	"vaccine-tracker/internal/domain/subjects"
	"vaccine-tracker/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Repositories struct {
	Subjects  subjects.Repository
	Doses     doses.Repository
	Reminders reminders.Repository
}

// Service es el store explícito del motor: un único mutex protege sujetos,
// dosis y reminders, y cada escritura a persistencia ocurre bajo ese mismo lock.
type Service struct {
	mu sync.Mutex

	subjects  map[string]subjects.Subject
	doses     map[string]doses.DoseRecord
	reminders map[string]reminders.Reminder

	// dosis por sujeto, para no recorrer todo el working set
	bySubject map[string][]string

	repos    Repositories
	template schedule.Template
	now      func() time.Time
	notifier reminders.Notifier
	sched    *reminders.Scheduler
	log      logger.Logger

	inflight sync.WaitGroup
}

type Option func(*Service)

// WithClock reemplaza time.Now; sweep, score y disparos usan este mismo reloj.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithTemplate(t schedule.Template) Option {
	return func(s *Service) { s.template = t }
}

func WithNotifier(n reminders.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(repos Repositories, opts ...Option) *Service {
	s := &Service{
		subjects:  make(map[string]subjects.Subject),
		doses:     make(map[string]doses.DoseRecord),
		reminders: make(map[string]reminders.Reminder),
		bySubject: make(map[string][]string),
		repos:     repos,
		template:  schedule.Canonical(),
		now:       time.Now,
		notifier:  reminders.NotifierFunc(func(context.Context, reminders.Notification) error { return nil }),
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	// el scheduler lee el reloj a través del service para que un override en tests aplique a ambos
	s.sched = reminders.NewScheduler(func() time.Time { return s.now() })
	return s
}

// Load reemplaza el working set con lo persistido y vuelve a armar los
// reminders no consumidos a partir de su FireAt.
func (s *Service) Load(ctx context.Context) error {
	subs, err := s.repos.Subjects.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load subjects: %w", err)
	}
	recs, err := s.repos.Doses.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load doses: %w", err)
	}
	rems, err := s.repos.Reminders.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load reminders: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range s.reminders {
		s.sched.Disarm(id)
	}

	s.subjects = make(map[string]subjects.Subject, len(subs))
	s.doses = make(map[string]doses.DoseRecord, len(recs))
	s.reminders = make(map[string]reminders.Reminder, len(rems))
	s.bySubject = make(map[string][]string, len(subs))

	for _, sub := range subs {
		s.subjects[sub.ID] = sub
	}
	for _, r := range recs {
		s.doses[r.ID] = r
		s.bySubject[r.SubjectID] = append(s.bySubject[r.SubjectID], r.ID)
	}
	for subjectID := range s.bySubject {
		s.sortDosesLocked(subjectID)
	}
	for _, r := range rems {
		s.reminders[r.ID] = r
		if !r.Consumed {
			s.sched.Arm(r.ID, r.FireAt)
		}
	}

	return nil
}

// Now expone el reloj del service (útil para handlers y jobs).
func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) Template() schedule.Template {
	return s.template
}

func (s *Service) sortDosesLocked(subjectID string) {
	ids := s.bySubject[subjectID]
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := s.doses[ids[i]], s.doses[ids[j]]
		if a.Seq != b.Seq {
			return a.Seq < b.Seq
		}
		return a.DueDate.Before(b.DueDate)
	})
}

func (s *Service) subjectDosesLocked(subjectID string) []doses.DoseRecord {
	ids := s.bySubject[subjectID]
	out := make([]doses.DoseRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.doses[id])
	}
	return out
}

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
}

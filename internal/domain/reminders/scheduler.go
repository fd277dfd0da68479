package reminders

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

// FireFunc se invoca una vez por cada reminder cuyo FireAt llegó.
// Debe volver rápido: el envío de la notificación va en su propia goroutine.
type FireFunc func(ctx context.Context, id string)

// Scheduler mantiene un min-heap de (fireAt, id) y un solo timer apuntando
// al vencimiento más próximo. No hay un timer por reminder.
type Scheduler struct {
	mu    sync.Mutex
	queue fireQueue
	byID  map[string]*entry
	seq   uint64

	wake chan struct{}
	now  func() time.Time
}

func NewScheduler(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{
		byID: make(map[string]*entry),
		wake: make(chan struct{}, 1),
		now:  now,
	}
}

// Arm programa (o reprograma) id para dispararse en at.
func (s *Scheduler) Arm(id string, at time.Time) {
	s.mu.Lock()
	if e, ok := s.byID[id]; ok {
		e.at = at
		heap.Fix(&s.queue, e.index)
	} else {
		s.seq++
		e := &entry{id: id, at: at, seq: s.seq}
		heap.Push(&s.queue, e)
		s.byID[id] = e
	}
	s.mu.Unlock()

	s.notifyChange()
}

// Disarm quita id del heap. Devuelve false si no estaba armado.
func (s *Scheduler) Disarm(id string) bool {
	s.mu.Lock()
	e, ok := s.byID[id]
	if ok {
		heap.Remove(&s.queue, e.index)
		delete(s.byID, id)
	}
	s.mu.Unlock()

	if ok {
		s.notifyChange()
	}
	return ok
}

func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// NextDeadline devuelve el fireAt más próximo, si hay alguno.
func (s *Scheduler) NextDeadline() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return time.Time{}, false
	}
	return s.queue[0].at, true
}

// PopDue saca del heap todos los ids con fireAt <= now, en orden de disparo.
func (s *Scheduler) PopDue(now time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for len(s.queue) > 0 && !s.queue[0].at.After(now) {
		e := heap.Pop(&s.queue).(*entry)
		delete(s.byID, e.id)
		out = append(out, e.id)
	}
	return out
}

// Run dispara los reminders vencidos y duerme hasta el próximo vencimiento
// o hasta que Arm/Disarm cambien el heap. Termina cuando ctx se cancela.
func (s *Scheduler) Run(ctx context.Context, fire FireFunc) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		for _, id := range s.PopDue(s.now()) {
			fire(ctx, id)
		}

		var tick <-chan time.Time
		if next, ok := s.NextDeadline(); ok {
			wait := next.Sub(s.now())
			if wait < 0 {
				wait = 0
			}
			timer.Reset(wait)
			tick = timer.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.wake:
			timer.Stop()
		case <-tick:
		}
	}
}

func (s *Scheduler) notifyChange() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

type entry struct {
	id    string
	at    time.Time
	seq   uint64
	index int
}

// fireQueue implementa heap.Interface; empates por orden de inserción.
type fireQueue []*entry

func (q fireQueue) Len() int { return len(q) }

func (q fireQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}

func (q fireQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *fireQueue) Push(x any) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *fireQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

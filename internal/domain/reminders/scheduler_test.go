package reminders

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func TestScheduler_PopDue_InFireOrder(t *testing.T) {
	s := NewScheduler(func() time.Time { return base })

	s.Arm("c", base.Add(3*time.Minute))
	s.Arm("a", base.Add(1*time.Minute))
	s.Arm("b", base.Add(2*time.Minute))
	s.Arm("a2", base.Add(1*time.Minute)) // empate: orden de inserción
	s.Arm("later", base.Add(time.Hour))

	assert.Empty(t, s.PopDue(base))
	assert.Equal(t, []string{"a", "a2", "b", "c"}, s.PopDue(base.Add(3*time.Minute)))
	assert.Equal(t, 1, s.Pending())

	next, ok := s.NextDeadline()
	require.True(t, ok)
	assert.Equal(t, base.Add(time.Hour), next)
}

func TestScheduler_Disarm(t *testing.T) {
	s := NewScheduler(nil)

	s.Arm("a", base)
	s.Arm("b", base.Add(time.Second))

	assert.True(t, s.Disarm("a"))
	assert.False(t, s.Disarm("a"))
	assert.False(t, s.Disarm("unknown"))

	assert.Equal(t, []string{"b"}, s.PopDue(base.Add(time.Minute)))
	_, ok := s.NextDeadline()
	assert.False(t, ok)
}

func TestScheduler_ArmTwiceReschedules(t *testing.T) {
	s := NewScheduler(nil)

	s.Arm("a", base)
	s.Arm("a", base.Add(time.Hour))

	assert.Equal(t, 1, s.Pending())
	assert.Empty(t, s.PopDue(base.Add(time.Minute)))
	assert.Equal(t, []string{"a"}, s.PopDue(base.Add(time.Hour)))
}

func TestScheduler_ManyEntries(t *testing.T) {
	s := NewScheduler(nil)
	for i := 0; i < 500; i++ {
		// orden inverso a propósito
		s.Arm(string(rune('A'+i%26))+time.Duration(i).String(), base.Add(time.Duration(500-i)*time.Second))
	}
	got := s.PopDue(base.Add(time.Hour))
	require.Len(t, got, 500)
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_Run_FiresPastAndFutureDeadlines(t *testing.T) {
	s := NewScheduler(time.Now)

	var (
		mu    sync.Mutex
		fired []string
	)
	done := make(chan struct{}, 4)
	fire := func(_ context.Context, id string) {
		mu.Lock()
		fired = append(fired, id)
		mu.Unlock()
		done <- struct{}{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx, fire) }()

	s.Arm("past", time.Now().Add(-time.Second))
	s.Arm("soon", time.Now().Add(30*time.Millisecond))
	s.Arm("cancelled", time.Now().Add(40*time.Millisecond))
	require.True(t, s.Disarm("cancelled"))

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for fire #%d", i+1)
		}
	}

	// margen para un disparo indebido de "cancelled"
	time.Sleep(60 * time.Millisecond)

	cancel()
	assert.True(t, errors.Is(<-errCh, context.Canceled))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"past", "soon"}, fired)
}

func TestMulti_DeliversToAllAndJoinsErrors(t *testing.T) {
	var got []string
	ok := NotifierFunc(func(_ context.Context, n Notification) error {
		got = append(got, n.ReminderID)
		return nil
	})
	failing := NotifierFunc(func(_ context.Context, n Notification) error {
		return errors.New("sink down")
	})

	err := Multi{failing, nil, ok}.Notify(context.Background(), Notification{ReminderID: "r1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink down")
	assert.Equal(t, []string{"r1"}, got)
}

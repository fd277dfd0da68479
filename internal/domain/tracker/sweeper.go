package tracker

import (
	"context"
	"time"
)

const DefaultSweepInterval = time.Hour

// RunSweeper corre un sweep al arrancar y luego en cada tick.
// No hay caller al que devolverle errores, así que se loguean.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	s.sweepAndLog(ctx)

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.sweepAndLog(ctx)
		}
	}
}

func (s *Service) sweepAndLog(ctx context.Context) {
	start := time.Now()
	n, err := s.Sweep(ctx)
	if err != nil {
		s.log.Error("sweep failed", map[string]any{"error": err, "changed": n})
		return
	}
	s.log.Info("sweep completed", map[string]any{
		"changed":  n,
		"duration": time.Since(start).String(),
	})
}

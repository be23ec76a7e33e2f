package scheduler

import (
	"context"
	"time"

	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingCompleter interface {
	CompleteFinished(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler закрывает подтвержденные брони с прошедшей датой выезда.
// Первый проход выполняется сразу при старте, дальше раз в interval.
// Каждый проход ограничен по времени самим interval.
type Scheduler struct {
	completer bookingCompleter
	interval  time.Duration
	logger    logger.Logger
}

func New(completer bookingCompleter, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{
		completer: completer,
		interval:  interval,
		logger:    logger,
	}
}

// Start блокируется до отмены ctx.
func (s *Scheduler) Start(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	s.logger.Info("stay completion scheduler started",
		logger.Duration("interval", s.interval),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for pass := 1; ; pass++ {
		s.completeStays(ctx, pass)

		select {
		case <-ctx.Done():
			s.logger.Info("stay completion scheduler stopped", logger.Int("passes", pass))
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) completeStays(ctx context.Context, pass int) {
	if ctx.Err() != nil {
		return
	}

	runCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	started := time.Now()
	completed, err := s.completer.CompleteFinished(runCtx)
	if err != nil {
		s.logger.Error("stay completion pass failed",
			logger.Int("pass", pass),
			logger.String("error", err.Error()),
		)
		return
	}
	if len(completed) == 0 {
		return
	}

	codes := make([]string, 0, len(completed))
	for _, b := range completed {
		codes = append(codes, b.ConfirmationCode)
	}

	s.logger.Info("stays completed",
		logger.Int("pass", pass),
		logger.Int("count", len(completed)),
		logger.Any("confirmation_codes", codes),
		logger.Duration("took", time.Since(started)),
	)
}

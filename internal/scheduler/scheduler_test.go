package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_CompletesOnStart(t *testing.T) {
	completer := mocks.NewMockBookingCompleter(t)
	log := newTestLogger(t)

	s := New(completer, time.Hour, log)

	completed := []*domain.Booking{
		{ID: "b1", RoomID: "r1", ConfirmationCode: "JD123XYZ", Status: domain.BookingStatusCompleted},
	}
	completer.EXPECT().CompleteFinished(mock.Anything).Return(completed, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.Len(t, completer.Calls, 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	completer := mocks.NewMockBookingCompleter(t)
	log := newTestLogger(t)

	s := New(completer, 30*time.Millisecond, log)

	completer.EXPECT().CompleteFinished(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	completer := mocks.NewMockBookingCompleter(t)
	log := newTestLogger(t)

	s := New(completer, time.Second, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}

	assert.Empty(t, completer.Calls)
}

func TestScheduler_MultipleTicks(t *testing.T) {
	completer := mocks.NewMockBookingCompleter(t)
	log := newTestLogger(t)

	s := New(completer, 30*time.Millisecond, log)

	completer.EXPECT().CompleteFinished(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 3)
}

func TestScheduler_PassHasDeadline(t *testing.T) {
	completer := mocks.NewMockBookingCompleter(t)
	log := newTestLogger(t)

	s := New(completer, time.Hour, log)

	completer.EXPECT().CompleteFinished(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]*domain.Booking, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Hour), deadline, time.Minute)
			return nil, nil
		}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(30*time.Millisecond, cancel)

	s.Start(ctx)
}

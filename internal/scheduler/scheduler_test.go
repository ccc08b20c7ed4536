package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/unnita1235/PropertyRentalApplication/internal/scheduler/mocks"
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

func TestScheduler_Tick_RejectsExpired(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 50*time.Millisecond, log)

	rejected := []*domain.Booking{
		{ID: 1, PropertyID: 2, CustomerID: 3},
	}
	expirer.EXPECT().RejectExpired(mock.Anything).Return(rejected, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 50*time.Millisecond, log)

	expirer.EXPECT().RejectExpired(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

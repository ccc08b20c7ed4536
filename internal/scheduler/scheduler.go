package scheduler

import (
	"context"
	"time"

	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingExpirer interface {
	RejectExpired(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically rejects Pending bookings whose start date has
// already passed.
type Scheduler struct {
	bookingService bookingExpirer
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	rejected, err := s.bookingService.RejectExpired(ctx)
	if err != nil {
		s.logger.Error("failed to reject expired bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range rejected {
		s.logger.Info("booking expired",
			logger.Int64("booking_id", b.ID),
			logger.Int64("property_id", b.PropertyID),
			logger.Int64("customer_id", b.CustomerID),
		)
	}
}

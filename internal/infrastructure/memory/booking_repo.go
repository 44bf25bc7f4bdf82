package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/quickdeliver/backend/internal/domain"
)

type BookingRepo struct {
	mu         sync.RWMutex
	nextID     int64
	byTracking map[string]domain.Booking
}

func NewBookingRepo() *BookingRepo {
	return &BookingRepo{byTracking: make(map[string]domain.Booking)}
}

func (r *BookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byTracking[b.TrackingID]; exists {
		return domain.Booking{}, domain.ErrTrackingIDTaken()
	}

	r.nextID++
	b.ID = r.nextID
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	r.byTracking[b.TrackingID] = b
	return b, nil
}

func (r *BookingRepo) GetByTrackingID(ctx context.Context, trackingID string) (domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byTracking[trackingID]
	if !ok {
		return domain.Booking{}, domain.ErrBookingNotFound()
	}
	return b, nil
}

func (r *BookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Booking, 0, len(r.byTracking))
	for _, b := range r.byTracking {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/quickdeliver/backend/internal/domain"
)

type DeliveryRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]domain.Delivery
}

func NewDeliveryRepo() *DeliveryRepo {
	return &DeliveryRepo{rows: make(map[int64]domain.Delivery)}
}

func (r *DeliveryRepo) Create(ctx context.Context, d domain.Delivery) (domain.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	d.ID = r.nextID
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	r.rows[d.ID] = d
	return d, nil
}

func matchesSearch(d domain.Delivery, search string) bool {
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(d.Item), s) ||
		strings.Contains(strings.ToLower(d.Address), s) ||
		strings.Contains(strings.ToLower(d.CustomerName), s)
}

func (r *DeliveryRepo) List(ctx context.Context, status, search string, offset, limit int) ([]domain.Delivery, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []domain.Delivery
	for _, d := range r.rows {
		if status != "" && d.Status != status {
			continue
		}
		if search != "" && !matchesSearch(d, search) {
			continue
		}
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *DeliveryRepo) GetByID(ctx context.Context, id int64) (domain.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.rows[id]
	if !ok {
		return domain.Delivery{}, domain.ErrDeliveryNotFound()
	}
	return d, nil
}

func (r *DeliveryRepo) UpdateStatus(ctx context.Context, id int64, status string) (domain.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.rows[id]
	if !ok {
		return domain.Delivery{}, domain.ErrDeliveryNotFound()
	}
	d.Status = status
	r.rows[id] = d
	return d, nil
}

func (r *DeliveryRepo) Update(ctx context.Context, in domain.Delivery) (domain.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.rows[in.ID]
	if !ok {
		return domain.Delivery{}, domain.ErrDeliveryNotFound()
	}
	if in.Item != "" {
		d.Item = in.Item
	}
	if in.CustomerName != "" {
		d.CustomerName = in.CustomerName
	}
	if in.Address != "" {
		d.Address = in.Address
	}
	if in.Date != "" {
		d.Date = in.Date
	}
	if in.Status != "" {
		d.Status = in.Status
	}
	r.rows[in.ID] = d
	return d, nil
}

func (r *DeliveryRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return domain.ErrDeliveryNotFound()
	}
	delete(r.rows, id)
	return nil
}

func (r *DeliveryRepo) StatusCounts(ctx context.Context) (domain.DeliveryStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var s domain.DeliveryStats
	for _, d := range r.rows {
		switch d.Status {
		case domain.DeliveryPending:
			s.Pending++
		case domain.DeliveryInTransit:
			s.InTransit++
		case domain.DeliveryDelivered:
			s.Delivered++
		}
		s.Total++
	}
	return s, nil
}

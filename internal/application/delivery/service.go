package delivery

import (
	"context"
	"math"
	"strings"

	"github.com/quickdeliver/backend/internal/domain"
)

// Average figure shown on the dashboard, in days. Per-delivery timing
// is not recorded.
const averageDeliveryDays = 2.5

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Repo is the persistence port for delivery orders.
type Repo interface {
	Create(ctx context.Context, d domain.Delivery) (domain.Delivery, error)
	List(ctx context.Context, status, search string, offset, limit int) ([]domain.Delivery, int, error)
	GetByID(ctx context.Context, id int64) (domain.Delivery, error)
	UpdateStatus(ctx context.Context, id int64, status string) (domain.Delivery, error)
	Update(ctx context.Context, d domain.Delivery) (domain.Delivery, error)
	Delete(ctx context.Context, id int64) error
	StatusCounts(ctx context.Context) (domain.DeliveryStats, error)
}

type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Item         string
	CustomerName string
	Address      string
	Date         string
	Status       string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Delivery, error) {
	in.Item = strings.TrimSpace(in.Item)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Address = strings.TrimSpace(in.Address)
	in.Date = strings.TrimSpace(in.Date)

	if in.Item == "" {
		return domain.Delivery{}, domain.ErrMissingField("item")
	}
	if in.CustomerName == "" {
		return domain.Delivery{}, domain.ErrMissingField("customer_name")
	}
	if in.Address == "" {
		return domain.Delivery{}, domain.ErrMissingField("address")
	}
	if in.Date == "" {
		return domain.Delivery{}, domain.ErrMissingField("date")
	}

	if in.Status == "" {
		in.Status = domain.DeliveryPending
	}
	if !domain.IsValidDeliveryStatus(in.Status) {
		return domain.Delivery{}, domain.ErrInvalidStatus(in.Status)
	}

	return s.repo.Create(ctx, domain.Delivery{
		Item:         in.Item,
		CustomerName: in.CustomerName,
		Address:      in.Address,
		Date:         in.Date,
		Status:       in.Status,
	})
}

type ListParams struct {
	Status string
	Search string
	Page   int
	Limit  int
}

type ListResult struct {
	Items      []domain.Delivery
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

func (s *Service) List(ctx context.Context, p ListParams) (ListResult, error) {
	if p.Status != "" && !domain.IsValidDeliveryStatus(p.Status) {
		return ListResult{}, domain.ErrInvalidStatus(p.Status)
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}

	offset := (p.Page - 1) * p.Limit
	items, total, err := s.repo.List(ctx, p.Status, strings.TrimSpace(p.Search), offset, p.Limit)
	if err != nil {
		return ListResult{}, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}

	return ListResult{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (domain.Delivery, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return domain.Delivery{}, domain.ErrMissingField("status")
	}
	if !domain.IsValidDeliveryStatus(status) {
		return domain.Delivery{}, domain.ErrInvalidStatus(status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

type UpdateInput struct {
	Item         string
	CustomerName string
	Address      string
	Date         string
	Status       string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (domain.Delivery, error) {
	if in.Item == "" && in.CustomerName == "" && in.Address == "" && in.Date == "" && in.Status == "" {
		return domain.Delivery{}, domain.ErrInvalidField("delivery", "nothing to update")
	}
	if in.Status != "" && !domain.IsValidDeliveryStatus(in.Status) {
		return domain.Delivery{}, domain.ErrInvalidStatus(in.Status)
	}
	return s.repo.Update(ctx, domain.Delivery{
		ID:           id,
		Item:         strings.TrimSpace(in.Item),
		CustomerName: strings.TrimSpace(in.CustomerName),
		Address:      strings.TrimSpace(in.Address),
		Date:         strings.TrimSpace(in.Date),
		Status:       in.Status,
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Stats aggregates the dashboard figures. Success rate is
// delivered/total as a rounded percentage; zero when there are no rows.
func (s *Service) Stats(ctx context.Context) (domain.DeliveryStats, error) {
	stats, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return domain.DeliveryStats{}, err
	}

	if stats.Total > 0 {
		stats.SuccessRate = int(math.Round(float64(stats.Delivered) / float64(stats.Total) * 100))
	}
	stats.AverageDeliveryTime = averageDeliveryDays
	return stats, nil
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/quickdeliver/backend/internal/domain"
)

type SupportRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []domain.SupportSubmission
}

func NewSupportRepo() *SupportRepo {
	return &SupportRepo{}
}

func (r *SupportRepo) Create(ctx context.Context, s domain.SupportSubmission) (domain.SupportSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	s.ID = r.nextID
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	r.rows = append(r.rows, s)
	return s, nil
}

package postgres

import (
	"context"
	"database/sql"

	"github.com/quickdeliver/backend/internal/domain"
)

type SupportRepo struct {
	db *sql.DB
}

func NewSupportRepo(db *sql.DB) *SupportRepo {
	return &SupportRepo{db: db}
}

func (r *SupportRepo) Create(ctx context.Context, s domain.SupportSubmission) (domain.SupportSubmission, error) {
	const q = `
INSERT INTO support_submissions (name, email, phone, amount, message)
VALUES ($1,$2,$3,$4,$5)
RETURNING id, name, email, phone, amount, message, created_at;
`
	var (
		out     domain.SupportSubmission
		phone   *string
		message *string
	)
	err := r.db.QueryRowContext(ctx, q,
		s.Name, s.Email, s.Phone, s.Amount, s.Message,
	).Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&phone,
		&out.Amount,
		&message,
		&out.CreatedAt,
	)
	if err != nil {
		return domain.SupportSubmission{}, domain.ErrDBUnavailable(err)
	}
	if phone != nil {
		out.Phone = *phone
	}
	if message != nil {
		out.Message = *message
	}
	return out, nil
}

package support

import (
	"context"
	"strings"

	"github.com/quickdeliver/backend/internal/domain"
)

// Repo is the persistence port for support submissions.
type Repo interface {
	Create(ctx context.Context, s domain.SupportSubmission) (domain.SupportSubmission, error)
}

// Mailer covers both sides of a submission: the acknowledgement back to
// the supporter and the notification to the admin inbox.
type Mailer interface {
	SendSupportAck(ctx context.Context, to, name, amount string) error
	SendSupportNotification(ctx context.Context, name, email, phone, amount, message string) error
}

type Service struct {
	repo   Repo
	mailer Mailer
}

func NewService(repo Repo, mailer Mailer) *Service {
	return &Service{repo: repo, mailer: mailer}
}

type CreateInput struct {
	Name    string
	Email   string
	Phone   string
	Amount  string
	Message string
}

// Create stores the submission, then sends both emails. Either send
// failing surfaces after the row is stored.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.SupportSubmission, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Amount = strings.TrimSpace(in.Amount)

	if in.Name == "" {
		return domain.SupportSubmission{}, domain.ErrMissingField("name")
	}
	if in.Email == "" {
		return domain.SupportSubmission{}, domain.ErrMissingField("email")
	}
	if in.Amount == "" {
		return domain.SupportSubmission{}, domain.ErrMissingField("amount")
	}

	stored, err := s.repo.Create(ctx, domain.SupportSubmission{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   strings.TrimSpace(in.Phone),
		Amount:  in.Amount,
		Message: strings.TrimSpace(in.Message),
	})
	if err != nil {
		return domain.SupportSubmission{}, err
	}

	if err := s.mailer.SendSupportAck(ctx, stored.Email, stored.Name, stored.Amount); err != nil {
		return stored, domain.ErrMailDeliveryFailed(err)
	}
	if err := s.mailer.SendSupportNotification(ctx, stored.Name, stored.Email, stored.Phone, stored.Amount, stored.Message); err != nil {
		return stored, domain.ErrMailDeliveryFailed(err)
	}
	return stored, nil
}

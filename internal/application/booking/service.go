package booking

import (
	"context"
	"strings"
	"time"

	"github.com/quickdeliver/backend/internal/domain"
)

// Attempts at a fresh tracking ID before giving up on collisions.
const maxTrackingAttempts = 5

// Repo is the persistence port for bookings.
type Repo interface {
	Create(ctx context.Context, b domain.Booking) (domain.Booking, error)
	GetByTrackingID(ctx context.Context, trackingID string) (domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

// Mailer sends the confirmation after a booking is stored.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, to, name, service, trackingID string) error
}

type Service struct {
	repo     Repo
	tracking TrackingIDGenerator
	mailer   Mailer
}

func NewService(repo Repo, tracking TrackingIDGenerator, mailer Mailer) *Service {
	return &Service{
		repo:     repo,
		tracking: tracking,
		mailer:   mailer,
	}
}

type CreateInput struct {
	Service      string
	CustomerName string
	Email        string
	Phone        string
}

// Create stores the booking and then sends the confirmation email. A
// failed send surfaces to the caller; the stored row stays.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Booking, error) {
	in.Service = strings.TrimSpace(in.Service)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Service == "" {
		return domain.Booking{}, domain.ErrMissingField("service")
	}
	if in.CustomerName == "" {
		return domain.Booking{}, domain.ErrMissingField("customer_name")
	}
	if in.Email == "" {
		return domain.Booking{}, domain.ErrMissingField("email")
	}

	var (
		stored domain.Booking
		err    error
	)
	for attempt := 0; attempt < maxTrackingAttempts; attempt++ {
		var trackingID string
		trackingID, err = s.tracking.Generate()
		if err != nil {
			return domain.Booking{}, domain.ErrRandomFailed(err)
		}

		stored, err = s.repo.Create(ctx, domain.Booking{
			Service:      in.Service,
			CustomerName: in.CustomerName,
			Email:        in.Email,
			Phone:        strings.TrimSpace(in.Phone),
			TrackingID:   trackingID,
		})
		if err == nil {
			break
		}
		if !domain.Is(err, "tracking_id_taken") {
			return domain.Booking{}, err
		}
	}
	if err != nil {
		return domain.Booking{}, err
	}

	if err := s.mailer.SendBookingConfirmation(ctx, stored.Email, stored.CustomerName, stored.Service, stored.TrackingID); err != nil {
		return stored, domain.ErrMailDeliveryFailed(err)
	}
	return stored, nil
}

// TrackResult is a booking plus its tracking timeline.
type TrackResult struct {
	Booking  domain.Booking
	Status   string
	Timeline []domain.TimelineEvent
}

// Track looks a booking up by tracking ID. The timeline beyond the
// first step is canned; only the first step carries the real creation
// time.
func (s *Service) Track(ctx context.Context, trackingID string) (TrackResult, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return TrackResult{}, domain.ErrMissingField("tracking_id")
	}

	b, err := s.repo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return TrackResult{}, err
	}

	return TrackResult{
		Booking:  b,
		Status:   "In Transit",
		Timeline: cannedTimeline(b.CreatedAt),
	}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.List(ctx)
}

const timelineDateFormat = "2006-01-02 15:04"

func cannedTimeline(createdAt time.Time) []domain.TimelineEvent {
	return []domain.TimelineEvent{
		{Status: "Package received", Date: createdAt.Format(timelineDateFormat), Completed: true},
		{Status: "In transit to distribution center", Date: createdAt.Add(12 * time.Hour).Format(timelineDateFormat), Completed: true},
		{Status: "Arrived at distribution center", Date: createdAt.Add(24 * time.Hour).Format(timelineDateFormat), Completed: true},
		{Status: "Out for delivery", Date: createdAt.Add(48 * time.Hour).Format(timelineDateFormat), Completed: false},
		{Status: "Delivered", Date: "Pending", Completed: false},
	}
}

package dto

import (
	"strings"

	"github.com/quickdeliver/backend/internal/domain"
)

type CreateBookingRequest struct {
	Service      string `json:"service" validate:"required"`
	CustomerName string `json:"customer_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
}

func (r *CreateBookingRequest) Validate() error {
	r.Service = strings.TrimSpace(r.Service)
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	return checkStruct(r)
}

type BookingView struct {
	ID           int64  `json:"id"`
	Service      string `json:"service"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	TrackingID   string `json:"tracking_id"`
	CreatedAt    string `json:"created_at"`
}

func ToBookingView(b domain.Booking) BookingView {
	return BookingView{
		ID:           b.ID,
		Service:      b.Service,
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Phone:        b.Phone,
		TrackingID:   b.TrackingID,
		CreatedAt:    b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type CreateBookingResponse struct {
	Message    string `json:"message"`
	TrackingID string `json:"tracking_id"`
}

type TimelineEventView struct {
	Status    string `json:"status"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type TrackBookingResponse struct {
	Booking  BookingView         `json:"booking"`
	Status   string              `json:"status"`
	Timeline []TimelineEventView `json:"timeline"`
}

func ToTimelineViews(events []domain.TimelineEvent) []TimelineEventView {
	out := make([]TimelineEventView, 0, len(events))
	for _, e := range events {
		out = append(out, TimelineEventView{Status: e.Status, Date: e.Date, Completed: e.Completed})
	}
	return out
}

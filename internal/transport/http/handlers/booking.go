package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quickdeliver/backend/internal/application/booking"
	"github.com/quickdeliver/backend/internal/logger"
	"github.com/quickdeliver/backend/internal/transport/http/dto"
	"github.com/quickdeliver/backend/internal/transport/http/response"
)

type BookingHandler struct {
	svc *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	b, err := h.svc.Create(r.Context(), booking.CreateInput{
		Service:      req.Service,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("tracking_id", b.TrackingID).
		Msg("booking_created")

	response.Created(w, dto.CreateBookingResponse{
		Message:    "Booking created successfully!",
		TrackingID: b.TrackingID,
	})
}

func (h *BookingHandler) Track(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Track(r.Context(), chi.URLParam(r, "trackingID"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.TrackBookingResponse{
		Booking:  dto.ToBookingView(res.Booking),
		Status:   res.Status,
		Timeline: dto.ToTimelineViews(res.Timeline),
	})
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.List(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	out := make([]dto.BookingView, 0, len(all))
	for _, b := range all {
		out = append(out, dto.ToBookingView(b))
	}
	response.OK(w, out)
}

package http_handlers

import (
	"net/http"

	"github.com/quickdeliver/backend/internal/application/support"
	"github.com/quickdeliver/backend/internal/logger"
	"github.com/quickdeliver/backend/internal/transport/http/dto"
	"github.com/quickdeliver/backend/internal/transport/http/response"
)

type SupportHandler struct {
	svc *support.Service
}

func NewSupportHandler(svc *support.Service) *SupportHandler {
	return &SupportHandler{svc: svc}
}

func (h *SupportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SupportRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	s, err := h.svc.Create(r.Context(), support.CreateInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Amount:  req.Amount,
		Message: req.Message,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("submission_id", s.ID).
		Msg("support_submission_created")

	response.Created(w, dto.SupportResponse{
		Message: "Thank you for your support!",
		ID:      s.ID,
	})
}

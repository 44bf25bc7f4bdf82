package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quickdeliver/backend/internal/application/auth"
	"github.com/quickdeliver/backend/internal/domain"
	"github.com/quickdeliver/backend/internal/logger"
	"github.com/quickdeliver/backend/internal/transport/http/dto"
	"github.com/quickdeliver/backend/internal/transport/http/middleware"
	"github.com/quickdeliver/backend/internal/transport/http/response"
)

// AdminHandler covers the user-management surface behind the admin gate.
type AdminHandler struct {
	svc *auth.Service
}

func NewAdminHandler(svc *auth.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.ToUserViews(users))
}

func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	targetID := chi.URLParam(r, "id")

	var req dto.SetUserRoleRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.SetUserRole(r.Context(), claims.UserID, targetID, req.Role); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("actor_id", claims.UserID).
		Str("target_id", targetID).
		Str("role", req.Role).
		Msg("user_role_changed")

	response.OK(w, dto.StatusResponse{Status: "ok"})
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	targetID := chi.URLParam(r, "id")

	if err := h.svc.DeleteUser(r.Context(), claims.UserID, targetID); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("actor_id", claims.UserID).
		Str("target_id", targetID).
		Msg("user_deleted")

	response.OK(w, dto.StatusResponse{Status: "ok"})
}

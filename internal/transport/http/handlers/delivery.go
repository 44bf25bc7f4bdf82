package http_handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quickdeliver/backend/internal/application/delivery"
	"github.com/quickdeliver/backend/internal/domain"
	"github.com/quickdeliver/backend/internal/transport/http/dto"
	"github.com/quickdeliver/backend/internal/transport/http/response"
)

type DeliveryHandler struct {
	svc *delivery.Service
}

func NewDeliveryHandler(svc *delivery.Service) *DeliveryHandler {
	return &DeliveryHandler{svc: svc}
}

func deliveryID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidField("id", "must be a positive integer")
	}
	return id, nil
}

func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDeliveryRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	d, err := h.svc.Create(r.Context(), delivery.CreateInput{
		Item:         req.Item,
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Date:         req.Date,
		Status:       req.Status,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.Created(w, dto.ToDeliveryView(d))
}

func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	res, err := h.svc.List(r.Context(), delivery.ListParams{
		Status: q.Get("status"),
		Search: q.Get("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	items := make([]dto.DeliveryView, 0, len(res.Items))
	for _, d := range res.Items {
		items = append(items, dto.ToDeliveryView(d))
	}

	response.OK(w, dto.DeliveryListResponse{
		Items:      items,
		Total:      res.Total,
		Page:       res.Page,
		Limit:      res.Limit,
		TotalPages: res.TotalPages,
	})
}

func (h *DeliveryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := deliveryID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var req dto.UpdateDeliveryStatusRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	d, err := h.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.ToDeliveryView(d))
}

func (h *DeliveryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := deliveryID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var req dto.UpdateDeliveryRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	d, err := h.svc.Update(r.Context(), id, delivery.UpdateInput{
		Item:         req.Item,
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Date:         req.Date,
		Status:       req.Status,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.ToDeliveryView(d))
}

func (h *DeliveryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := deliveryID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.StatusResponse{Status: "ok"})
}

func (h *DeliveryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.ToDeliveryStatsResponse(stats))
}

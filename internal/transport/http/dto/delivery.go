package dto

import (
	"strings"

	"github.com/quickdeliver/backend/internal/domain"
)

type CreateDeliveryRequest struct {
	Item         string `json:"item" validate:"required"`
	CustomerName string `json:"customer_name" validate:"required"`
	Address      string `json:"address" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Status       string `json:"status" validate:"omitempty,oneof=pending in_transit delivered"`
}

func (r *CreateDeliveryRequest) Validate() error {
	r.Item = strings.TrimSpace(r.Item)
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.Address = strings.TrimSpace(r.Address)
	r.Date = strings.TrimSpace(r.Date)
	return checkStruct(r)
}

type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_transit delivered"`
}

func (r *UpdateDeliveryStatusRequest) Validate() error {
	r.Status = strings.TrimSpace(r.Status)
	return checkStruct(r)
}

type UpdateDeliveryRequest struct {
	Item         string `json:"item"`
	CustomerName string `json:"customer_name"`
	Address      string `json:"address"`
	Date         string `json:"date"`
	Status       string `json:"status" validate:"omitempty,oneof=pending in_transit delivered"`
}

func (r *UpdateDeliveryRequest) Validate() error {
	return checkStruct(r)
}

type DeliveryView struct {
	ID           int64  `json:"id"`
	Item         string `json:"item"`
	CustomerName string `json:"customer_name"`
	Address      string `json:"address"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

func ToDeliveryView(d domain.Delivery) DeliveryView {
	return DeliveryView{
		ID:           d.ID,
		Item:         d.Item,
		CustomerName: d.CustomerName,
		Address:      d.Address,
		Date:         d.Date,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type DeliveryListResponse struct {
	Items      []DeliveryView `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

type DeliveryStatsResponse struct {
	Pending             int     `json:"pending"`
	InTransit           int     `json:"in_transit"`
	Delivered           int     `json:"delivered"`
	Total               int     `json:"total"`
	SuccessRate         int     `json:"success_rate"`
	AverageDeliveryTime float64 `json:"average_delivery_time"`
}

func ToDeliveryStatsResponse(s domain.DeliveryStats) DeliveryStatsResponse {
	return DeliveryStatsResponse{
		Pending:             s.Pending,
		InTransit:           s.InTransit,
		Delivered:           s.Delivered,
		Total:               s.Total,
		SuccessRate:         s.SuccessRate,
		AverageDeliveryTime: s.AverageDeliveryTime,
	}
}

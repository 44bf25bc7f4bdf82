package dto

import "strings"

type SupportRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Amount  string `json:"amount" validate:"required"`
	Message string `json:"message"`
}

func (r *SupportRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Amount = strings.TrimSpace(r.Amount)
	return checkStruct(r)
}

type SupportResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

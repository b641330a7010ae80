package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RegisterTourCardRequest struct {
	TourID      uint   `json:"tour_id"`
	DisplayName string `json:"display_name"`
}

func (req *RegisterTourCardRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TourID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.DisplayName, validation.Length(0, 50)),
	)
}

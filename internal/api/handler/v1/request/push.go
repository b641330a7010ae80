package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type SubscribeRequest struct {
	Endpoint string `json:"endpoint"`
	P256dh   string `json:"p256dh"`
	Auth     string `json:"auth"`
}

func (req *SubscribeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Endpoint, validation.Required, is.URL),
		validation.Field(&req.P256dh, validation.Required),
		validation.Field(&req.Auth, validation.Required),
	)
}

type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}

func (req *UnsubscribeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Endpoint, validation.Required, is.URL),
	)
}

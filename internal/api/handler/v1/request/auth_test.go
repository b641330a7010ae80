package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{
		Email:           "duncan@example.com",
		Password:        "golfing123",
		ConfirmPassword: "golfing123",
		FirstName:       "Duncan",
		LastName:        "Smith",
	}

	tests := []struct {
		name    string
		mutate  func(req *SignupRequest)
		wantErr bool
	}{
		{
			name:   "valid request",
			mutate: func(req *SignupRequest) {},
		},
		{
			name:    "invalid email",
			mutate:  func(req *SignupRequest) { req.Email = "not-an-email" },
			wantErr: true,
		},
		{
			name: "password without a number",
			mutate: func(req *SignupRequest) {
				req.Password = "golfinggolf"
				req.ConfirmPassword = "golfinggolf"
			},
			wantErr: true,
		},
		{
			name: "password without a letter",
			mutate: func(req *SignupRequest) {
				req.Password = "12345678"
				req.ConfirmPassword = "12345678"
			},
			wantErr: true,
		},
		{
			name: "password too short",
			mutate: func(req *SignupRequest) {
				req.Password = "golf123"
				req.ConfirmPassword = "golf123"
			},
			wantErr: true,
		},
		{
			name:    "confirm password mismatch",
			mutate:  func(req *SignupRequest) { req.ConfirmPassword = "golfing124" },
			wantErr: true,
		},
		{
			name:    "missing first name",
			mutate:  func(req *SignupRequest) { req.FirstName = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
)

type SubmitPicksRequest struct {
	GolferIDs []int64 `json:"golfer_ids"`
}

func (req *SubmitPicksRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.GolferIDs, validation.Required, validation.Length(domain.TeamSize, domain.TeamSize)),
	)
}

package response

import "github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"

type LoginResponse struct {
	Token  string        `json:"token"`
	Member domain.Member `json:"member"`
}

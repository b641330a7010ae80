package response

import "github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"

type PaymentIntentResponse struct {
	Transaction  domain.Transaction `json:"transaction"`
	ClientSecret string             `json:"client_secret"`
}

type StandingsUpdateResponse struct {
	Message string `json:"message"`
}

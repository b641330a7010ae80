package service

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/config"
)

// PaymentProvider abstracts the card-payment backend so the transaction
// service can be tested without Stripe.
type PaymentProvider interface {
	CreateIntent(amount decimal.Decimal, memberID uint) (id, clientSecret string, err error)
	IntentSucceeded(id string) (bool, error)
}

type StripeProvider struct {
	api      *client.API
	currency string
}

func NewStripeProvider(conf *config.StripeConfig) *StripeProvider {
	api := &client.API{}
	api.Init(conf.SecretKey, nil)

	return &StripeProvider{
		api:      api,
		currency: conf.Currency,
	}
}

func (p *StripeProvider) CreateIntent(amount decimal.Decimal, memberID uint) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		// Stripe amounts are integral minor units (cents).
		Amount:   stripe.Int64(amount.Mul(decimal.NewFromInt(100)).IntPart()),
		Currency: stripe.String(p.currency),
	}
	params.AddMetadata("member_id", strconv.FormatUint(uint64(memberID), 10))

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", "", fmt.Errorf("p.api.PaymentIntents.New -> %w", err)
	}

	return intent.ID, intent.ClientSecret, nil
}

func (p *StripeProvider) IntentSucceeded(id string) (bool, error) {
	intent, err := p.api.PaymentIntents.Get(id, nil)
	if err != nil {
		return false, fmt.Errorf("p.api.PaymentIntents.Get -> %w", err)
	}

	return intent.Status == stripe.PaymentIntentStatusSucceeded, nil
}

// Package email sends league mail (welcome, payment receipts) through
// the Resend API.
package email

import (
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dreamsbydutch/pgc-tour-sub008/internal/config"
	"github.com/dreamsbydutch/pgc-tour-sub008/internal/domain"
)

type Client struct {
	client *resend.Client
	from   string
}

func NewClient(conf *config.ResendConfig) *Client {
	return &Client{
		client: resend.NewClient(conf.APIKey),
		from:   conf.From,
	}
}

func (c *Client) SendWelcome(member domain.Member) error {
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your PGC Tour account is ready. Pick up a tour card for the current season to start submitting teams.</p>",
		member.FirstName)

	return c.send(member.Email, "Welcome to the PGC Tour", html)
}

func (c *Client) SendReceipt(member domain.Member, amount decimal.Decimal, description string) error {
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>We received your payment of $%s.</p><p>%s</p>",
		member.FirstName, amount.StringFixed(2), description)

	return c.send(member.Email, "PGC Tour payment receipt", html)
}

func (c *Client) send(to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("c.client.Emails.Send -> %w", err)
	}

	zap.L().Debug("email sent", zap.String("id", sent.Id), zap.String("to", to))

	return nil
}

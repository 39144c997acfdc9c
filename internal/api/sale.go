package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

// SellCredits sells carbon credits back to the platform and returns the
// backend's confirmation message.
func (c *Client) SellCredits(ctx context.Context, quantidade decimal.Decimal) (string, error) {
	req := struct {
		QuantidadeCreditos float64 `json:"quantidadeCreditos"`
	}{quantidade.InexactFloat64()}

	var msg string
	if err := c.do(ctx, http.MethodPost, "/api/VendaCredito/vender", nil, req, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

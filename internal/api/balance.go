package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

type balanceResponse struct {
	SaldoEmConta decimal.Decimal `json:"saldoemconta"`
}

// CashBalance returns the account's cash balance.
func (c *Client) CashBalance(ctx context.Context) (decimal.Decimal, error) {
	var resp balanceResponse
	if err := c.do(ctx, http.MethodGet, "/api/Saldo/GetSaldo-dinheiro", nil, nil, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.SaldoEmConta, nil
}

// CreditBalance returns the account's carbon-credit balance in tons of CO₂.
func (c *Client) CreditBalance(ctx context.Context) (decimal.Decimal, error) {
	var resp balanceResponse
	if err := c.do(ctx, http.MethodGet, "/api/Saldo/GetSaldo-Creditos", nil, nil, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.SaldoEmConta, nil
}

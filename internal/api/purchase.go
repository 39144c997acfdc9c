package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// InitiatePurchase starts a credit purchase and returns the payment session
// (PIX QR payload + payment id) the user must settle.
func (c *Client) InitiatePurchase(ctx context.Context, valorReais decimal.Decimal, idProjeto int) (*PaymentSession, error) {
	req := struct {
		ValorReais float64 `json:"valorReais"`
		IDProjeto  int     `json:"idProjeto"`
	}{valorReais.InexactFloat64(), idProjeto}

	var sess PaymentSession
	if err := c.do(ctx, http.MethodPost, "/api/CompraCreditos/iniciar-compra", nil, req, &sess); err != nil {
		return nil, err
	}
	if sess.PagamentoID == "" {
		return nil, fmt.Errorf("compra iniciada sem id de pagamento")
	}
	return &sess, nil
}

// PaymentStatus fetches the current status of a payment. The status string
// is the payment provider's: "pending", "approved", "expired" or anything
// else the provider reports.
func (c *Client) PaymentStatus(ctx context.Context, pagamentoID string) (string, error) {
	var resp struct {
		IDPagamento string `json:"idPagamento"`
		Status      string `json:"status"`
	}
	path := "/api/Pagamento/status/" + pagamentoID
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// VerifyRecipient resolves a free-text identifier (e-mail or CNPJ) into a
// transfer target. The caller must still get explicit user confirmation
// before transferring anything.
func (c *Client) VerifyRecipient(ctx context.Context, emailOuCnpj string) (*Recipient, error) {
	q := url.Values{"emailOuCnpj": {emailOuCnpj}}

	var r Recipient
	if err := c.do(ctx, http.MethodGet, "/api/TransferirCredito/verificar-destinatario", q, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ConfirmTransfer executes a credit transfer to a previously verified
// recipient.
func (c *Client) ConfirmTransfer(ctx context.Context, destinatario string, quantidade decimal.Decimal, descricao string) error {
	req := struct {
		DestinatarioEmailOuCnpj string  `json:"destinatarioEmailOuCnpj"`
		QuantidadeCredito       float64 `json:"quantidadeCredito"`
		Descricao               string  `json:"descricao"`
	}{destinatario, quantidade.InexactFloat64(), descricao}

	return c.do(ctx, http.MethodPost, "/api/TransferirCredito/confirmarTransferenciaCredito", nil, req, nil)
}

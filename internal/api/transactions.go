package api

import (
	"context"
	"net/http"
	"net/url"
)

// TransactionHistory fetches the account's transaction history, optionally
// narrowed by date range and type.
func (c *Client) TransactionHistory(ctx context.Context, filter HistoryFilter) ([]Transaction, error) {
	q := url.Values{}
	if filter.DataInicio != "" {
		q.Set("dataInicio", filter.DataInicio)
	}
	if filter.DataFim != "" {
		q.Set("dataFim", filter.DataFim)
	}
	if filter.Tipo != "" {
		q.Set("tipo", filter.Tipo)
	}

	var resp struct {
		HistoricoDeTransacao []Transaction `json:"historicodetransacao"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/HistoricoTransacao/ConsultarHistorico", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.HistoricoDeTransacao, nil
}

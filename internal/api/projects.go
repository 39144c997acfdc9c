package api

import (
	"context"
	"net/http"
)

// ListProjects returns all sustainable projects currently offering credits.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var resp struct {
		ProjetosSustentaveis []Project `json:"projetossustentaveis"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/Projetos/ListarProjetos", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ProjetosSustentaveis, nil
}

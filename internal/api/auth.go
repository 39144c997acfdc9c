package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Login authenticates with email and password and returns the bearer token.
func (c *Client) Login(ctx context.Context, email, senha string) (string, error) {
	req := struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}{email, senha}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/Autenticacao/login", nil, req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login não retornou token")
	}
	return resp.Token, nil
}

// RequestPasswordReset asks the backend to e-mail a reset token.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	req := struct {
		Email string `json:"Email"`
	}{email}
	return c.do(ctx, http.MethodPost, "/api/RedefinicaoSenha/solicitar", nil, req, nil)
}

// ValidateResetToken reports whether a password-reset token is still valid.
// Any backend rejection maps to false rather than an error.
func (c *Client) ValidateResetToken(ctx context.Context, token string) bool {
	q := url.Values{"token": {token}}
	err := c.do(ctx, http.MethodPost, "/api/RedefinicaoSenha/validar-token", q, nil, nil)
	return err == nil
}

// UpdatePassword sets a new password using a reset token.
func (c *Client) UpdatePassword(ctx context.Context, token, novaSenha string) error {
	req := struct {
		Token     string `json:"token"`
		NovaSenha string `json:"novaSenha"`
	}{token, novaSenha}
	return c.do(ctx, http.MethodPost, "/api/RedefinicaoSenha/atualizar-senha", nil, req, nil)
}

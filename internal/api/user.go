package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
)

// Register creates a new account. The e-mail must have been verified
// beforehand via SendVerificationCode / ConfirmVerificationCode.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	return c.do(ctx, http.MethodPost, "/api/Usuario/Cadastrar", nil, reg, nil)
}

// SendVerificationCode e-mails a one-time code to the address being
// registered.
func (c *Client) SendVerificationCode(ctx context.Context, email string) error {
	req := struct {
		Email string `json:"email"`
	}{email}
	return c.do(ctx, http.MethodPost, "/api/Usuario/EnviarCodigoVerificacao", nil, req, nil)
}

// ConfirmVerificationCode checks the code the user received.
func (c *Client) ConfirmVerificationCode(ctx context.Context, email, codigo string) (bool, error) {
	req := struct {
		Email  string `json:"email"`
		Codigo string `json:"codigo"`
	}{email, codigo}

	var confirmed bool
	if err := c.do(ctx, http.MethodPost, "/api/Usuario/ConfirmarCodigoVerificacao", nil, req, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// CurrentUser returns the authenticated user's profile.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/Usuario/ConsultarUsuario", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePhone changes the account's phone number (digits only).
func (c *Client) UpdatePhone(ctx context.Context, telefone string) error {
	req := struct {
		Telefone string `json:"telefone"`
	}{telefone}
	return c.do(ctx, http.MethodPut, "/api/Usuario/EditarTelefone", nil, req, nil)
}

// ProfileImage downloads the account's profile image bytes.
func (c *Client) ProfileImage(ctx context.Context) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, "/api/Usuario/Buscar-imagem", nil, "")
}

// SaveProfileImage uploads (or replaces) the profile image as form-data.
func (c *Client) SaveProfileImage(ctx context.Context, filename string, image io.Reader) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("imagem", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, image); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	_, err = c.doRaw(ctx, http.MethodPut, "/api/Usuario/SalvarOuAtualizarImagem", &buf, w.FormDataContentType())
	return err
}

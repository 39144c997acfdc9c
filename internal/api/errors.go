package api

import (
	"errors"
	"strings"
)

// RegistrationMessage maps a 400-level backend rejection to a field-specific
// message for the registration form. The backend reports duplicates with
// free-text mentions of the offending field, so matching is by keyword.
// Unrecognized messages pass through verbatim.
func RegistrationMessage(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return "Erro ao cadastrar usuário. Tente novamente."
	}

	msg := strings.ToLower(apiErr.Message)
	if apiErr.Status == 400 {
		switch {
		case strings.Contains(msg, "email"):
			return "Este e-mail já está cadastrado."
		case strings.Contains(msg, "cnpj"):
			return "Este CNPJ já está cadastrado."
		case strings.Contains(msg, "telefone"):
			return "Este telefone já está cadastrado."
		case strings.Contains(msg, "obrigatório"):
			return "Todos os campos são obrigatórios."
		}
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return "Erro ao cadastrar usuário. Verifique os dados."
}

// BackendMessage returns the server-supplied message when err carries one,
// otherwise fallback.
func BackendMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

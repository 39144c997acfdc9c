package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationMessageEmailTaken(t *testing.T) {
	err := &APIError{Status: 400, Message: "Email já está em uso"}
	assert.Equal(t, "Este e-mail já está cadastrado.", RegistrationMessage(err))
}

func TestRegistrationMessageCNPJTaken(t *testing.T) {
	err := &APIError{Status: 400, Message: "CNPJ duplicado"}
	assert.Equal(t, "Este CNPJ já está cadastrado.", RegistrationMessage(err))
}

func TestRegistrationMessagePhoneTaken(t *testing.T) {
	err := &APIError{Status: 400, Message: "telefone já cadastrado"}
	assert.Equal(t, "Este telefone já está cadastrado.", RegistrationMessage(err))
}

func TestRegistrationMessageRequiredFields(t *testing.T) {
	err := &APIError{Status: 400, Message: "campo obrigatório ausente"}
	assert.Equal(t, "Todos os campos são obrigatórios.", RegistrationMessage(err))
}

func TestRegistrationMessagePassthrough(t *testing.T) {
	err := &APIError{Status: 400, Message: "Dados inconsistentes"}
	assert.Equal(t, "Dados inconsistentes", RegistrationMessage(err))
}

func TestRegistrationMessageNon400KeepsServerText(t *testing.T) {
	err := &APIError{Status: 409, Message: "conflito de email"}
	// Keyword mapping only applies to 400-level business rejections.
	assert.Equal(t, "conflito de email", RegistrationMessage(err))
}

func TestRegistrationMessageNetworkError(t *testing.T) {
	assert.Equal(t, "Erro ao cadastrar usuário. Tente novamente.",
		RegistrationMessage(errors.New("dial tcp: timeout")))
}

func TestBackendMessage(t *testing.T) {
	assert.Equal(t, "Saldo insuficiente",
		BackendMessage(&APIError{Status: 400, Message: "Saldo insuficiente"}, "genérico"))
	assert.Equal(t, "genérico",
		BackendMessage(&APIError{Status: 500}, "genérico"))
	assert.Equal(t, "genérico",
		BackendMessage(errors.New("boom"), "genérico"))
}

package api

import "github.com/shopspring/decimal"

// User is the authenticated account profile.
type User struct {
	ID       int    `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Empresa  string `json:"empresa"`
	CNPJ     string `json:"cnpj"`
	Telefone string `json:"telefone"`
}

// Registration is the payload for creating a new account. CNPJ and phone
// must already be demasked (digits only).
type Registration struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Senha    string `json:"senha"`
	Empresa  string `json:"empresa"`
	CNPJ     string `json:"cnpj"`
	Telefone string `json:"telefone"`
}

// Project is a sustainable project credits can be bought from. Valor is the
// price per ton of CO₂.
type Project struct {
	ID                 int             `json:"id"`
	Titulo             string          `json:"titulo"`
	Valor              decimal.Decimal `json:"valor"`
	Descricao          string          `json:"descricao"`
	ImgBase64          string          `json:"imgBase64"`
	CreditosDisponivel decimal.Decimal `json:"creditosDisponivel"`
}

// PaymentSession is issued by the backend when a purchase is initiated.
// Immutable once created: the PIX payload never changes for a given payment.
type PaymentSession struct {
	PagamentoID string `json:"pagamentoId"`
	QRCode      string `json:"qrCode"`
}

// Recipient is the resolved target of a credit transfer, shown to the user
// for explicit confirmation before any amount can be entered.
type Recipient struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	CNPJ  string `json:"cnpj"`
}

// Transaction is one row of the account history.
type Transaction struct {
	DataHora     string          `json:"dataHora"`
	Descricao    string          `json:"descricao"`
	Quantidade   decimal.Decimal `json:"quantidade"`
	Status       string          `json:"status"`
	Tipo         string          `json:"tipo"`
	CopiaColaPix string          `json:"CopiaColaPix"`
}

// HistoryFilter narrows the transaction history query. Dates are ISO 8601
// strings (e.g. "2025-07-01T00:00:00"); zero values mean no filter.
type HistoryFilter struct {
	DataInicio string
	DataFim    string
	Tipo       string
}

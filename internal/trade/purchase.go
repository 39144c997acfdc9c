// Package trade holds the client-side rules of the buy / sell / transfer
// flows: input validation, the implied-tons computation, the payment status
// poller and the transfer recipient state machine. Everything here is pure
// or backend-agnostic so the command layer stays thin.
package trade

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/verdexapp/verdex/internal/api"
)

// MinTons is the smallest purchasable credit quantity.
var MinTons = decimal.RequireFromString("0.01")

// Validation errors surfaced inline, before any network call.
var (
	ErrInvalidAmount  = errors.New("Por favor, informe um valor válido.")
	ErrNoProject      = errors.New("Por favor, selecione um projeto.")
	ErrBelowMinimum   = errors.New("Valor muito baixo: a compra mínima é de 0.01 tonelada.")
	ErrInsufficient   = errors.New("Saldo de créditos insuficiente para esta operação.")
	ErrEmptyRecipient = errors.New("Por favor, informe o destinatário.")
)

// ParseAmount parses a user-entered amount string strictly: it must be a
// positive decimal number.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// PurchaseIntent is a validated buy request: how much currency to spend on
// which project.
type PurchaseIntent struct {
	Amount  decimal.Decimal
	Project api.Project
}

// ImpliedTons computes how many tons of CO₂ an amount buys at the given
// price per ton.
func ImpliedTons(amount, pricePerTon decimal.Decimal) decimal.Decimal {
	if pricePerTon.Sign() <= 0 {
		return decimal.Zero
	}
	return amount.DivRound(pricePerTon, 8)
}

// FormatTons renders a ton quantity for display (two decimal places, the
// platform's convention).
func FormatTons(tons decimal.Decimal) string {
	return tons.StringFixed(2)
}

// NewPurchaseIntent validates the raw amount against the selected project.
// projectID must identify one of the loaded projects, and the implied
// credit quantity must meet MinTons.
func NewPurchaseIntent(rawAmount string, projectID int, projects []api.Project) (*PurchaseIntent, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return nil, err
	}

	var project *api.Project
	for i := range projects {
		if projects[i].ID == projectID {
			project = &projects[i]
			break
		}
	}
	if project == nil {
		return nil, ErrNoProject
	}

	if ImpliedTons(amount, project.Valor).LessThan(MinTons) {
		return nil, ErrBelowMinimum
	}

	return &PurchaseIntent{Amount: amount, Project: *project}, nil
}

// Tons returns the credit quantity this intent buys.
func (p *PurchaseIntent) Tons() decimal.Decimal {
	return ImpliedTons(p.Amount, p.Project.Valor)
}

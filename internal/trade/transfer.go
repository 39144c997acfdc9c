package trade

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/verdexapp/verdex/internal/api"
)

// RecipientState is the phase of the two-step recipient resolution.
type RecipientState int

const (
	// StateEmpty: no recipient entered since the last reset.
	StateEmpty RecipientState = iota
	// StateLookingUp: identifier sent to the backend, awaiting the answer.
	StateLookingUp
	// StateUnconfirmed: lookup finished (candidate or error); the user has
	// not confirmed yet. The amount field stays locked.
	StateUnconfirmed
	// StateConfirmed: user confirmed the candidate. The amount field is
	// unlocked and the recipient field is locked.
	StateConfirmed
)

// ErrAmountLocked is returned when an amount is entered before the
// recipient has been confirmed.
var ErrAmountLocked = errors.New("Confirme o destinatário antes de informar o valor.")

// ErrNoCandidate is returned when Confirm is called without a successfully
// resolved candidate.
var ErrNoCandidate = errors.New("Destinatário não encontrado.")

// LookupFunc resolves a free-text identifier into a recipient.
type LookupFunc func(ctx context.Context, identifier string) (*api.Recipient, error)

// TransferFlow drives the transfer screen: a recipient must be looked up
// and explicitly confirmed before any amount can be composed, and changing
// the recipient wipes amount and description together so a stale pair can
// never be submitted.
type TransferFlow struct {
	lookup  LookupFunc
	balance decimal.Decimal

	state       RecipientState
	identifier  string
	candidate   *api.Recipient
	lookupErr   error
	rawAmount   string
	amount      decimal.Decimal
	amountValid bool
	description string
}

// NewTransferFlow creates a flow validating amounts against the given
// credit balance.
func NewTransferFlow(balance decimal.Decimal, lookup LookupFunc) *TransferFlow {
	return &TransferFlow{lookup: lookup, balance: balance}
}

// State returns the current recipient phase.
func (f *TransferFlow) State() RecipientState { return f.state }

// Identifier returns the raw identifier the user entered.
func (f *TransferFlow) Identifier() string { return f.identifier }

// Lookup resolves an identifier. Empty or whitespace-only input is rejected
// before any network call. A confirmed recipient cannot be replaced without
// an explicit ChangeRecipient.
func (f *TransferFlow) Lookup(ctx context.Context, identifier string) error {
	if f.state == StateConfirmed {
		return errors.New("Destinatário já confirmado. Use \"trocar destinatário\" para alterar.")
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return ErrEmptyRecipient
	}

	f.state = StateLookingUp
	f.identifier = identifier
	f.candidate = nil
	f.lookupErr = nil

	rec, err := f.lookup(ctx, identifier)
	f.state = StateUnconfirmed
	if err != nil {
		f.lookupErr = err
		return err
	}
	f.candidate = rec
	return nil
}

// Candidate returns the lookup result: the resolved recipient, or the
// lookup error to show in the confirmation prompt's error state.
func (f *TransferFlow) Candidate() (*api.Recipient, error) {
	return f.candidate, f.lookupErr
}

// Confirm locks the recipient in and unlocks the amount field.
func (f *TransferFlow) Confirm() error {
	if f.state != StateUnconfirmed || f.candidate == nil {
		return ErrNoCandidate
	}
	f.state = StateConfirmed
	return nil
}

// ChangeRecipient resets recipient, amount and description together. The
// reset is atomic so a previously composed amount can never ride along with
// a newly entered recipient.
func (f *TransferFlow) ChangeRecipient() {
	f.state = StateEmpty
	f.identifier = ""
	f.candidate = nil
	f.lookupErr = nil
	f.rawAmount = ""
	f.amount = decimal.Zero
	f.amountValid = false
	f.description = ""
}

// AmountLocked reports whether amount entry is still disabled.
func (f *TransferFlow) AmountLocked() bool { return f.state != StateConfirmed }

// SetAmount records the amount as the user types. Values over the balance
// are kept (the user sees what they entered) but flagged with
// ErrInsufficient, which blocks submission until corrected.
func (f *TransferFlow) SetAmount(raw string) error {
	if f.AmountLocked() {
		return ErrAmountLocked
	}
	f.rawAmount = raw

	amount, err := ParseAmount(raw)
	if err != nil {
		f.amountValid = false
		f.amount = decimal.Zero
		return err
	}
	f.amount = amount
	f.amountValid = true
	if amount.GreaterThan(f.balance) {
		return ErrInsufficient
	}
	return nil
}

// RawAmount returns the amount text as entered.
func (f *TransferFlow) RawAmount() string { return f.rawAmount }

// SetDescription records the optional transfer note.
func (f *TransferFlow) SetDescription(desc string) { f.description = desc }

// Description returns the transfer note.
func (f *TransferFlow) Description() string { return f.description }

// CanSubmit reports whether the flow satisfies every submission rule:
// confirmed recipient, positive amount, amount within balance.
func (f *TransferFlow) CanSubmit() bool {
	return f.state == StateConfirmed &&
		f.amountValid &&
		f.amount.Sign() > 0 &&
		f.amount.LessThanOrEqual(f.balance)
}

// Submission returns the payload for the transfer-confirmation call.
func (f *TransferFlow) Submission() (identifier string, amount decimal.Decimal, description string, err error) {
	if !f.CanSubmit() {
		return "", decimal.Zero, "", errors.New("Transferência incompleta: confirme o destinatário e informe um valor válido.")
	}
	return f.identifier, f.amount, f.description, nil
}

// Reset returns the flow to its initial empty state, ready for a new
// transfer. Called after a successful submission.
func (f *TransferFlow) Reset() {
	f.ChangeRecipient()
}

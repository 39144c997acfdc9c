package trade

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdexapp/verdex/internal/api"
)

func okLookup(rec *api.Recipient) LookupFunc {
	return func(ctx context.Context, identifier string) (*api.Recipient, error) {
		return rec, nil
	}
}

func failLookup(err error) LookupFunc {
	return func(ctx context.Context, identifier string) (*api.Recipient, error) {
		return nil, err
	}
}

var ana = &api.Recipient{Nome: "Ana", Email: "user@example.com", CNPJ: "12345678000190"}

func confirmedFlow(t *testing.T) *TransferFlow {
	t.Helper()
	f := NewTransferFlow(dec("3.2"), okLookup(ana))
	require.NoError(t, f.Lookup(context.Background(), "user@example.com"))
	require.NoError(t, f.Confirm())
	return f
}

func TestFlowStartsEmptyAndLocked(t *testing.T) {
	f := NewTransferFlow(dec("3.2"), okLookup(ana))
	assert.Equal(t, StateEmpty, f.State())
	assert.True(t, f.AmountLocked())
	assert.False(t, f.CanSubmit())
}

func TestLookupRejectsBlankWithoutCalling(t *testing.T) {
	called := false
	f := NewTransferFlow(dec("1"), func(ctx context.Context, id string) (*api.Recipient, error) {
		called = true
		return ana, nil
	})

	for _, id := range []string{"", "   ", "\t"} {
		err := f.Lookup(context.Background(), id)
		assert.ErrorIs(t, err, ErrEmptyRecipient)
	}
	assert.False(t, called)
	assert.Equal(t, StateEmpty, f.State())
}

func TestLookupSuccessPopulatesCandidate(t *testing.T) {
	f := NewTransferFlow(dec("3.2"), okLookup(ana))
	require.NoError(t, f.Lookup(context.Background(), " user@example.com "))

	assert.Equal(t, StateUnconfirmed, f.State())
	assert.Equal(t, "user@example.com", f.Identifier())

	cand, lookupErr := f.Candidate()
	require.NotNil(t, cand)
	assert.NoError(t, lookupErr)
	assert.Equal(t, "Ana", cand.Nome)
	assert.Equal(t, "user@example.com", cand.Email)
	assert.Equal(t, "12345678000190", cand.CNPJ)

	// Amount still locked until explicit confirmation.
	assert.True(t, f.AmountLocked())
}

func TestLookupFailureEntersErrorState(t *testing.T) {
	boom := errors.New("Destinatário não encontrado")
	f := NewTransferFlow(dec("3.2"), failLookup(boom))

	err := f.Lookup(context.Background(), "typo@example.com")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateUnconfirmed, f.State())

	cand, lookupErr := f.Candidate()
	assert.Nil(t, cand)
	assert.ErrorIs(t, lookupErr, boom)

	// Confirming an errored lookup is impossible.
	assert.ErrorIs(t, f.Confirm(), ErrNoCandidate)
}

func TestConfirmRequiresLookup(t *testing.T) {
	f := NewTransferFlow(dec("1"), okLookup(ana))
	assert.ErrorIs(t, f.Confirm(), ErrNoCandidate)
}

func TestConfirmUnlocksAmountAndLocksRecipient(t *testing.T) {
	f := confirmedFlow(t)

	assert.Equal(t, StateConfirmed, f.State())
	assert.False(t, f.AmountLocked())

	// Recipient cannot be replaced without the explicit change action.
	err := f.Lookup(context.Background(), "other@example.com")
	assert.Error(t, err)
	assert.Equal(t, "user@example.com", f.Identifier())
}

func TestSetAmountBeforeConfirmRejected(t *testing.T) {
	f := NewTransferFlow(dec("3.2"), okLookup(ana))
	assert.ErrorIs(t, f.SetAmount("1.0"), ErrAmountLocked)

	require.NoError(t, f.Lookup(context.Background(), "user@example.com"))
	assert.ErrorIs(t, f.SetAmount("1.0"), ErrAmountLocked)
}

func TestSetAmountOverBalanceWarnsButKeepsValue(t *testing.T) {
	f := confirmedFlow(t)

	err := f.SetAmount("5.0")
	assert.ErrorIs(t, err, ErrInsufficient)
	assert.Equal(t, "5.0", f.RawAmount())
	assert.False(t, f.CanSubmit())

	// Correcting the value re-enables submission.
	require.NoError(t, f.SetAmount("3.2"))
	assert.True(t, f.CanSubmit())
}

func TestSetAmountInvalidBlocksSubmit(t *testing.T) {
	f := confirmedFlow(t)
	assert.ErrorIs(t, f.SetAmount("abc"), ErrInvalidAmount)
	assert.False(t, f.CanSubmit())
}

func TestChangeRecipientResetsAtomically(t *testing.T) {
	f := confirmedFlow(t)
	require.NoError(t, f.SetAmount("1.5"))
	f.SetDescription("presente")

	f.ChangeRecipient()

	assert.Equal(t, StateEmpty, f.State())
	assert.Empty(t, f.Identifier())
	assert.Empty(t, f.RawAmount())
	assert.Empty(t, f.Description())
	assert.True(t, f.AmountLocked())
	cand, lookupErr := f.Candidate()
	assert.Nil(t, cand)
	assert.NoError(t, lookupErr)
}

func TestSubmission(t *testing.T) {
	f := confirmedFlow(t)
	require.NoError(t, f.SetAmount("1.5"))
	f.SetDescription("presente")

	id, amount, desc, err := f.Submission()
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", id)
	assert.True(t, amount.Equal(dec("1.5")))
	assert.Equal(t, "presente", desc)
}

func TestSubmissionBlockedWhenIncomplete(t *testing.T) {
	f := confirmedFlow(t)
	_, _, _, err := f.Submission()
	assert.Error(t, err)
}

func TestResetAfterSuccessReturnsToInitialState(t *testing.T) {
	f := confirmedFlow(t)
	require.NoError(t, f.SetAmount("1.0"))
	f.Reset()

	assert.Equal(t, StateEmpty, f.State())
	assert.False(t, f.CanSubmit())

	// A new transfer can run through the whole flow again.
	require.NoError(t, f.Lookup(context.Background(), "user@example.com"))
	require.NoError(t, f.Confirm())
	require.NoError(t, f.SetAmount("2.0"))
	assert.True(t, f.CanSubmit())
}

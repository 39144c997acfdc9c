package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdexapp/verdex/internal/trade"
)

func applyPayment(t *testing.T, m PaymentModel, msg any) (PaymentModel, bool) {
	t.Helper()
	updated, cmd := m.Update(msg)
	pm, ok := updated.(PaymentModel)
	require.True(t, ok)
	return pm, cmd != nil
}

func TestTimerApprovedQuitsWithSuccessNotice(t *testing.T) {
	m := PaymentModel{PaymentID: "pay-1"}

	pm, quit := applyPayment(t, m, PaymentEventMsg(trade.Event{
		Status: trade.StatusApproved, FirstApproved: true,
	}))
	assert.True(t, quit)
	assert.True(t, pm.approved)
	assert.Contains(t, pm.notice, "Pagamento aprovado")
}

func TestRepeatedApprovedDoesNotRewriteNotice(t *testing.T) {
	m := PaymentModel{PaymentID: "pay-1"}
	pm, _ := applyPayment(t, m, PaymentEventMsg(trade.Event{
		Status: trade.StatusApproved, FirstApproved: true,
	}))
	notice := pm.notice

	// A racing duplicate approved event (FirstApproved already consumed).
	pm2, _ := applyPayment(t, pm, PaymentEventMsg(trade.Event{Status: trade.StatusApproved}))
	assert.Equal(t, notice, pm2.notice)
}

func TestTimerPendingAndErrorsSilentlyIgnored(t *testing.T) {
	m := PaymentModel{PaymentID: "pay-1"}

	pm, quit := applyPayment(t, m, PaymentEventMsg(trade.Event{Status: trade.StatusPending}))
	assert.False(t, quit)
	assert.Empty(t, pm.notice)

	pm, quit = applyPayment(t, pm, PaymentEventMsg(trade.Event{Err: errors.New("timeout")}))
	assert.False(t, quit)
	assert.Empty(t, pm.notice)
}

func TestTimerExpiredShowsNoticeButKeepsSession(t *testing.T) {
	m := PaymentModel{PaymentID: "pay-1", Payload: "00020126pix"}

	pm, quit := applyPayment(t, m, PaymentEventMsg(trade.Event{Status: trade.StatusExpired}))
	assert.False(t, quit)
	assert.Contains(t, pm.notice, "Pagamento expirado. Tente novamente.")
	// The session stays displayed for the user to decide.
	assert.Contains(t, pm.View(), "00020126pix")
}

func TestManualCheckMapping(t *testing.T) {
	cases := []struct {
		name   string
		event  trade.Event
		expect string
		quits  bool
	}{
		{"approved", trade.Event{Status: trade.StatusApproved, FirstApproved: true}, "Pagamento aprovado", true},
		{"pending", trade.Event{Status: trade.StatusPending}, "ainda pendente", false},
		{"expired", trade.Event{Status: trade.StatusExpired}, "Pagamento expirado. Tente novamente.", false},
		{"unknown", trade.Event{Status: trade.Status("in_mediation")}, "Status do pagamento: in_mediation", false},
		{"error", trade.Event{Err: errors.New("boom")}, "Não foi possível verificar o status", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := PaymentModel{PaymentID: "pay-1", checking: true}
			pm, quit := applyPayment(t, m, manualCheckMsg(tc.event))
			assert.Equal(t, tc.quits, quit)
			assert.Contains(t, pm.notice, tc.expect)
			assert.False(t, pm.checking)
		})
	}
}

func TestViewShowsPayloadAndKeys(t *testing.T) {
	m := PaymentModel{
		PaymentID: "pay-9",
		Payload:   "00020126pix-payload",
		Amount:    "R$ 50.00",
		Project:   "Reflorestamento Amazônia",
	}
	view := m.View()
	assert.Contains(t, view, "00020126pix-payload")
	assert.Contains(t, view, "pay-9")
	assert.Contains(t, view, "[ p ] já paguei")
}

package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verdexapp/verdex/internal/trade"
)

// PaymentEventMsg carries a poller result into the payment model. The
// command layer forwards poller events with prog.Send.
type PaymentEventMsg trade.Event

type paymentClockMsg time.Time

type manualCheckMsg trade.Event

// PaymentModel is the awaiting-payment screen: it renders the PIX QR code
// and copy-paste payload for a payment session and reflects status checks
// until the payment is approved or the user leaves. The session itself is
// never cleared here; a failed or expired check only changes the notice
// line.
type PaymentModel struct {
	PaymentID string
	QR        string // pre-rendered QR block
	Payload   string // PIX copy-paste payload
	Amount    string
	Project   string
	Deadline  time.Time

	// CheckNow runs one out-of-band status check (bound to the poller).
	CheckNow func(ctx context.Context) trade.Event

	notice   string
	approved bool
	checking bool
	quitting bool
}

func (m PaymentModel) Init() tea.Cmd {
	return clockTick()
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return paymentClockMsg(t) })
}

func (m PaymentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "p":
			// "Já paguei": one immediate check, independent of the timer.
			if m.checking || m.approved || m.CheckNow == nil {
				return m, nil
			}
			m.checking = true
			check := m.CheckNow
			return m, func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
				defer cancel()
				return manualCheckMsg(check(ctx))
			}
		}

	case paymentClockMsg:
		if !m.Deadline.IsZero() && time.Time(msg).After(m.Deadline) {
			m.notice = Warn("Tempo de espera esgotado. Consulte o histórico para ver o resultado.")
			m.quitting = true
			return m, tea.Quit
		}
		return m, clockTick()

	case PaymentEventMsg:
		// Timer tick result: transient errors and "pending" are silently
		// ignored; the next tick will try again.
		ev := trade.Event(msg)
		if ev.Err != nil {
			return m, nil
		}
		switch ev.Status {
		case trade.StatusApproved:
			if ev.FirstApproved {
				m.notice = Success("Pagamento aprovado! Seus créditos foram adicionados.")
			}
			m.approved = true
			return m, tea.Quit
		case trade.StatusExpired:
			m.notice = Err("Pagamento expirado. Tente novamente.")
		}
		return m, nil

	case manualCheckMsg:
		m.checking = false
		ev := trade.Event(msg)
		if ev.Err != nil {
			m.notice = Warn("Não foi possível verificar o status do pagamento.")
			return m, nil
		}
		switch ev.Status {
		case trade.StatusApproved:
			if ev.FirstApproved {
				m.notice = Success("Pagamento aprovado! Seus créditos foram adicionados.")
			}
			m.approved = true
			return m, tea.Quit
		case trade.StatusPending:
			m.notice = Meta("Pagamento ainda pendente. Aguarde a confirmação do banco.")
		case trade.StatusExpired:
			m.notice = Err("Pagamento expirado. Tente novamente.")
		default:
			m.notice = Meta(fmt.Sprintf("Status do pagamento: %s", ev.Status))
		}
		return m, nil
	}

	return m, nil
}

func (m PaymentModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(StyleTitle.Render("  Aguardando pagamento PIX") + "\n")
	sb.WriteString(Meta(fmt.Sprintf("  %s · %s · pagamento %s\n\n", m.Project, m.Amount, m.PaymentID)))

	if m.QR != "" {
		sb.WriteString(m.QR)
		sb.WriteString("\n")
	}
	sb.WriteString(Meta("  Copia e cola:") + "\n")
	sb.WriteString("  " + Ident(m.Payload) + "\n\n")

	if m.notice != "" {
		sb.WriteString("  " + m.notice + "\n\n")
	}
	if m.checking {
		sb.WriteString(Meta("  Verificando…") + "\n\n")
	}

	if !m.approved && !m.quitting {
		sb.WriteString(Meta("  [ p ] já paguei   [ q ] sair") + "\n")
	}
	return sb.String()
}

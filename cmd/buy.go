package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"

	"github.com/verdexapp/verdex/internal/api"
	"github.com/verdexapp/verdex/internal/trade"
	"github.com/verdexapp/verdex/internal/ui"
)

var (
	buyAmount  string
	buyProject int
)

var buyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Comprar créditos de carbono via PIX",
	Long: `Inicia uma compra de créditos: escolha um projeto, informe quanto
quer investir e pague o PIX exibido. O status do pagamento é verificado
automaticamente a cada intervalo configurado; a tecla "p" força uma
verificação imediata.

Examples:
  verdex buy                           # fluxo interativo
  verdex buy --amount 50 --project 2   # direto ao pagamento`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		ctx := context.Background()

		sp := ui.NewSpinner("Carregando projetos…")
		sp.Start()
		projects, err := client.ListProjects(ctx)
		sp.Stop()
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			return fmt.Errorf("nenhum projeto disponível no momento")
		}

		projectID := buyProject
		if projectID == 0 {
			projectID, err = pickProject(projects)
			if err != nil || projectID == 0 {
				return err
			}
		}

		amount := buyAmount
		if amount == "" {
			amount = ui.ReadLine("Quanto você quer investir? (R$)")
		}

		intent, err := trade.NewPurchaseIntent(amount, projectID, projects)
		if err != nil {
			return err
		}

		fmt.Printf("\n  %s  %s\n", ui.Val("R$ "+intent.Amount.StringFixed(2)),
			ui.Meta(fmt.Sprintf("≈ %s toneladas de CO₂ · %s", trade.FormatTons(intent.Tons()), intent.Project.Titulo)))
		if !ui.Confirm("Confirmar compra?") {
			fmt.Println(ui.Meta("Compra cancelada."))
			return nil
		}

		sp = ui.NewSpinner("Iniciando compra…")
		sp.Start()
		sess, err := client.InitiatePurchase(ctx, intent.Amount, intent.Project.ID)
		sp.Stop()
		if err != nil {
			return fmt.Errorf("%s", api.BackendMessage(err, "Erro ao iniciar a compra. Tente novamente."))
		}

		return awaitPayment(intent, sess)
	},
}

// awaitPayment renders the PIX QR and polls the payment status until it is
// approved or the user leaves. The poller is always stopped on the way out
// so no timer outlives the screen.
func awaitPayment(intent *trade.PurchaseIntent, sess *api.PaymentSession) error {
	poller := trade.NewPoller(cfg.PollInterval(), func(ctx context.Context) (trade.Status, error) {
		raw, err := client.PaymentStatus(ctx, sess.PagamentoID)
		if err != nil {
			return "", err
		}
		return trade.ParseStatus(raw), nil
	})
	poller.Start()
	defer poller.Stop()

	m := ui.PaymentModel{
		PaymentID: sess.PagamentoID,
		QR:        renderQR(sess.QRCode),
		Payload:   sess.QRCode,
		Amount:    "R$ " + intent.Amount.StringFixed(2),
		Project:   intent.Project.Titulo,
		Deadline:  time.Now().Add(cfg.PaymentTimeout()),
		CheckNow:  poller.CheckNow,
	}

	prog := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))

	// Forward poller results into the TUI. The goroutine ends when the
	// poller is stopped; sends to a finished program are no-ops.
	go func() {
		for {
			select {
			case ev := <-poller.Events():
				prog.Send(ui.PaymentEventMsg(ev))
			case <-poller.Done():
				return
			}
		}
	}()

	_, err := prog.Run()
	return err
}

func pickProject(projects []api.Project) (int, error) {
	items := make([]ui.PickerItem, 0, len(projects))
	for _, p := range projects {
		items = append(items, ui.PickerItem{
			Label:    p.Titulo,
			SubLabel: fmt.Sprintf("R$ %s/ton · %s disponíveis", p.Valor.StringFixed(2), p.CreditosDisponivel.StringFixed(2)),
			Value:    strconv.Itoa(p.ID),
		})
	}

	picked, err := ui.PickItem("Selecione um projeto", items)
	if err != nil || picked == "" {
		return 0, err
	}
	return strconv.Atoi(picked)
}

func renderQR(payload string) string {
	var sb strings.Builder
	qrterminal.GenerateWithConfig(payload, qrterminal.Config{
		Level:      qrterminal.L,
		Writer:     &sb,
		HalfBlocks: true,
		QuietZone:  1,
	})
	return sb.String()
}

func init() {
	buyCmd.Flags().StringVar(&buyAmount, "amount", "", "valor em reais")
	buyCmd.Flags().IntVar(&buyProject, "project", 0, "id do projeto")
}

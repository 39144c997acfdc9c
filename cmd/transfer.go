package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdexapp/verdex/internal/api"
	"github.com/verdexapp/verdex/internal/trade"
	"github.com/verdexapp/verdex/internal/ui"
)

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transferir créditos para outro usuário",
	Long: `Transferência em duas fases: primeiro o destinatário (e-mail ou
CNPJ) é verificado no backend e mostrado para confirmação explícita; só
depois o valor é liberado. Trocar o destinatário limpa valor e descrição
juntos.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		ctx := context.Background()

		sp := ui.NewSpinner("Consultando saldo de créditos…")
		sp.Start()
		balance, err := client.CreditBalance(ctx)
		sp.Stop()
		if err != nil {
			return err
		}
		fmt.Printf("  Créditos disponíveis: %s %s\n\n",
			ui.Val(balance.StringFixed(2)), ui.Meta("toneladas CO₂"))

		flow := trade.NewTransferFlow(balance, func(ctx context.Context, id string) (*api.Recipient, error) {
			return client.VerifyRecipient(ctx, id)
		})

		for {
			if err := runTransfer(ctx, flow); err != nil {
				return err
			}
			if !ui.Confirm("Fazer outra transferência?") {
				return nil
			}
			// Reset left the flow empty; run a fresh one.
		}
	},
}

func runTransfer(ctx context.Context, flow *trade.TransferFlow) error {
	if err := resolveRecipient(ctx, flow); err != nil {
		return err
	}
	if err := composeAmount(flow); err != nil {
		return err
	}
	flow.SetDescription(ui.ReadLine("Descrição (opcional)"))

	identifier, amount, descricao, err := flow.Submission()
	if err != nil {
		return err
	}

	cand, _ := flow.Candidate()
	fmt.Printf("\n  Transferindo %s toneladas para %s %s\n",
		ui.Val(amount.StringFixed(2)), ui.Val(cand.Nome), ui.Meta("("+identifier+")"))
	if !ui.Confirm("Confirmar transferência?") {
		fmt.Println(ui.Meta("Transferência cancelada."))
		flow.Reset()
		return nil
	}

	sp := ui.NewSpinner("Transferindo…")
	sp.Start()
	err = client.ConfirmTransfer(ctx, identifier, amount, descricao)
	sp.Stop()
	if err != nil {
		return fmt.Errorf("%s", api.BackendMessage(err, "Erro ao transferir. Tente novamente."))
	}

	fmt.Println(ui.Success("Transferência realizada com sucesso!"))
	flow.Reset()
	return nil
}

// resolveRecipient drives the lookup + explicit-confirmation phases. The
// user can retry a failed lookup or reject a resolved candidate; both paths
// come back here with the flow reset.
func resolveRecipient(ctx context.Context, flow *trade.TransferFlow) error {
	for {
		identifier := ui.ReadLine("Destinatário (e-mail ou CNPJ)")

		err := flow.Lookup(ctx, identifier)
		if errors.Is(err, trade.ErrEmptyRecipient) {
			fmt.Println(ui.Err(err.Error()))
			continue
		}
		if errors.Is(err, api.ErrSessionExpired) {
			return err
		}
		if err != nil {
			fmt.Println(ui.Err(api.BackendMessage(err, "Destinatário não encontrado.")))
			if !ui.Confirm("Tentar outro destinatário?") {
				return fmt.Errorf("transferência cancelada")
			}
			flow.ChangeRecipient()
			continue
		}

		cand, _ := flow.Candidate()
		fmt.Println()
		fmt.Println("  " + ui.Val(cand.Nome))
		fmt.Println("  " + ui.Ident(cand.Email))
		fmt.Println("  " + ui.Meta("CNPJ "+cand.CNPJ))
		fmt.Println()

		if ui.Confirm("Confirmar destinatário?") {
			return flow.Confirm()
		}
		flow.ChangeRecipient()
	}
}

func composeAmount(flow *trade.TransferFlow) error {
	for {
		raw := ui.ReadLine("Quanto transferir? (toneladas)")
		err := flow.SetAmount(raw)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, trade.ErrInsufficient):
			// The typed value is kept; the warning blocks submission until
			// the user corrects it.
			fmt.Println(ui.Warn("Créditos insuficientes para esta transferência."))
		default:
			fmt.Println(ui.Err(err.Error()))
		}
	}
}

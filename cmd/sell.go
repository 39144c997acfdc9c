package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdexapp/verdex/internal/api"
	"github.com/verdexapp/verdex/internal/trade"
	"github.com/verdexapp/verdex/internal/ui"
)

var sellAmount string

var sellCmd = &cobra.Command{
	Use:   "sell",
	Short: "Vender créditos de carbono",
	Long: `Vende créditos de volta à plataforma. A quantidade é validada
contra o seu saldo de créditos antes de qualquer chamada.

Examples:
  verdex sell --amount 1.5
  verdex sell                # pergunta a quantidade`,
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

		amount := sellAmount
		if amount == "" {
			amount = ui.ReadLine("Quanto deseja vender? (toneladas)")
		}

		qty, err := trade.ValidateSale(amount, balance)
		if err != nil {
			if err == trade.ErrInsufficient {
				return fmt.Errorf("Você não possui créditos suficientes.")
			}
			return err
		}

		if !ui.Confirm(fmt.Sprintf("Vender %s toneladas de CO₂?", qty.StringFixed(2))) {
			fmt.Println(ui.Meta("Venda cancelada."))
			return nil
		}

		sp = ui.NewSpinner("Processando venda…")
		sp.Start()
		msg, err := client.SellCredits(ctx, qty)
		sp.Stop()
		if err != nil {
			return fmt.Errorf("%s", api.BackendMessage(err, "Erro ao processar a venda. Tente novamente."))
		}

		if msg == "" {
			msg = fmt.Sprintf("Venda de %s toneladas realizada com sucesso!", qty.StringFixed(2))
		}
		fmt.Println(ui.Success(msg))
		return nil
	},
}

func init() {
	sellCmd.Flags().StringVar(&sellAmount, "amount", "", "quantidade de créditos (toneladas)")
}

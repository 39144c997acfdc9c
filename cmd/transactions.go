package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdexapp/verdex/internal/api"
	"github.com/verdexapp/verdex/internal/ui"
)

var (
	txFrom string
	txTo   string
	txType string
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"txs", "history"},
	Short:   "Histórico de transações",
	Long: `Lista o histórico de transações da conta, com filtros opcionais
por período e tipo.

Examples:
  verdex transactions
  verdex transactions --type compra
  verdex transactions --from 2025-07-01T00:00:00 --to 2025-07-31T23:59:59`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		sp := ui.NewSpinner("Carregando histórico…")
		sp.Start()
		txs, err := client.TransactionHistory(context.Background(), api.HistoryFilter{
			DataInicio: txFrom,
			DataFim:    txTo,
			Tipo:       txType,
		})
		sp.Stop()
		if err != nil {
			return err
		}

		if len(txs) == 0 {
			fmt.Println(ui.Meta("Nenhuma transação encontrada."))
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "Data", Width: 19},
			{Title: "Tipo", Width: 22},
			{Title: "Quantidade", Width: 12},
			{Title: "Status", Width: 10},
			{Title: "Descrição", Width: 28},
		})
		for _, tx := range txs {
			t.AddRow(ui.Row{
				tx.DataHora,
				tx.Tipo,
				tx.Quantidade.StringFixed(2),
				tx.Status,
				tx.Descricao,
			})
		}
		fmt.Println(t.Render())
		return nil
	},
}

func init() {
	transactionsCmd.Flags().StringVar(&txFrom, "from", "", "data inicial (ISO 8601)")
	transactionsCmd.Flags().StringVar(&txTo, "to", "", "data final (ISO 8601)")
	transactionsCmd.Flags().StringVar(&txType, "type", "", "tipo (compra, venda, transferência_entrada, …)")
}

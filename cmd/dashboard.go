package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdexapp/verdex/internal/api"
	"github.com/verdexapp/verdex/internal/ui"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Visão geral: saldos, usuário e projetos",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		ctx := context.Background()

		sp := ui.NewSpinner("Carregando…")
		sp.Start()
		user, userErr := client.CurrentUser(ctx)
		cash, cashErr := client.CashBalance(ctx)
		credits, creditsErr := client.CreditBalance(ctx)
		projects, projectsErr := client.ListProjects(ctx)
		sp.Stop()

		// A 401 anywhere means the whole screen is unusable.
		for _, err := range []error{userErr, cashErr, creditsErr, projectsErr} {
			if errors.Is(err, api.ErrSessionExpired) {
				return err
			}
		}

		fmt.Println(ui.Banner())
		if userErr == nil {
			fmt.Printf("  %s  %s\n\n", ui.Val(user.Nome), ui.Meta(user.Empresa))
		}

		// Each card degrades independently: one failed fetch never blanks
		// the rest of the screen.
		cashStr := "—"
		if cashErr == nil {
			cashStr = "R$ " + cash.StringFixed(2)
		}
		creditsStr := "—"
		if creditsErr == nil {
			creditsStr = credits.StringFixed(2) + " ton CO₂"
		}
		fmt.Println("  " + ui.StyleBorder.Render("Saldo em conta   "+ui.Val(cashStr)))
		fmt.Println("  " + ui.StyleBorder.Render("Créditos         "+ui.Val(creditsStr)))
		fmt.Println()

		if projectsErr != nil {
			fmt.Println(ui.Warn("Não foi possível carregar os projetos."))
			return nil
		}
		if len(projects) == 0 {
			fmt.Println(ui.Meta("  Nenhum projeto encontrado."))
			return nil
		}

		fmt.Println(ui.StyleTitle.Render("  Projetos Sustentáveis"))
		fmt.Println(renderProjectsTable(projects))
		fmt.Println(ui.Hint("  Dica: `verdex buy` para comprar créditos de um projeto."))
		return nil
	},
}

func renderProjectsTable(projects []api.Project) string {
	t := ui.NewTable([]ui.Column{
		{Title: "ID", Width: 4},
		{Title: "Projeto", Width: 32},
		{Title: "R$/ton", Width: 10},
		{Title: "Disponível", Width: 12},
	})
	for _, p := range projects {
		t.AddRow(ui.Row{
			fmt.Sprintf("%d", p.ID),
			p.Titulo,
			p.Valor.StringFixed(2),
			p.CreditosDisponivel.StringFixed(2),
		})
	}
	return t.Render()
}

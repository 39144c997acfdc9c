package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdexapp/verdex/internal/ui"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Listar projetos sustentáveis",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		sp := ui.NewSpinner("Carregando projetos…")
		sp.Start()
		projects, err := client.ListProjects(context.Background())
		sp.Stop()
		if err != nil {
			return err
		}

		if len(projects) == 0 {
			fmt.Println(ui.Meta("Nenhum projeto encontrado."))
			return nil
		}

		fmt.Println(renderProjectsTable(projects))
		if verbose {
			for _, p := range projects {
				fmt.Printf("\n%s\n%s\n", ui.Val(p.Titulo), ui.Meta(p.Descricao))
			}
		}
		return nil
	},
}

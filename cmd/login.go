package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verdexapp/verdex/internal/ui"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Entrar na plataforma",
	Long: `Autentica com e-mail e senha e guarda o token de sessão no
chaveiro do sistema. Todos os demais comandos usam essa sessão.

Examples:
  verdex login ana@empresa.com.br
  verdex login                       # pergunta o e-mail`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := loginEmail
		if len(args) == 1 {
			email = args[0]
		}
		if email == "" {
			email = ui.ReadLine("E-mail")
		}
		if !validEmail(email) {
			return fmt.Errorf("Por favor, insira um e-mail válido.")
		}

		senha, err := ui.ReadPassword("Senha")
		if err != nil {
			return err
		}
		if strings.TrimSpace(senha) == "" {
			return fmt.Errorf("Informe a senha.")
		}

		sp := ui.NewSpinner("Autenticando…")
		sp.Start()
		token, err := client.Login(context.Background(), email, senha)
		sp.Stop()
		if err != nil {
			return err
		}

		if err := store.Save(token); err != nil {
			return fmt.Errorf("salvando sessão: %w", err)
		}

		fmt.Println(ui.Success("Login efetuado. Bem-vindo de volta!"))
		fmt.Println(ui.Hint("  Dica: `verdex dashboard` mostra seus saldos e projetos."))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Encerrar a sessão atual",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("limpando sessão: %w", err)
		}
		fmt.Println(ui.Success("Sessão encerrada."))
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "e-mail da conta")
}

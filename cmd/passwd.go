package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdexapp/verdex/internal/api"
	"github.com/verdexapp/verdex/internal/ui"
)

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Redefinição de senha",
}

var passwdRequestCmd = &cobra.Command{
	Use:   "request <email>",
	Short: "Solicitar um token de redefinição por e-mail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]
		if !validEmail(email) {
			return fmt.Errorf("Por favor, insira um e-mail válido.")
		}

		if err := client.RequestPasswordReset(context.Background(), email); err != nil {
			return fmt.Errorf("%s", api.BackendMessage(err, "Erro ao solicitar redefinição."))
		}
		fmt.Println(ui.Success("Se o e-mail existir, um token de redefinição foi enviado."))
		return nil
	},
}

var passwdValidateCmd = &cobra.Command{
	Use:   "validate <token>",
	Short: "Verificar se um token de redefinição ainda é válido",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if client.ValidateResetToken(context.Background(), args[0]) {
			fmt.Println(ui.Success("Token válido."))
			return nil
		}
		fmt.Println(ui.Err("Token inválido ou expirado."))
		return nil
	},
}

var passwdUpdateCmd = &cobra.Command{
	Use:   "update <token>",
	Short: "Definir uma nova senha com um token de redefinição",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token := args[0]
		if !client.ValidateResetToken(context.Background(), token) {
			return fmt.Errorf("Token inválido ou expirado.")
		}

		senha, err := ui.ReadPassword("Nova senha")
		if err != nil {
			return err
		}
		if !validPassword(senha) {
			return fmt.Errorf("A senha deve conter ao menos 8 caracteres, 1 letra maiúscula, 1 número e 1 caractere especial.")
		}
		confirma, err := ui.ReadPassword("Confirme a nova senha")
		if err != nil {
			return err
		}
		if senha != confirma {
			return fmt.Errorf("As senhas não coincidem.")
		}

		if err := client.UpdatePassword(context.Background(), token, senha); err != nil {
			return fmt.Errorf("%s", api.BackendMessage(err, "Erro ao atualizar a senha."))
		}
		fmt.Println(ui.Success("Senha atualizada. Entre com `verdex login`."))
		return nil
	},
}

func init() {
	passwdCmd.AddCommand(passwdRequestCmd, passwdValidateCmd, passwdUpdateCmd)
}

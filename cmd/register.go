package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdexapp/verdex/internal/api"
	"github.com/verdexapp/verdex/internal/ui"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Criar uma conta",
	Long: `Cadastro em três etapas: e-mail, código de verificação e dados
da conta. O código chega no e-mail informado; só depois de confirmá-lo o
restante do cadastro é liberado.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		fmt.Println(ui.Banner())

		// Etapa 1: e-mail + envio do código.
		email := ui.ReadLine("E-mail")
		if !validEmail(email) {
			return fmt.Errorf("Por favor, insira um e-mail válido.")
		}

		sp := ui.NewSpinner("Enviando código de verificação…")
		sp.Start()
		err := client.SendVerificationCode(ctx, email)
		sp.Stop()
		if err != nil {
			return fmt.Errorf("%s", api.BackendMessage(err, "Erro ao enviar código."))
		}
		fmt.Println(ui.Success("Código de verificação enviado para o seu e-mail!"))

		// Etapa 2: confirmação do código.
		if err := confirmCode(ctx, email); err != nil {
			return err
		}
		fmt.Println(ui.Success("Código confirmado! Agora complete seu cadastro."))

		// Etapa 3: dados da conta.
		reg, err := collectRegistration(email)
		if err != nil {
			return err
		}

		sp = ui.NewSpinner("Criando conta…")
		sp.Start()
		err = client.Register(ctx, *reg)
		sp.Stop()
		if err != nil {
			return fmt.Errorf("%s", api.RegistrationMessage(err))
		}

		fmt.Println(ui.Success("Conta criada com sucesso!"))
		fmt.Println(ui.Hint("  Entre com `verdex login " + email + "`"))
		return nil
	},
}

func confirmCode(ctx context.Context, email string) error {
	for attempt := 0; attempt < 3; attempt++ {
		codigo := ui.ReadLine("Código de verificação")
		if codigo == "" {
			fmt.Println(ui.Err("Informe o código de verificação."))
			continue
		}

		confirmed, err := client.ConfirmVerificationCode(ctx, email, codigo)
		if err != nil {
			return fmt.Errorf("%s", api.BackendMessage(err, "Erro ao confirmar código."))
		}
		if confirmed {
			return nil
		}
		fmt.Println(ui.Err("Código inválido. Tente novamente."))
	}
	return fmt.Errorf("número de tentativas esgotado")
}

func collectRegistration(email string) (*api.Registration, error) {
	nome := ui.ReadLine("Nome completo")
	empresa := ui.ReadLine("Empresa")

	cnpj := digitsOnly(ui.ReadLine("CNPJ"))
	if len(cnpj) != 14 {
		return nil, fmt.Errorf("Preencha o CNPJ completo.")
	}

	telefone := digitsOnly(ui.ReadLine("Telefone (com DDD)"))
	if len(telefone) != 11 {
		return nil, fmt.Errorf("Preencha o telefone completo.")
	}

	senha, err := ui.ReadPassword("Senha")
	if err != nil {
		return nil, err
	}
	if !validPassword(senha) {
		return nil, fmt.Errorf("A senha deve conter ao menos 8 caracteres, 1 letra maiúscula, 1 número e 1 caractere especial.")
	}

	confirma, err := ui.ReadPassword("Confirme a senha")
	if err != nil {
		return nil, err
	}
	if senha != confirma {
		return nil, fmt.Errorf("As senhas não coincidem.")
	}

	return &api.Registration{
		Nome:     nome,
		Email:    email,
		Senha:    senha,
		Empresa:  empresa,
		CNPJ:     cnpj,
		Telefone: telefone,
	}, nil
}

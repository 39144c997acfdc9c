package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verdexapp/verdex/internal/ui"
)

var (
	imageOut string
	imageSet string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Dados da conta",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		sp := ui.NewSpinner("Carregando perfil…")
		sp.Start()
		user, err := client.CurrentUser(context.Background())
		sp.Stop()
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println("  " + ui.Val(user.Nome))
		fmt.Println("  " + ui.Ident(user.Email))
		fmt.Println("  " + ui.Meta("Empresa  "+user.Empresa))
		fmt.Println("  " + ui.Meta("CNPJ     "+user.CNPJ))
		fmt.Println("  " + ui.Meta("Telefone "+user.Telefone))
		return nil
	},
}

var setPhoneCmd = &cobra.Command{
	Use:   "set-phone <telefone>",
	Short: "Atualizar o telefone da conta",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		telefone := digitsOnly(args[0])
		if len(telefone) != 11 {
			return fmt.Errorf("Preencha o telefone completo.")
		}

		if err := client.UpdatePhone(context.Background(), telefone); err != nil {
			return err
		}
		fmt.Println(ui.Success("Telefone atualizado."))
		return nil
	},
}

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Baixar ou atualizar a imagem de perfil",
	Long: `Sem flags, baixa a imagem de perfil atual. Com --set, envia uma
nova imagem.

Examples:
  verdex profile image --out avatar.jpg
  verdex profile image --set nova-foto.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		ctx := context.Background()

		if imageSet != "" {
			f, err := os.Open(imageSet)
			if err != nil {
				return fmt.Errorf("abrindo imagem: %w", err)
			}
			defer f.Close()

			if err := client.SaveProfileImage(ctx, f.Name(), f); err != nil {
				return err
			}
			fmt.Println(ui.Success("Imagem de perfil atualizada."))
			return nil
		}

		data, err := client.ProfileImage(ctx)
		if err != nil {
			return err
		}
		out := imageOut
		if out == "" {
			out = "perfil.jpg"
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("salvando imagem: %w", err)
		}
		fmt.Println(ui.Success("Imagem salva em " + out))
		return nil
	},
}

func init() {
	imageCmd.Flags().StringVar(&imageOut, "out", "", "arquivo de destino")
	imageCmd.Flags().StringVar(&imageSet, "set", "", "arquivo de imagem para enviar")
	profileCmd.AddCommand(setPhoneCmd, imageCmd)
}

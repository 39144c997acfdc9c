package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdexapp/verdex/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Ver e alterar a configuração do cliente",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Mostrar a configuração atual",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("  %s %s\n", ui.Meta("Backend          :"), ui.Ident(cfg.APIBaseURL))
		fmt.Printf("  %s %d s\n", ui.Meta("Intervalo de poll:"), cfg.PollIntervalSeconds)
		fmt.Printf("  %s %d min\n", ui.Meta("Timeout pagamento:"), cfg.PaymentTimeoutMinutes)
		fmt.Printf("  %s %s\n", ui.Meta("Diretório        :"), cfg.Dir())
		return nil
	},
}

var configSetURLCmd = &cobra.Command{
	Use:   "set-url <url>",
	Short: "Definir a URL do backend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.APIBaseURL = args[0]
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("salvando config: %w", err)
		}
		fmt.Println(ui.Success("Backend configurado: " + args[0]))
		return nil
	},
}

var configSetPollCmd = &cobra.Command{
	Use:   "set-poll-interval <segundos>",
	Short: "Definir o intervalo de verificação de pagamento",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var secs int
		if _, err := fmt.Sscanf(args[0], "%d", &secs); err != nil || secs <= 0 {
			return fmt.Errorf("intervalo inválido: %s", args[0])
		}
		cfg.PollIntervalSeconds = secs
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("salvando config: %w", err)
		}
		fmt.Println(ui.Success(fmt.Sprintf("Intervalo de poll: %d s", secs)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetURLCmd, configSetPollCmd)
}

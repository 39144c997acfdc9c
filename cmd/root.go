package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verdexapp/verdex/internal/api"
	"github.com/verdexapp/verdex/internal/config"
	"github.com/verdexapp/verdex/internal/session"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/verdexapp/verdex/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir  string
	cfg     *config.Config
	store   *session.Store
	client  *api.Client
	verbose bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "verdex",
	Short: "Créditos de carbono no terminal",
	Long: `verdex — cliente de terminal da plataforma de créditos de carbono.

  Consulte saldos, compre créditos via PIX, venda, transfira para outros
  usuários e acompanhe seu histórico de transações.

A URL do backend vem de ~/.verdex/config.json, de um arquivo .env ou da
variável VERDEX_API_BASE_URL. Persista com: verdex config set-url <url>`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		store = session.Open()
		client = api.NewClient(cfg.APIBaseURL,
			api.WithTokenSource(store.Token),
			// Cross-cutting 401 path: drop the stale token so the next
			// command lands on the login prompt. Clearing twice is harmless.
			api.WithUnauthorizedHook(func() { _ = store.Clear() }),
		)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// requireSession guards protected commands: without a stored token they
// never reach the network.
func requireSession() error {
	if !store.Active() {
		return fmt.Errorf("nenhuma sessão ativa — faça login com `verdex login`")
	}
	return nil
}

func init() {
	if envDir := os.Getenv("VERDEX_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.verdex)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		loginCmd,
		logoutCmd,
		registerCmd,
		dashboardCmd,
		projectsCmd,
		buyCmd,
		sellCmd,
		transferCmd,
		transactionsCmd,
		profileCmd,
		passwdCmd,
		configCmd,
	)
}

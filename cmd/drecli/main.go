// drecli calcula o DRE offline a partir de arquivos JSON e emite tokens de acesso
// para testes locais da API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfg2006/restaurant-dre-api/pkg/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "drecli",
		Short:         "Ferramentas de linha de comando do DRE de restaurantes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			log.Setup(level)
		},
	}

	root.PersistentFlags().String("log-level", "warn", "nível de log (debug, info, warn, error)")

	viper.AutomaticEnv()

	root.AddCommand(newReportCmd())
	root.AddCommand(newTokenCmd())

	return root
}

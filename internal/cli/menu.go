package cli

import (
	"github.com/cadre-oss/pyvengers/internal/shell"
	"github.com/spf13/cobra"
)

func runMenu(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Debug("starting interactive menu")
	return shell.New(a.store, cmd.InOrStdin(), cmd.OutOrStdout(), a.logger).Run()
}

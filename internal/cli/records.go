package cli

import (
	"fmt"

	"github.com/cadre-oss/pyvengers/internal/shell"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <superpower> <mission>",
	Short: "Add a PyVenger",
	Long: `Append a PyVenger to the data file.

Examples:
  pyvengers add Hulk Strength Smash
  pyvengers add "Iron Man" "Powered armor" "Save the world"`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all PyVengers",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find PyVengers whose name contains query (case-sensitive)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.Add(args[0], args[1], args[2]); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), shell.AddedMessage(args[0]))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	records, err := a.store.List()
	if err != nil {
		return err
	}

	shell.PrintList(cmd.OutOrStdout(), records)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	matches, err := a.store.Search(args[0])
	if err != nil {
		return err
	}

	shell.PrintMatches(cmd.OutOrStdout(), args[0], matches)
	return nil
}

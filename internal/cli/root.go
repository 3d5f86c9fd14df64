package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cadre-oss/pyvengers/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	dataFile string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "pyvengers",
	Short: "Keep track of your PyVengers",
	Long: `pyvengers - a tiny record manager for your team of heroes.

Run without a subcommand to open the interactive menu, or use
add, list and search directly from scripts.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./pyvengers.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data-file", "", "JSON file holding the records (default is ./pyvengers.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("data_file", rootCmd.PersistentFlags().Lookup("data-file"))

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

func initConfig() {
	// Name the file exactly: a name-only search would also match the
	// pyvengers.json data file.
	viper.SetConfigFile(configPath())
	viper.SetConfigType("yaml")

	// PYVENGERS_DATA_FILE overrides data.file
	viper.SetEnvPrefix("pyvengers")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// configPath is --config when given, otherwise ./pyvengers.yaml.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return filepath.Join(".", config.FileName)
}

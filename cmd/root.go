/*
Package cmd implements the command-line interface for jsonrpc-go.
It is a thin wrapper around the client core: it loads the endpoint
configuration and forwards method calls, contributing no protocol logic
of its own.
*/
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	projectName = "jsonrpc-go"
	cfgFile     string

	rootCmd = &cobra.Command{
		Use:   "jsonrpc-go",
		Short: "A JSON-RPC 2.0 client",
		Long:  longRoot,
	}
)

/*
Execute is the main entry point for the jsonrpc-go CLI. It initializes
the root command and executes it.
*/
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is $HOME/."+projectName+"/config.yml)",
	)

	rootCmd.PersistentFlags().String(
		"endpoint",
		"",
		"JSON-RPC endpoint URL",
	)

	_ = viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
}

/*
initConfig reads the config file, if one exists, and fills in defaults
for anything it does not set.
*/
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, "."+projectName))
		viper.SetConfigName("config")
		viper.SetConfigType("yml")
	}

	viper.SetDefault("endpoint", "http://localhost:8080/rpc")
	viper.SetDefault("validate", true)
	viper.SetDefault("timeout", "90s")

	viper.AutomaticEnv()

	// A missing config file is fine, the defaults carry the CLI.
	_ = viper.ReadInConfig()
}

var longRoot = `
jsonrpc-go is a client for JSON-RPC 2.0 servers.

It builds well-formed requests and notifications, transmits them over
HTTP, and reduces the replies to a result value or a typed error.
`

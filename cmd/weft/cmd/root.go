// Package cmd implements the weft CLI commands.
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// settings layers WEFT_* environment variables and flags over weft.yaml.
var settings = viper.New()

var rootCmd = &cobra.Command{
	Use:   "weft",
	Short: "Weft - component-driven terminal UIs in Go",
	Long: `Weft renders trees of components described by YAML templates to the
terminal. Components receive key, mouse, tick and message events and notify
their parents through associated events.

Use "weft <command> --help" for more information about a command.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	settings.SetEnvPrefix("WEFT")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()

	flags := rootCmd.PersistentFlags()
	flags.String("dir", "", "project directory (default: nearest go.mod or weft.yaml)")
	flags.Bool("verbose", false, "report dropped messages and include stack traces")
	_ = settings.BindPFlag("dir", flags.Lookup("dir"))
	_ = settings.BindPFlag("verbose", flags.Lookup("verbose"))

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

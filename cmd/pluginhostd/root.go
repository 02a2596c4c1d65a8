// Package main implements pluginhostd, the development server that serves
// Chronolens extension frontends with on-demand import resolution.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is set via -ldflags at release time.
	Version = "dev"

	verbose bool
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "pluginhostd",
		Short: "Chronolens extension development server",
		Long: TitleStyle.Render("pluginhostd") + SubtitleStyle.Render(" - Chronolens extension development server") + `

Serves extension frontend files straight from the extensions
installation directory, resolving imports of host capabilities,
sibling files, and third-party packages on every request. No
per-extension build step, no caching: edit, reload, repeat.`,
		PersistentPreRun: func(*cobra.Command, []string) {
			setupLogging()
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/chronolens/pluginhost.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// setupLogging installs a charmbracelet handler as the process-wide slog
// backend so library packages log through it.
func setupLogging() {
	opts := charmlog.Options{ReportTimestamp: true}
	if verbose {
		opts.Level = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(os.Stderr, opts)
	slog.SetDefault(slog.New(handler))
}

// initConfig wires viper: flags beat environment beats config file.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(dir + "/chronolens")
		}
		viper.SetConfigName("pluginhost")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CHRONOLENS")
	viper.AutomaticEnv()

	viper.SetDefault("listen", "127.0.0.1:8765")
	viper.SetDefault("extensions_root", "")
	viper.SetDefault("host_root", "")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, SubtitleStyle.Render("using config: "+viper.ConfigFileUsed()))
	}
}

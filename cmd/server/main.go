// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-api/cmd/server/client"
	"github.com/KirkDiggler/pokedex-api/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "pokedex-api",
	Short: "Pokedex API gRPC Server",
	Long: `Pokedex API serves localized PokeAPI entries and evolution trees over gRPC.
Every request reads from PokeAPI; nothing is cached between requests.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.pokedex.yaml or $HOME/.pokedex.yaml)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

func initConfig() {
	home, _ := os.UserHomeDir() // nolint:errcheck // an empty home only drops one search path
	config.Init(cfgFile, home)
}

func setupLogger(cfg *config.Config) {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

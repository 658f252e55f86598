// Package client provides test commands for the Pokedex API gRPC service
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/pokedex-api/internal/handlers/pokedex/v1alpha1"
)

var (
	// Connection flags
	timeout time.Duration
	locales []string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the Pokedex API",
	Long:  `Client commands allow you to browse the Pokedex API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().String("server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringSliceVar(&locales, "locales", nil,
		"Preferred locales, most preferred first (server default when empty)")

	_ = viper.BindPFlag("client.server_addr", ClientCmd.PersistentFlags().Lookup("server")) // nolint:errcheck

	ClientCmd.AddCommand(listEntriesCmd)
	ClientCmd.AddCommand(getEntryCmd)
	ClientCmd.AddCommand(getEvolutionTreeCmd)
}

func serverAddr() string {
	if addr := viper.GetString("client.server_addr"); addr != "" {
		return addr
	}
	return "localhost:50051"
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createPokedexClient creates a pokedex service client
func createPokedexClient() (v1alpha1.PokedexServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewPokedexServiceClient(conn), cleanup, nil
}

// requestContext applies the timeout and forwards --locales as accept-language
func requestContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	if len(locales) > 0 {
		ctx = metadata.AppendToOutgoingContext(ctx, v1alpha1.LocaleMetadataKey, strings.Join(locales, ","))
	}
	return ctx, cancel
}

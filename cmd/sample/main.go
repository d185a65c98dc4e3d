// Command sample demonstrates the sunbreeze framework with a small
// application: plain function routes, a path parameter, a resource with GET
// and POST, template rendering, and a route that fails on purpose to show
// the error boundary.
//
// Run the server:
//
//	go run ./cmd/sample serve
//	go run ./cmd/sample serve --addr :9000 --debug
//	go run ./cmd/sample serve --config sample.yaml
//
// Print the route table:
//
//	go run ./cmd/sample routes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sample",
		Short:         "Sample sunbreeze application",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		routesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

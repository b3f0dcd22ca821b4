package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection and auth status",
		Long:  "Tests the connection to the server and checks if the stored token is valid.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	serverURL := getServerURL()
	token := getToken()

	fmt.Printf("Server:  %s\n", serverURL)

	if token == "" {
		fmt.Println("Token:   not configured")
		fmt.Println("\nRun 'artlibro login' to authenticate.")
		return nil
	}

	prefix := token
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	fmt.Printf("Token:   %s…\n", prefix)

	profile, err := newAPIClient().Me()
	if err != nil {
		fmt.Printf("Status:  ✗ not authenticated (%v)\n", err)
		fmt.Println("\nRun 'artlibro login' to re-authenticate.")
		return nil
	}

	fmt.Printf("Status:  ✓ logged in as %s\n", profile.Name)
	return nil
}

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kdh990315/artlibro-cli/internal/client"
)

func newLoginCmd() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store an API token",
		Long:  "Opens a browser to authenticate and generate an API token for CLI access. The token and your display name are stored in the config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(server)
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "server URL (default: from config or http://localhost:8080)")

	return cmd
}

func runLogin(serverFlag string) error {
	serverURL := serverFlag
	if serverURL == "" {
		serverURL = getServerURL()
	}

	authURL := strings.TrimRight(serverURL, "/") + "/login?cli=1"

	fmt.Println("Opening browser for authentication...")
	fmt.Printf("If the browser doesn't open, visit: %s\n\n", authURL)

	if err := openBrowser(authURL); err != nil {
		fmt.Fprintf(os.Stderr, "Could not open browser: %v\n", err)
	}

	fmt.Print("Paste your API token: ")
	reader := bufio.NewReader(os.Stdin)
	token, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	token = strings.TrimSpace(token)
	if err := validateToken(token); err != nil {
		return err
	}

	// Resolve the display name now so comments can be attributed
	// without a round trip later.
	profile, err := client.New(serverURL, token).Me()
	if err != nil {
		return fmt.Errorf("verifying token: %w", err)
	}

	// Load existing config to preserve other fields
	cfg, err := loadConfig()
	if err != nil {
		cfg = CLIConfig{}
	}

	cfg.Token = token
	cfg.Username = profile.Name
	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}

	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("✓ Token saved. You're logged in as %s!\n", profile.Name)
	return nil
}

// validateToken checks that the token is non-empty and has no embedded
// whitespace.
func validateToken(token string) error {
	if token == "" {
		return fmt.Errorf("no API token provided")
	}
	if strings.ContainsAny(token, " \t") {
		return fmt.Errorf("invalid API token format")
	}
	return nil
}

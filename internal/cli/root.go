// Package cli defines the cobra command tree for the artLibro CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kdh990315/artlibro-cli/internal/cache"
	"github.com/kdh990315/artlibro-cli/internal/client"
	"github.com/kdh990315/artlibro-cli/internal/comment"
	"github.com/kdh990315/artlibro-cli/internal/logging"
)

var (
	flagFormat  string
	flagCache   string
	flagVerbose bool
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "artlibro",
		Short:         "Read and write artLibro comment threads",
		Long:          "A companion for the artLibro community. Browse post summaries, keep comment threads cached locally, and post or delete comments from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(flagVerbose)
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagCache, "cache", "", "comment cache path (default: ~/.artlibro/cache.db)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	root.AddCommand(
		newPostCmd(),
		newCommentCmd(),
		newCommentsCmd(),
		newUncommentCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// openCache opens the comment cache using the --cache flag or default path.
func openCache() (*cache.Store, error) {
	path := flagCache
	if path == "" {
		var err error
		path, err = cache.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return cache.Open(path)
}

// newAPIClient creates an HTTP client for the artLibro API.
func newAPIClient() *client.Client {
	return client.New(getServerURL(), getToken())
}

// newThread wires a comment thread to the API client, the local cache,
// the stored identity, and the terminal. The returned cache store must
// be closed by the caller.
func newThread(prompt comment.Prompter) (*comment.Thread, *cache.Store, error) {
	store, err := openCache()
	if err != nil {
		return nil, nil, err
	}

	thread := comment.NewThread(
		configAuth{},
		newAPIClient(),
		store,
		prompt,
		browserNavigator{},
	)
	return thread, store, nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeCache closes the cache store, logging any error to stderr.
func closeCache(store *cache.Store) {
	if err := store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing cache: %v\n", err)
	}
}

// configAuth reads the identity from the CLI config and environment.
type configAuth struct{}

// Identity returns the stored identity. There is no identity without a
// token; a token without a stored display name counts as logged out,
// since comments are attributed by name.
func (configAuth) Identity() (comment.Identity, bool) {
	token := getToken()
	name := getUsername()
	if token == "" || name == "" {
		return comment.Identity{}, false
	}
	return comment.Identity{Name: name, Token: token}, true
}

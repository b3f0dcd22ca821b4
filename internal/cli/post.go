package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kdh990315/artlibro-cli/internal/post"
)

func newPostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post <postID>",
		Short: "Show a post's summary card",
		Long:  "Fetch a post's metadata from the server and render its summary card.",
		Args:  cobra.ExactArgs(1),
		RunE:  runPost,
	}
}

func runPost(cmd *cobra.Command, args []string) error {
	c := newAPIClient()

	summary, err := c.GetPost(args[0])
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(summary)
	}

	return post.RenderCard(os.Stdout, *summary)
}

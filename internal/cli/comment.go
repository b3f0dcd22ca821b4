package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `comment <postID> "text"`,
		Short: "Post a comment on a post",
		Long:  "Post a comment on a post. Requires being logged in; the local thread cache is updated on success.",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runComment,
	}
}

func runComment(cmd *cobra.Command, args []string) error {
	postID := args[0]
	text := strings.Join(args[1:], " ")

	thread, store, err := newThread(newTerminalPrompter())
	if err != nil {
		return err
	}
	defer closeCache(store)

	if err := thread.Load(postID); err != nil {
		return err
	}

	before := len(thread.Comments())
	thread.SetDraft(text)
	if err := thread.Submit(); err != nil {
		return err
	}

	comments := thread.Comments()
	if len(comments) == before {
		// Submission was gated (empty text or not logged in); the
		// thread already told the user what to do.
		return nil
	}

	if isJSON() {
		return printJSON(comments[0])
	}

	fmt.Printf("✓ Comment %s posted.\n  %s\n", comments[0].ID, comments[0].Content)
	return nil
}

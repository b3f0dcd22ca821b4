package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kdh990315/artlibro-cli/internal/comment"
)

func newUncommentCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "uncomment <postID> <commentID>",
		Short: "Delete one of your comments",
		Long:  "Delete a comment from a post's thread. Asks for confirmation unless --yes is given. The server rejects deletes of other people's comments.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUncomment(args[0], args[1], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runUncomment(postID, commentID string, yes bool) error {
	var prompt comment.Prompter = newTerminalPrompter()
	if yes {
		prompt = autoConfirm{newTerminalPrompter()}
	}

	thread, store, err := newThread(prompt)
	if err != nil {
		return err
	}
	defer closeCache(store)

	if err := thread.Load(postID); err != nil {
		return err
	}

	before := len(thread.Comments())
	if before == 0 || !hasComment(thread, commentID) {
		return fmt.Errorf("comment %s is not in the cached thread for post %s", commentID, postID)
	}

	if err := thread.Remove(commentID); err != nil {
		return err
	}

	if len(thread.Comments()) == before {
		// Confirmation declined; nothing happened.
		return nil
	}

	if isJSON() {
		return printJSON(map[string]interface{}{
			"id":      commentID,
			"removed": true,
		})
	}

	fmt.Printf("✓ Comment %s removed.\n", commentID)
	return nil
}

func hasComment(thread *comment.Thread, commentID string) bool {
	for _, c := range thread.Comments() {
		if c.ID == commentID {
			return true
		}
	}
	return false
}

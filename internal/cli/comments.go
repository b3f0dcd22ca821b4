package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/kdh990315/artlibro-cli/internal/comment"
)

func newCommentsCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "comments <postID>",
		Short: "Show the cached comment thread for a post",
		Long:  "Show the locally cached comment thread for a post, newest first. Threads are cached when you post or delete comments; no fetch happens here.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComments(args[0], watch)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "keep the thread on screen, refreshing the time labels")

	return cmd
}

func runComments(postID string, watch bool) error {
	thread, store, err := newThread(newTerminalPrompter())
	if err != nil {
		return err
	}
	defer closeCache(store)

	if err := thread.Load(postID); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(thread.Comments())
	}

	render := func() {
		fmt.Printf("Comments for post %s:\n\n", postID)
		printCommentList(thread)
	}
	render()

	if !watch {
		return nil
	}

	// Only the labels go stale, so the refresher just re-renders the
	// thread on its interval until the user interrupts.
	refresher := comment.NewRefresher(comment.RefreshInterval, render)
	refresher.Start()
	defer refresher.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-ctx.Done()

	fmt.Println()
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kdh990315/artlibro-cli/internal/comment"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printCommentList prints a thread's comments in text format, newest
// first, with relative-time labels. Comments the logged-in user may
// delete are marked.
func printCommentList(thread *comment.Thread) {
	comments := thread.Comments()
	if len(comments) == 0 {
		fmt.Println("No comments.")
		return
	}

	now := time.Now()
	for _, c := range comments {
		mine := ""
		if thread.CanRemove(c) {
			mine = " *"
		}
		fmt.Printf("[%s] %s (%s)%s\n  %s\n\n",
			comment.TimeAgo(c.CreatedAt, now), c.ID, c.Author, mine, truncate(c.Content, 200))
	}
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

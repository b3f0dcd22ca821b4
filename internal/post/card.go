package post

import (
	"fmt"
	"io"
)

// RenderCard writes the fixed card layout for a summary. It is a pure
// function of its input: no state, no side effects beyond the write.
func RenderCard(w io.Writer, s Summary) error {
	lines := []string{
		fmt.Sprintf("[NEW] %s", s.Title),
		fmt.Sprintf("  Author:    %s", s.Author),
		fmt.Sprintf("  Published: %s", s.PublishedDate),
		fmt.Sprintf("  Cover:     %s", s.CoverImage),
		fmt.Sprintf("  Comments:  %d   Likes: %d", s.CommentCount, s.LikeCount),
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing card: %w", err)
		}
	}
	return nil
}

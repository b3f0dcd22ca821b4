// Package post provides the post summary model and its card rendering.
package post

// Summary is the metadata shown on a post's summary card. It is a plain
// value: two summaries with the same fields render the same card.
type Summary struct {
	Title         string `json:"title"`
	CoverImage    string `json:"coverImage"`
	PublishedDate string `json:"publishedDate"`
	Author        string `json:"author"`
	CommentCount  int    `json:"commentCount"`
	LikeCount     int    `json:"likeCount"`
}

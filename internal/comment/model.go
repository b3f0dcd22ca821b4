// Package comment provides the comment thread model and its
// synchronization between the artLibro API and the local cache.
package comment

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultAvatar is the avatar reference assigned to comments created
// from this client. The server does not return one on create.
const DefaultAvatar = "/images/default-profile.png"

// Comment is a single entry in a post's comment thread.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Avatar    string    `json:"avatar"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Valid reports whether a comment read back from the cache has the
// fields this package relies on. Cached data is user-writable on disk,
// so entries are checked rather than trusted.
func (c Comment) Valid() bool {
	return c.ID != "" && c.Author != "" && !c.CreatedAt.IsZero()
}

// CacheKey returns the cache key for a post's comment thread.
func CacheKey(postID string) string {
	return "comments_" + postID
}

// EncodeList serializes a comment thread for the cache.
func EncodeList(comments []Comment) (string, error) {
	data, err := json.Marshal(comments)
	if err != nil {
		return "", fmt.Errorf("encoding comments: %w", err)
	}
	return string(data), nil
}

// DecodeList deserializes a cached comment thread. Entries that fail
// validation, and entries whose id repeats an earlier one, are dropped;
// the remaining entries keep their stored order.
func DecodeList(raw string) ([]Comment, error) {
	var comments []Comment
	if err := json.Unmarshal([]byte(raw), &comments); err != nil {
		return nil, fmt.Errorf("decoding comments: %w", err)
	}

	seen := make(map[string]bool, len(comments))
	kept := comments[:0]
	for _, c := range comments {
		if !c.Valid() || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		kept = append(kept, c)
	}

	return kept, nil
}

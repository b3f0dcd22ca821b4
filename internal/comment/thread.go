package comment

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Identity is the authenticated user as known to this client.
type Identity struct {
	Name  string
	Token string
}

// AuthSource reports the current identity, if any.
type AuthSource interface {
	Identity() (Identity, bool)
}

// CreatedComment is the comment service's response to a create call.
type CreatedComment struct {
	ID        string    `json:"id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service is the remote comment service used for mutations. Reads never
// hit the service; the thread renders from the local cache only.
type Service interface {
	CreateComment(postID, text string) (CreatedComment, error)
	DeleteComment(commentID string) error
}

// Store is the persistent key-value store backing the comment cache.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Prompter asks the user blocking questions and reports failures.
type Prompter interface {
	Confirm(message string) bool
	Alert(message string)
}

// Navigator sends the user to a path on the community site.
type Navigator interface {
	Navigate(path string)
}

// LoginPath is where Submit sends an unauthenticated user who agrees
// to log in.
const LoginPath = "/login"

// Thread owns the in-memory comment list for one post and keeps the
// cache entry for that post in sync with it. The cache is a derived
// mirror: it is rewritten wholesale after every successful mutation and
// is never merged with concurrent writers (last writer wins).
type Thread struct {
	auth   AuthSource
	svc    Service
	store  Store
	prompt Prompter
	nav    Navigator

	postID     string
	comments   []Comment
	draft      string
	submitting bool
}

// NewThread creates a thread with no post loaded. Call Load before any
// other operation.
func NewThread(auth AuthSource, svc Service, store Store, prompt Prompter, nav Navigator) *Thread {
	return &Thread{
		auth:   auth,
		svc:    svc,
		store:  store,
		prompt: prompt,
		nav:    nav,
	}
}

// Load switches the thread to postID and replaces the comment list with
// the cached entry for that post (empty if none). Loading the post that
// is already loaded is a no-op. No network call is made here: cached
// comments render instantly, at the cost of staleness until this client
// next mutates the thread.
func (t *Thread) Load(postID string) error {
	if postID == "" {
		return fmt.Errorf("post id is required")
	}
	if postID == t.postID {
		return nil
	}

	raw, ok, err := t.store.Get(CacheKey(postID))
	if err != nil {
		return fmt.Errorf("reading cached comments: %w", err)
	}

	t.postID = postID
	t.comments = nil
	if !ok {
		return nil
	}

	comments, err := DecodeList(raw)
	if err != nil {
		// A corrupt cache entry is not fatal; the thread just starts
		// empty and the next successful mutation rewrites the entry.
		slog.Warn("discarding unreadable comment cache entry",
			"post", postID, "error", err)
		return nil
	}

	t.comments = comments
	return nil
}

// PostID returns the id of the currently loaded post.
func (t *Thread) PostID() string {
	return t.postID
}

// Comments returns the thread's comments, newest first.
func (t *Thread) Comments() []Comment {
	out := make([]Comment, len(t.comments))
	copy(out, t.comments)
	return out
}

// SetDraft replaces the draft comment text.
func (t *Thread) SetDraft(text string) {
	t.draft = text
}

// Draft returns the current draft comment text.
func (t *Thread) Draft() string {
	return t.draft
}

// Submitting reports whether a create call is in flight.
func (t *Thread) Submitting() bool {
	return t.submitting
}

// Submit posts the draft as a new comment. An empty draft is silently
// ignored. Without an identity the user is offered the login page and
// the submission is aborted before any network call. On success the new
// comment is prepended (threads read newest first), the full list is
// persisted under the post's cache key, and the draft is cleared. On
// failure the thread is left exactly as it was.
func (t *Thread) Submit() error {
	if t.postID == "" {
		return fmt.Errorf("no post loaded")
	}

	text := strings.TrimSpace(t.draft)
	if text == "" {
		return nil
	}

	ident, ok := t.auth.Identity()
	if !ok {
		if t.prompt.Confirm("You need to log in to comment. Open the login page?") {
			t.nav.Navigate(LoginPath)
		}
		return nil
	}

	t.submitting = true
	defer func() { t.submitting = false }()

	created, err := t.svc.CreateComment(t.postID, text)
	if err != nil {
		t.prompt.Alert("Could not post your comment. Please try again.")
		return fmt.Errorf("creating comment: %w", err)
	}

	c := Comment{
		ID:        created.ID,
		Author:    ident.Name,
		Avatar:    DefaultAvatar,
		Content:   created.Comment,
		CreatedAt: created.CreatedAt,
	}
	t.comments = append([]Comment{c}, t.comments...)
	t.draft = ""

	return t.persist()
}

// Remove deletes a comment from the thread after a blocking
// confirmation. A commentID not present in the thread is a no-op: no
// prompt, no network call. On success the entry is removed and the full
// list persisted; on failure or declined confirmation the thread is
// unchanged.
func (t *Thread) Remove(commentID string) error {
	idx := t.indexOf(commentID)
	if idx < 0 {
		return nil
	}

	if !t.prompt.Confirm("Delete this comment?") {
		return nil
	}

	if err := t.svc.DeleteComment(commentID); err != nil {
		t.prompt.Alert("Could not delete the comment. Please try again.")
		return fmt.Errorf("deleting comment: %w", err)
	}

	t.comments = append(t.comments[:idx], t.comments[idx+1:]...)
	return t.persist()
}

// CanRemove reports whether the delete affordance should be shown for a
// comment. This is a display hint only: it compares author names, which
// anyone can forge. The server's own authorization check on delete is
// the enforcement point.
func (t *Thread) CanRemove(c Comment) bool {
	ident, ok := t.auth.Identity()
	return ok && ident.Name == c.Author
}

// persist rewrites the cache entry for the loaded post with the current
// comment list. The in-memory list stays authoritative even if the
// write fails.
func (t *Thread) persist() error {
	encoded, err := EncodeList(t.comments)
	if err != nil {
		return err
	}
	if err := t.store.Set(CacheKey(t.postID), encoded); err != nil {
		return fmt.Errorf("writing comment cache: %w", err)
	}
	return nil
}

func (t *Thread) indexOf(commentID string) int {
	for i, c := range t.comments {
		if c.ID == commentID {
			return i
		}
	}
	return -1
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID          uuid.UUID  `json:"id" db:"comment_id"`
	ArticleSlug string     `json:"article_slug" db:"article_slug"`
	AuthorName  string     `json:"author_name" db:"author_name"`
	AuthorEmail string     `json:"author_email" db:"author_email"`
	Content     string     `json:"content" db:"content"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty" db:"parent_id"`
	IsApproved  bool       `json:"is_approved" db:"is_approved"`
	IsAdmin     bool       `json:"is_admin" db:"is_admin"`
	IPAddress   string     `json:"-" db:"ip_address"`
	UserAgent   string     `json:"-" db:"user_agent"`
	LikeCount   int64      `json:"like_count" db:"like_count"`
	ReplyCount  int64      `json:"reply_count" db:"reply_count"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`

	Replies []Comment `json:"replies,omitempty" db:"-"`
}

// CommentLike is the dedup row behind the like counter: at most one
// row per (comment_id, user_id) pair.
type CommentLike struct {
	CommentID uuid.UUID `json:"comment_id" db:"comment_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateCommentInput struct {
	AuthorName  string     `json:"author_name"`
	AuthorEmail string     `json:"author_email"`
	Content     string     `json:"content"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

// UpdateCommentInput is a typed patch: only non-nil fields are written.
type UpdateCommentInput struct {
	Content     *string `json:"content"`
	IsApproved  *bool   `json:"is_approved"`
	AuthorName  *string `json:"author_name"`
	AuthorEmail *string `json:"author_email"`
}

func (in UpdateCommentInput) Empty() bool {
	return in.Content == nil && in.IsApproved == nil && in.AuthorName == nil && in.AuthorEmail == nil
}

// CreateCommentResult is returned to the submitter; NeedsModeration
// signals that the comment was held for review rather than published.
type CreateCommentResult struct {
	Comment         *Comment `json:"comment"`
	NeedsModeration bool     `json:"needs_moderation"`
	Message         string   `json:"message"`
}

// Identity is the assertion produced by the external auth layer.
// A nil *Identity means an anonymous submitter.
type Identity struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// RequestInfo carries the forensic fields captured from the HTTP request.
type RequestInfo struct {
	IPAddress string
	UserAgent string
}

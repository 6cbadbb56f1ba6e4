package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"yorum-servisi/internal/domain"
)

// CommentRepository is the persistence adapter for comment records:
// one logical table keyed by comment id plus a secondary lookup by
// article slug. Store unavailability surfaces to the caller as-is;
// no retry happens at this layer.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByArticle(ctx context.Context, articleSlug string) ([]domain.Comment, error)
	ListAll(ctx context.Context) ([]domain.Comment, error)
	ListPending(ctx context.Context) ([]domain.Comment, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AdjustLikeCount(ctx context.Context, id uuid.UUID, delta int) (*domain.Comment, error)
	AdjustReplyCount(ctx context.Context, id uuid.UUID, delta int) (*domain.Comment, error)
}

// CommentLikeRepository stores the like-dedup rows. Create fails with
// domain.ErrAlreadyLiked on a duplicate (comment, user) pair; Delete is
// a no-op when the row is absent.
type CommentLikeRepository interface {
	Create(ctx context.Context, like *domain.CommentLike) error
	Delete(ctx context.Context, commentID, userID uuid.UUID) error
}

type Repositories struct {
	Comment     CommentRepository
	CommentLike CommentLikeRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Comment:     NewCommentRepository(db),
		CommentLike: NewCommentLikeRepository(db),
	}
}

// NewMemoryRepositories returns the volatile in-memory implementation,
// used when the primary store is unavailable or explicitly configured.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Comment:     NewMemoryCommentRepository(),
		CommentLike: NewMemoryCommentLikeRepository(),
	}
}

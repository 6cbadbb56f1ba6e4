package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"yorum-servisi/internal/domain"
)

// memoryCommentRepository is the volatile fallback implementation of
// CommentRepository. Everything lives in a map guarded by a RWMutex;
// data is lost on restart.
type memoryCommentRepository struct {
	mu       sync.RWMutex
	comments map[uuid.UUID]domain.Comment
}

func NewMemoryCommentRepository() CommentRepository {
	return &memoryCommentRepository{
		comments: make(map[uuid.UUID]domain.Comment),
	}
}

func (r *memoryCommentRepository) Create(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.comments[comment.ID]; exists {
		return domain.ErrCommentExists
	}

	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	comment.LikeCount = 0
	comment.ReplyCount = 0

	r.comments[comment.ID] = *comment
	return nil
}

func (r *memoryCommentRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	return &comment, nil
}

func (r *memoryCommentRepository) ListByArticle(_ context.Context, articleSlug string) ([]domain.Comment, error) {
	return r.list(func(c domain.Comment) bool { return c.ArticleSlug == articleSlug }), nil
}

func (r *memoryCommentRepository) ListAll(_ context.Context) ([]domain.Comment, error) {
	return r.list(func(domain.Comment) bool { return true }), nil
}

func (r *memoryCommentRepository) ListPending(_ context.Context) ([]domain.Comment, error) {
	return r.list(func(c domain.Comment) bool { return !c.IsApproved }), nil
}

func (r *memoryCommentRepository) list(match func(domain.Comment) bool) []domain.Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comments := make([]domain.Comment, 0)
	for _, c := range r.comments {
		if match(c) {
			comments = append(comments, c)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments
}

func (r *memoryCommentRepository) Update(_ context.Context, id uuid.UUID, input domain.UpdateCommentInput) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}

	if input.Content != nil {
		comment.Content = *input.Content
	}
	if input.IsApproved != nil {
		comment.IsApproved = *input.IsApproved
	}
	if input.AuthorName != nil {
		comment.AuthorName = *input.AuthorName
	}
	if input.AuthorEmail != nil {
		comment.AuthorEmail = *input.AuthorEmail
	}
	comment.UpdatedAt = time.Now().UTC()

	r.comments[id] = comment
	return &comment, nil
}

func (r *memoryCommentRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.comments, id)
	return nil
}

func (r *memoryCommentRepository) AdjustLikeCount(_ context.Context, id uuid.UUID, delta int) (*domain.Comment, error) {
	return r.adjustCounter(id, delta, func(c *domain.Comment, n int64) { c.LikeCount = n }, func(c domain.Comment) int64 { return c.LikeCount })
}

func (r *memoryCommentRepository) AdjustReplyCount(_ context.Context, id uuid.UUID, delta int) (*domain.Comment, error) {
	return r.adjustCounter(id, delta, func(c *domain.Comment, n int64) { c.ReplyCount = n }, func(c domain.Comment) int64 { return c.ReplyCount })
}

func (r *memoryCommentRepository) adjustCounter(id uuid.UUID, delta int, set func(*domain.Comment, int64), get func(domain.Comment) int64) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}

	next := get(comment) + int64(delta)
	if next < 0 {
		next = 0
	}
	set(&comment, next)
	comment.UpdatedAt = time.Now().UTC()

	r.comments[id] = comment
	return &comment, nil
}

type likeKey struct {
	commentID uuid.UUID
	userID    uuid.UUID
}

type memoryCommentLikeRepository struct {
	mu    sync.Mutex
	likes map[likeKey]domain.CommentLike
}

func NewMemoryCommentLikeRepository() CommentLikeRepository {
	return &memoryCommentLikeRepository{
		likes: make(map[likeKey]domain.CommentLike),
	}
}

func (r *memoryCommentLikeRepository) Create(_ context.Context, like *domain.CommentLike) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := likeKey{commentID: like.CommentID, userID: like.UserID}
	if _, exists := r.likes[key]; exists {
		return domain.ErrAlreadyLiked
	}

	like.CreatedAt = time.Now().UTC()
	r.likes[key] = *like
	return nil
}

func (r *memoryCommentLikeRepository) Delete(_ context.Context, commentID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.likes, likeKey{commentID: commentID, userID: userID})
	return nil
}

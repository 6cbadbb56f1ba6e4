package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"yorum-servisi/internal/domain"
)

type commentLikeRepository struct {
	db *sqlx.DB
}

func NewCommentLikeRepository(db *sqlx.DB) CommentLikeRepository {
	return &commentLikeRepository{db: db}
}

func (r *commentLikeRepository) Create(ctx context.Context, like *domain.CommentLike) error {
	query := `
		INSERT INTO comment_likes (comment_id, user_id)
		VALUES ($1, $2)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query, like.CommentID, like.UserID).Scan(&like.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyLiked
	}
	return err
}

func (r *commentLikeRepository) Delete(ctx context.Context, commentID, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`,
		commentID, userID,
	)
	return err
}

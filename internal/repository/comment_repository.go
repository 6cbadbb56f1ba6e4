package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"yorum-servisi/internal/domain"
)

const uniqueViolation = "23505"

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (
			comment_id, article_slug, author_name, author_email, content,
			parent_id, is_approved, is_admin, ip_address, user_agent
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING like_count, reply_count, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.ArticleSlug, comment.AuthorName, comment.AuthorEmail, comment.Content,
		comment.ParentID, comment.IsApproved, comment.IsAdmin, comment.IPAddress, comment.UserAgent,
	).Scan(&comment.LikeCount, &comment.ReplyCount, &comment.CreatedAt, &comment.UpdatedAt)

	if isUniqueViolation(err) {
		return domain.ErrCommentExists
	}
	return err
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	query := `SELECT * FROM comments WHERE comment_id = $1`
	if err := r.db.GetContext(ctx, &comment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByArticle(ctx context.Context, articleSlug string) ([]domain.Comment, error) {
	var comments []domain.Comment
	query := `SELECT * FROM comments WHERE article_slug = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &comments, query, articleSlug); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) ListAll(ctx context.Context) ([]domain.Comment, error) {
	var comments []domain.Comment
	query := `SELECT * FROM comments ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &comments, query); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) ListPending(ctx context.Context) ([]domain.Comment, error) {
	var comments []domain.Comment
	query := `SELECT * FROM comments WHERE is_approved = false ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &comments, query); err != nil {
		return nil, err
	}
	return comments, nil
}

// Update writes only the fields present in the typed patch and always
// stamps updated_at.
func (r *commentRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdateCommentInput) (*domain.Comment, error) {
	set := []string{"updated_at = NOW()"}
	args := []interface{}{id}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.Content != nil {
		add("content", *input.Content)
	}
	if input.IsApproved != nil {
		add("is_approved", *input.IsApproved)
	}
	if input.AuthorName != nil {
		add("author_name", *input.AuthorName)
	}
	if input.AuthorEmail != nil {
		add("author_email", *input.AuthorEmail)
	}

	query := fmt.Sprintf(
		`UPDATE comments SET %s WHERE comment_id = $1 RETURNING *`,
		strings.Join(set, ", "),
	)

	var comment domain.Comment
	if err := r.db.GetContext(ctx, &comment, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	return err
}

func (r *commentRepository) AdjustLikeCount(ctx context.Context, id uuid.UUID, delta int) (*domain.Comment, error) {
	return r.adjustCounter(ctx, id, "like_count", delta)
}

func (r *commentRepository) AdjustReplyCount(ctx context.Context, id uuid.UUID, delta int) (*domain.Comment, error) {
	return r.adjustCounter(ctx, id, "reply_count", delta)
}

// adjustCounter applies the delta as a single conditional statement so
// concurrent adjustments never lose updates. Counters clamp at zero.
func (r *commentRepository) adjustCounter(ctx context.Context, id uuid.UUID, column string, delta int) (*domain.Comment, error) {
	query := fmt.Sprintf(`
		UPDATE comments
		SET %s = GREATEST(0, %s + $2), updated_at = NOW()
		WHERE comment_id = $1
		RETURNING *`, column, column)

	var comment domain.Comment
	if err := r.db.GetContext(ctx, &comment, query, id, delta); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

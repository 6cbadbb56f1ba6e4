package comment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"yorum-servisi/internal/domain"
	"yorum-servisi/internal/repository"
	"yorum-servisi/internal/service/email"
	"yorum-servisi/internal/service/moderation"
)

const (
	contentMinLength = 10
	contentMaxLength = 1000
)

const (
	messagePublished = "Yorumunuz yayınlandı."
	messagePending   = "Yorumunuz inceleme için alındı, onaylandıktan sonra yayınlanacak."
)

type Service interface {
	Create(ctx context.Context, articleSlug string, input domain.CreateCommentInput, identity *domain.Identity, req domain.RequestInfo) (*domain.CreateCommentResult, error)
	ListByArticle(ctx context.Context, articleSlug string, includeReplies bool) ([]domain.Comment, error)
	ListAll(ctx context.Context) ([]domain.Comment, error)
	ListPending(ctx context.Context) ([]domain.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*domain.Comment, error)
	Like(ctx context.Context, commentID, userID uuid.UUID) (*domain.Comment, error)
	Unlike(ctx context.Context, commentID, userID uuid.UUID) (*domain.Comment, error)
}

type service struct {
	commentRepo repository.CommentRepository
	likeRepo    repository.CommentLikeRepository
	policy      *moderation.Policy
	redis       *redis.Client
	email       email.Service
	logger      *zap.Logger
	cacheTTL    time.Duration
}

func NewService(
	commentRepo repository.CommentRepository,
	likeRepo repository.CommentLikeRepository,
	policy *moderation.Policy,
	redisClient *redis.Client,
	emailSvc email.Service,
	logger *zap.Logger,
	cacheTTL time.Duration,
) Service {
	return &service{
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		policy:      policy,
		redis:       redisClient,
		email:       emailSvc,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

func (s *service) Create(ctx context.Context, articleSlug string, input domain.CreateCommentInput, identity *domain.Identity, req domain.RequestInfo) (*domain.CreateCommentResult, error) {
	input.AuthorName = strings.TrimSpace(input.AuthorName)
	input.AuthorEmail = strings.ToLower(strings.TrimSpace(input.AuthorEmail))

	if err := validateCreateInput(articleSlug, input); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if _, err := s.commentRepo.GetByID(ctx, *input.ParentID); err != nil {
			if errors.Is(err, domain.ErrCommentNotFound) {
				return nil, domain.NewValidationError("parent_id", "Parent comment does not exist")
			}
			return nil, err
		}
	}

	submitterIsAdmin := identity != nil && identity.IsAdmin
	decision, scan := s.policy.Evaluate(submitterIsAdmin, input.AuthorName, input.AuthorEmail, input.Content)

	comment := &domain.Comment{
		ID:          uuid.New(),
		ArticleSlug: articleSlug,
		AuthorName:  input.AuthorName,
		AuthorEmail: input.AuthorEmail,
		Content:     input.Content,
		ParentID:    input.ParentID,
		IsApproved:  decision.IsApproved,
		IsAdmin:     decision.IsAdmin,
		IPAddress:   req.IPAddress,
		UserAgent:   req.UserAgent,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if comment.ParentID != nil {
		if _, err := s.commentRepo.AdjustReplyCount(ctx, *comment.ParentID, 1); err != nil {
			s.logger.Warn("failed to increment parent reply count",
				zap.String("comment_id", comment.ID.String()),
				zap.String("parent_id", comment.ParentID.String()),
				zap.Error(err))
		}
	}

	s.invalidateArticleCache(ctx, articleSlug)

	result := &domain.CreateCommentResult{
		Comment:         comment,
		NeedsModeration: !decision.IsApproved,
		Message:         messagePublished,
	}

	if !decision.IsApproved {
		result.Message = messagePending
		if s.email != nil {
			if err := s.email.SendCommentPendingEmail(ctx, comment.AuthorName, comment.ArticleSlug, scan.Words); err != nil {
				s.logger.Warn("failed to send moderation notification",
					zap.String("comment_id", comment.ID.String()),
					zap.Error(err))
			}
		}
	}

	return result, nil
}

// ListByArticle returns the article's comments threaded (or flat when
// includeReplies is false). Records of every approval state are
// returned; filtering unapproved comments for public display is the
// caller's responsibility.
func (s *service) ListByArticle(ctx context.Context, articleSlug string, includeReplies bool) ([]domain.Comment, error) {
	cacheKey := fmt.Sprintf("comments:%s:replies:%t", articleSlug, includeReplies)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var comments []domain.Comment
			if json.Unmarshal([]byte(cached), &comments) == nil {
				return comments, nil
			}
		}
	}

	records, err := s.commentRepo.ListByArticle(ctx, articleSlug)
	if err != nil {
		return nil, err
	}

	comments := AssembleThread(records, includeReplies)

	if s.redis != nil {
		if data, err := json.Marshal(comments); err == nil {
			_ = s.redis.Set(ctx, cacheKey, data, s.cacheTTL).Err()
		}
	}

	return comments, nil
}

func (s *service) ListAll(ctx context.Context) ([]domain.Comment, error) {
	return s.commentRepo.ListAll(ctx)
}

func (s *service) ListPending(ctx context.Context) ([]domain.Comment, error) {
	return s.commentRepo.ListPending(ctx)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateCommentInput) (*domain.Comment, error) {
	if input.Empty() {
		return nil, domain.NewValidationError("body", "No updatable fields provided")
	}

	if input.Content != nil {
		if err := validateContent(*input.Content); err != nil {
			return nil, err
		}
	}
	if input.AuthorEmail != nil {
		normalized := strings.ToLower(strings.TrimSpace(*input.AuthorEmail))
		if err := validateEmail(normalized); err != nil {
			return nil, err
		}
		input.AuthorEmail = &normalized
	}
	if input.AuthorName != nil && strings.TrimSpace(*input.AuthorName) == "" {
		return nil, domain.NewValidationError("author_name", "Author name cannot be empty")
	}

	comment, err := s.commentRepo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.invalidateArticleCache(ctx, comment.ArticleSlug)
	return comment, nil
}

// Delete removes the comment and, when it was a reply, decrements the
// parent's reply counter. The two operations are separate store calls;
// authorization is enforced at the route layer.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if comment.ParentID != nil {
		if _, err := s.commentRepo.AdjustReplyCount(ctx, *comment.ParentID, -1); err != nil && !errors.Is(err, domain.ErrCommentNotFound) {
			s.logger.Warn("failed to decrement parent reply count",
				zap.String("comment_id", id.String()),
				zap.String("parent_id", comment.ParentID.String()),
				zap.Error(err))
		}
	}

	s.invalidateArticleCache(ctx, comment.ArticleSlug)
	return nil
}

func (s *service) SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*domain.Comment, error) {
	comment, err := s.commentRepo.Update(ctx, id, domain.UpdateCommentInput{IsApproved: &approved})
	if err != nil {
		return nil, err
	}

	s.invalidateArticleCache(ctx, comment.ArticleSlug)
	return comment, nil
}

// Like records the dedup row, then bumps the counter. The two writes
// are not wrapped in a transaction; see DESIGN.md for the known gap.
func (s *service) Like(ctx context.Context, commentID, userID uuid.UUID) (*domain.Comment, error) {
	like := &domain.CommentLike{CommentID: commentID, UserID: userID}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.AdjustLikeCount(ctx, commentID, 1)
	if err != nil {
		return nil, err
	}

	s.invalidateArticleCache(ctx, comment.ArticleSlug)
	return comment, nil
}

func (s *service) Unlike(ctx context.Context, commentID, userID uuid.UUID) (*domain.Comment, error) {
	if err := s.likeRepo.Delete(ctx, commentID, userID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.AdjustLikeCount(ctx, commentID, -1)
	if err != nil {
		return nil, err
	}

	s.invalidateArticleCache(ctx, comment.ArticleSlug)
	return comment, nil
}

func (s *service) invalidateArticleCache(ctx context.Context, articleSlug string) {
	if s.redis == nil {
		return
	}
	pattern := fmt.Sprintf("comments:%s:*", articleSlug)
	keys, _ := s.redis.Keys(ctx, pattern).Result()
	if len(keys) > 0 {
		_ = s.redis.Del(ctx, keys...).Err()
	}
}

func validateCreateInput(articleSlug string, input domain.CreateCommentInput) error {
	if strings.TrimSpace(articleSlug) == "" {
		return domain.NewValidationError("article_slug", "Article reference is required")
	}
	if input.AuthorName == "" {
		return domain.NewValidationError("author_name", "Author name is required")
	}
	if err := validateEmail(input.AuthorEmail); err != nil {
		return err
	}
	return validateContent(input.Content)
}

func validateEmail(address string) error {
	if address == "" {
		return domain.NewValidationError("author_email", "Author email is required")
	}
	if _, err := mail.ParseAddress(address); err != nil {
		return domain.NewValidationError("author_email", "Author email is not a valid address")
	}
	return nil
}

func validateContent(content string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(content))
	if length < contentMinLength {
		return domain.NewValidationError("content", fmt.Sprintf("Content must be at least %d characters", contentMinLength))
	}
	if length > contentMaxLength {
		return domain.NewValidationError("content", fmt.Sprintf("Content must be at most %d characters", contentMaxLength))
	}
	return nil
}

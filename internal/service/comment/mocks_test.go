package comment

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"yorum-servisi/internal/domain"
)

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentRepository) ListByArticle(ctx context.Context, articleSlug string) ([]domain.Comment, error) {
	args := m.Called(ctx, articleSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *mockCommentRepository) ListAll(ctx context.Context) ([]domain.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *mockCommentRepository) ListPending(ctx context.Context) ([]domain.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *mockCommentRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdateCommentInput) (*domain.Comment, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCommentRepository) AdjustLikeCount(ctx context.Context, id uuid.UUID, delta int) (*domain.Comment, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentRepository) AdjustReplyCount(ctx context.Context, id uuid.UUID, delta int) (*domain.Comment, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

type mockCommentLikeRepository struct {
	mock.Mock
}

func (m *mockCommentLikeRepository) Create(ctx context.Context, like *domain.CommentLike) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *mockCommentLikeRepository) Delete(ctx context.Context, commentID, userID uuid.UUID) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendCommentPendingEmail(ctx context.Context, authorName, articleSlug string, matchedWords []string) error {
	args := m.Called(ctx, authorName, articleSlug, matchedWords)
	return args.Error(0)
}

package service

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"yorum-servisi/internal/config"
	"yorum-servisi/internal/pkg/wordfilter"
	"yorum-servisi/internal/repository"
	"yorum-servisi/internal/service/comment"
	"yorum-servisi/internal/service/email"
	"yorum-servisi/internal/service/moderation"
)

type Services struct {
	Comment comment.Service
	Email   email.Service
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, cfg *config.Config, logger *zap.Logger) *Services {
	filter := wordfilter.New()
	if cfg.BannedWordsFile != "" {
		if err := filter.LoadFile(cfg.BannedWordsFile); err != nil {
			logger.Warn("failed to load banned words file", zap.String("path", cfg.BannedWordsFile), zap.Error(err))
		}
	}

	policy := moderation.NewPolicy(filter)
	emailService := email.NewService(cfg)
	commentService := comment.NewService(
		repos.Comment,
		repos.CommentLike,
		policy,
		redisClient,
		emailService,
		logger,
		cfg.CommentCacheTTL,
	)

	return &Services{
		Comment: commentService,
		Email:   emailService,
	}
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"yorum-servisi/internal/domain"
	"yorum-servisi/internal/middleware"
	"yorum-servisi/internal/service/comment"
)

type CommentHandler struct {
	commentService comment.Service
}

func NewCommentHandler(commentService comment.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	articleSlug := c.Params("slug")

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	identity := middleware.GetIdentity(c)
	requestInfo := middleware.GetRequestInfo(c)

	result, err := h.commentService.Create(c.Context(), articleSlug, input, identity, requestInfo)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	articleSlug := c.Params("slug")
	includeReplies := c.QueryBool("include_replies", true)

	comments, err := h.commentService.ListByArticle(c.Context(), articleSlug, includeReplies)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}

type likeInput struct {
	Action string `json:"action"`
}

type likeResponse struct {
	CommentID uuid.UUID `json:"comment_id"`
	LikeCount int64     `json:"like_count"`
}

func (h *CommentHandler) ToggleLike(c *fiber.Ctx) error {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		return middleware.Unauthorized("Authentication required")
	}

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	var input likeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	var updated *domain.Comment
	switch input.Action {
	case "like":
		updated, err = h.commentService.Like(c.Context(), commentID, identity.UserID)
	case "unlike":
		updated, err = h.commentService.Unlike(c.Context(), commentID, identity.UserID)
	default:
		return middleware.BadRequest("Action must be 'like' or 'unlike'")
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(likeResponse{
		CommentID: updated.ID,
		LikeCount: updated.LikeCount,
	})
}

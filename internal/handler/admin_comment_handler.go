package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"yorum-servisi/internal/domain"
	"yorum-servisi/internal/middleware"
	"yorum-servisi/internal/service/comment"
)

type AdminCommentHandler struct {
	commentService comment.Service
}

func NewAdminCommentHandler(commentService comment.Service) *AdminCommentHandler {
	return &AdminCommentHandler{commentService: commentService}
}

func (h *AdminCommentHandler) List(c *fiber.Ctx) error {
	comments, err := h.commentService.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}

func (h *AdminCommentHandler) ListPending(c *fiber.Ctx) error {
	comments, err := h.commentService.ListPending(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}

func (h *AdminCommentHandler) Get(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	result, err := h.commentService.GetByID(c.Context(), commentID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AdminCommentHandler) Update(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	var input domain.UpdateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.commentService.Update(c.Context(), commentID, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AdminCommentHandler) Delete(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	if err := h.commentService.Delete(c.Context(), commentID); err != nil {
		return err
	}
	return c.Status(fiber.StatusNoContent).SendString("")
}

type approvalInput struct {
	IsApproved bool `json:"is_approved"`
}

func (h *AdminCommentHandler) SetApproval(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	var input approvalInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.commentService.SetApproval(c.Context(), commentID, input.IsApproved)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

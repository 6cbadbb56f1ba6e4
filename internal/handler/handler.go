package handler

import "yorum-servisi/internal/service"

type Handlers struct {
	Comment      *CommentHandler
	AdminComment *AdminCommentHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Comment:      NewCommentHandler(services.Comment),
		AdminComment: NewAdminCommentHandler(services.Comment),
	}
}

package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/resend/resend-go/v3"

	"yorum-servisi/internal/config"
)

// Service notifies the moderation inbox about comments held for review.
type Service interface {
	SendCommentPendingEmail(ctx context.Context, authorName, articleSlug string, matchedWords []string) error
}

type service struct {
	client *resend.Client
	config *config.Config
	tmpl   *template.Template
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
		tmpl:   template.Must(template.New("pending").Parse(pendingCommentTemplate)),
	}
}

func (s *service) SendCommentPendingEmail(ctx context.Context, authorName, articleSlug string, matchedWords []string) error {
	// notifications are disabled without an API key or recipient
	if s.config.ResendAPIKey == "" || s.config.ModerationEmail == "" {
		return nil
	}

	data := struct {
		SiteName     string
		AuthorName   string
		ArticleSlug  string
		MatchedWords string
	}{
		SiteName:     s.config.SiteName,
		AuthorName:   authorName,
		ArticleSlug:  articleSlug,
		MatchedWords: strings.Join(matchedWords, ", "),
	}

	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.SiteName, s.config.FromEmail),
		To:      []string{s.config.ModerationEmail},
		Html:    body.String(),
		Subject: fmt.Sprintf("Onay Bekleyen Yorum - %s", s.config.SiteName),
	}

	_, err := s.client.Emails.Send(params)
	return err
}

const pendingCommentTemplate = `
<h2>Onay bekleyen yeni bir yorum var</h2>
<p><strong>{{.AuthorName}}</strong> adlı ziyaretçi <strong>{{.ArticleSlug}}</strong> yazısına yorum bıraktı.</p>
{{if .MatchedWords}}<p>Tespit edilen kelimeler: {{.MatchedWords}}</p>{{end}}
<p>Yorumu yönetim panelinden inceleyebilirsiniz.</p>
`

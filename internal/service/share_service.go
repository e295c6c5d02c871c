package service

import (
	"context"
	"fmt"
	"strings"

	"quill/internal/mail"
	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"
)

// ShareService emails post recommendations to a recipient chosen by the reader.
type ShareService struct {
	postRepo    repository.PostRepository
	mailer      mail.Mailer
	fromAddress string
	baseURL     string
}

// ShareInput carries the raw share form fields.
type ShareInput struct {
	Name     string
	Email    string
	To       string
	Comments string
}

// NewShareService creates a new share service. baseURL is the public origin
// used to build absolute links to post detail pages.
func NewShareService(postRepo repository.PostRepository, mailer mail.Mailer, fromAddress, baseURL string) *ShareService {
	return &ShareService{
		postRepo:    postRepo,
		mailer:      mailer,
		fromAddress: fromAddress,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// GetPost resolves the published post a share form refers to.
func (s *ShareService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetPublishedByID(ctx, postID)
	if err != nil {
		return nil, notFoundOr(err, "post", postID)
	}
	return post, nil
}

// SharePost validates the form and emails the post link to the recipient.
// Invalid fields return (false, errors, nil) and no mail is sent. A transport
// failure is fatal to the request: it propagates as MAIL_ERROR, unretried.
func (s *ShareService) SharePost(ctx context.Context, postID uint, in ShareInput) (bool, validation.Errors, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return false, nil, err
	}

	fieldErrs := validation.Validate(validation.EmailPostForm{
		Name:     in.Name,
		Email:    in.Email,
		To:       in.To,
		Comments: in.Comments,
	})
	if fieldErrs != nil {
		return false, fieldErrs, nil
	}

	postURL := s.baseURL + post.DetailPath()
	subject := fmt.Sprintf("%s recommends you read %s", in.Name, post.Title)
	body := fmt.Sprintf("Read %s at %s\n\n%s's comments: %s", post.Title, postURL, in.Name, in.Comments)

	if err := s.mailer.Send(ctx, mail.Message{
		Subject: subject,
		Body:    body,
		From:    s.fromAddress,
		To:      []string{in.To},
	}); err != nil {
		middleware.MailSendTotal.WithLabelValues("failure").Inc()
		return false, nil, models.NewMailError(err)
	}

	middleware.MailSendTotal.WithLabelValues("success").Inc()
	return true, nil, nil
}

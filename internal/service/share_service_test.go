package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func shareTestPost() *models.Post {
	return &models.Post{
		ID:      1,
		Title:   "Django Tips",
		Slug:    "django-tips",
		Publish: time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
		Status:  models.PostStatusPublished,
	}
}

func validShareInput() ShareInput {
	return ShareInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		To:       "bob@example.com",
		Comments: "Thought of you.",
	}
}

func newShareService(postRepo *stubPostRepo, mailer *spyMailer) *ShareService {
	return NewShareService(postRepo, mailer, "blog@localhost", "http://localhost:8375/")
}

func TestShareService_SharePost(t *testing.T) {
	postRepo := &stubPostRepo{
		GetPublishedByIDFunc: func(context.Context, uint) (*models.Post, error) {
			return shareTestPost(), nil
		},
	}
	mailer := &spyMailer{}
	svc := newShareService(postRepo, mailer)

	sent, fieldErrs, err := svc.SharePost(context.Background(), 1, validShareInput())
	require.NoError(t, err)
	assert.Nil(t, fieldErrs)
	assert.True(t, sent)

	require.Len(t, mailer.Sent, 1)
	msg := mailer.Sent[0]
	assert.Equal(t, "Ann recommends you read Django Tips", msg.Subject)
	assert.Equal(t, "Read Django Tips at http://localhost:8375/api/posts/2024/01/01/django-tips\n\nAnn's comments: Thought of you.", msg.Body)
	assert.Equal(t, "blog@localhost", msg.From)
	assert.Equal(t, []string{"bob@example.com"}, msg.To)
}

func TestShareService_SharePost_InvalidRecipient(t *testing.T) {
	postRepo := &stubPostRepo{
		GetPublishedByIDFunc: func(context.Context, uint) (*models.Post, error) {
			return shareTestPost(), nil
		},
	}
	mailer := &spyMailer{}
	svc := newShareService(postRepo, mailer)

	in := validShareInput()
	in.To = "not-an-address"

	sent, fieldErrs, err := svc.SharePost(context.Background(), 1, in)
	require.NoError(t, err)
	assert.False(t, sent)
	require.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "to")
	assert.Empty(t, mailer.Sent)
}

func TestShareService_SharePost_PostNotFound(t *testing.T) {
	postRepo := &stubPostRepo{
		GetPublishedByIDFunc: func(context.Context, uint) (*models.Post, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	mailer := &spyMailer{}
	svc := newShareService(postRepo, mailer)

	sent, _, err := svc.SharePost(context.Background(), 99, validShareInput())
	assert.False(t, sent)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Empty(t, mailer.Sent)
}

func TestShareService_SharePost_TransportFailure(t *testing.T) {
	postRepo := &stubPostRepo{
		GetPublishedByIDFunc: func(context.Context, uint) (*models.Post, error) {
			return shareTestPost(), nil
		},
	}
	boom := errors.New("connection refused")
	mailer := &spyMailer{SendErr: boom}
	svc := newShareService(postRepo, mailer)

	sent, fieldErrs, err := svc.SharePost(context.Background(), 1, validShareInput())
	assert.False(t, sent)
	assert.Nil(t, fieldErrs)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MAIL_ERROR", appErr.Code)
	assert.ErrorIs(t, err, boom)
}

func TestShareService_GetPost(t *testing.T) {
	postRepo := &stubPostRepo{
		GetPublishedByIDFunc: func(_ context.Context, id uint) (*models.Post, error) {
			assert.Equal(t, uint(1), id)
			return shareTestPost(), nil
		},
	}
	svc := newShareService(postRepo, &spyMailer{})

	post, err := svc.GetPost(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Django Tips", post.Title)
}

package service

import (
	"context"

	"quill/internal/mail"
	"quill/internal/models"
)

type stubPostRepo struct {
	CreateFunc             func(ctx context.Context, post *models.Post) error
	GetPublishedByIDFunc   func(ctx context.Context, id uint) (*models.Post, error)
	GetPublishedBySlugFunc func(ctx context.Context, year, month, day int, slug string) (*models.Post, error)
	ListPublishedFunc      func(ctx context.Context, tagID uint) ([]*models.Post, error)
	SimilarFunc            func(ctx context.Context, post *models.Post, limit int) ([]*models.Post, error)
	SearchFunc             func(ctx context.Context, query string) ([]*models.Post, error)
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.CreateFunc(ctx, post)
}

func (s *stubPostRepo) GetPublishedByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.GetPublishedByIDFunc(ctx, id)
}

func (s *stubPostRepo) GetPublishedBySlug(ctx context.Context, year, month, day int, slug string) (*models.Post, error) {
	return s.GetPublishedBySlugFunc(ctx, year, month, day, slug)
}

func (s *stubPostRepo) ListPublished(ctx context.Context, tagID uint) ([]*models.Post, error) {
	return s.ListPublishedFunc(ctx, tagID)
}

func (s *stubPostRepo) Similar(ctx context.Context, post *models.Post, limit int) ([]*models.Post, error) {
	return s.SimilarFunc(ctx, post, limit)
}

func (s *stubPostRepo) Search(ctx context.Context, query string) ([]*models.Post, error) {
	return s.SearchFunc(ctx, query)
}

type stubTagRepo struct {
	CreateFunc    func(ctx context.Context, tag *models.Tag) error
	GetBySlugFunc func(ctx context.Context, slug string) (*models.Tag, error)
}

func (s *stubTagRepo) Create(ctx context.Context, tag *models.Tag) error {
	return s.CreateFunc(ctx, tag)
}

func (s *stubTagRepo) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	return s.GetBySlugFunc(ctx, slug)
}

type stubCommentRepo struct {
	CreateFunc           func(ctx context.Context, comment *models.Comment) error
	ListActiveByPostFunc func(ctx context.Context, postID uint) ([]*models.Comment, error)
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.CreateFunc(ctx, comment)
}

func (s *stubCommentRepo) ListActiveByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.ListActiveByPostFunc(ctx, postID)
}

// spyMailer records sent messages and fails on demand.
type spyMailer struct {
	Sent    []mail.Message
	SendErr error
}

func (s *spyMailer) Send(_ context.Context, msg mail.Message) error {
	if s.SendErr != nil {
		return s.SendErr
	}
	s.Sent = append(s.Sent, msg)
	return nil
}

package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"
)

// CommentService validates and attaches reader comments to published posts.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// CommentInput carries the raw comment form fields.
type CommentInput struct {
	Name  string
	Email string
	Body  string
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment attaches a comment to the published post with the given id.
// A missing or unpublished post fails with NOT_FOUND. Invalid fields return
// the error map with nothing persisted. A created comment is always active.
func (s *CommentService) AddComment(ctx context.Context, postID uint, in CommentInput) (*models.Comment, validation.Errors, error) {
	post, err := s.postRepo.GetPublishedByID(ctx, postID)
	if err != nil {
		return nil, nil, notFoundOr(err, "post", postID)
	}

	fieldErrs := validation.Validate(validation.CommentForm{
		Name:  in.Name,
		Email: in.Email,
		Body:  in.Body,
	})
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	comment := &models.Comment{
		PostID: post.ID,
		Name:   in.Name,
		Email:  in.Email,
		Body:   in.Body,
		Active: true,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, nil, err
	}

	return comment, nil, nil
}

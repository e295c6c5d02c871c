// Package service contains the use-case orchestration between handlers and repositories.
package service

import (
	"context"
	"errors"
	"strings"

	"quill/internal/models"
	"quill/internal/pagination"
	"quill/internal/repository"
	"quill/internal/validation"

	"gorm.io/gorm"
)

// similarPostLimit caps the similar-posts suggestions on the detail view.
const similarPostLimit = 4

// PostService serves the public reading surface: list, detail and search.
type PostService struct {
	postRepo    repository.PostRepository
	tagRepo     repository.TagRepository
	commentRepo repository.CommentRepository
	pageSize    int
}

// PostList is one page of published posts, optionally restricted to a tag.
type PostList struct {
	Page pagination.Page[*models.Post]
	Tag  *models.Tag
}

// PostDetail is a published post with its visible comments and suggestions.
type PostDetail struct {
	Post         *models.Post
	Comments     []*models.Comment
	SimilarPosts []*models.Post
}

// NewPostService creates a new post service.
func NewPostService(
	postRepo repository.PostRepository,
	tagRepo repository.TagRepository,
	commentRepo repository.CommentRepository,
	pageSize int,
) *PostService {
	if pageSize < 1 {
		pageSize = 3
	}
	return &PostService{
		postRepo:    postRepo,
		tagRepo:     tagRepo,
		commentRepo: commentRepo,
		pageSize:    pageSize,
	}
}

// ListPosts returns the requested page of published posts, newest first.
// A non-empty tagSlug restricts the list to that tag and fails with
// NOT_FOUND when the tag does not exist. Page problems never fail; the
// page number is clamped instead.
func (s *PostService) ListPosts(ctx context.Context, tagSlug, rawPage string) (*PostList, error) {
	var tag *models.Tag
	var tagID uint
	if tagSlug != "" {
		found, err := s.tagRepo.GetBySlug(ctx, tagSlug)
		if err != nil {
			return nil, notFoundOr(err, "tag", tagSlug)
		}
		tag = found
		tagID = found.ID
	}

	posts, err := s.postRepo.ListPublished(ctx, tagID)
	if err != nil {
		return nil, err
	}

	return &PostList{
		Page: pagination.Paginate(posts, s.pageSize, rawPage),
		Tag:  tag,
	}, nil
}

// GetPostDetail resolves a published post by its publish date and slug,
// together with its active comments and similar posts.
func (s *PostService) GetPostDetail(ctx context.Context, year, month, day int, slug string) (*PostDetail, error) {
	post, err := s.postRepo.GetPublishedBySlug(ctx, year, month, day, slug)
	if err != nil {
		return nil, notFoundOr(err, "post", slug)
	}

	comments, err := s.commentRepo.ListActiveByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	similar, err := s.postRepo.Similar(ctx, post, similarPostLimit)
	if err != nil {
		return nil, err
	}

	return &PostDetail{
		Post:         post,
		Comments:     comments,
		SimilarPosts: similar,
	}, nil
}

// SearchPosts returns published posts ranked by title similarity to the
// query. An empty query is a form problem, not an error: the field errors
// are returned alongside an empty result set.
func (s *PostService) SearchPosts(ctx context.Context, rawQuery string) ([]*models.Post, validation.Errors, error) {
	query := strings.TrimSpace(rawQuery)
	if fieldErrs := validation.Validate(validation.SearchForm{Query: query}); fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	results, err := s.postRepo.Search(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	return results, nil, nil
}

// notFoundOr maps a missing record onto the NOT_FOUND application error and
// passes every other failure through untouched.
func notFoundOr(err error, resource string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return err
}

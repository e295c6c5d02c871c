package server

import (
	"context"

	"quill/internal/mail"
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetPublishedByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetPublishedBySlug(ctx context.Context, year, month, day int, slug string) (*models.Post, error) {
	args := m.Called(ctx, year, month, day, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListPublished(ctx context.Context, tagID uint) ([]*models.Post, error) {
	args := m.Called(ctx, tagID)
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Similar(ctx context.Context, post *models.Post, limit int) ([]*models.Post, error) {
	args := m.Called(ctx, post, limit)
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Search(ctx context.Context, query string) ([]*models.Post, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]*models.Post), args.Error(1)
}

// MockTagRepository is a mock of the TagRepository interface
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListActiveByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]*models.Comment), args.Error(1)
}

// MockMailer is a mock of the mail.Mailer interface
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type testDeps struct {
	postRepo    *MockPostRepository
	tagRepo     *MockTagRepository
	commentRepo *MockCommentRepository
	mailer      *MockMailer
}

// newTestServer wires a Server onto mocked dependencies and registers the
// public routes on a bare Fiber app (no rate limiting or metrics).
func newTestServer() (*fiber.App, *Server, *testDeps) {
	deps := &testDeps{
		postRepo:    new(MockPostRepository),
		tagRepo:     new(MockTagRepository),
		commentRepo: new(MockCommentRepository),
		mailer:      new(MockMailer),
	}

	s := &Server{
		postRepo:    deps.postRepo,
		tagRepo:     deps.tagRepo,
		commentRepo: deps.commentRepo,
		mailer:      deps.mailer,
	}
	s.postService = service.NewPostService(deps.postRepo, deps.tagRepo, deps.commentRepo, 3)
	s.commentService = service.NewCommentService(deps.commentRepo, deps.postRepo)
	s.shareService = service.NewShareService(deps.postRepo, deps.mailer, "blog@localhost", "http://localhost:8375")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok && fe.Code == fiber.StatusMethodNotAllowed {
				return models.RespondWithError(c, fiber.StatusMethodNotAllowed,
					models.NewMethodNotAllowedError(c.Method()))
			}
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})

	posts := app.Group("/api/posts")
	posts.Get("/", s.GetPosts)
	posts.Get("/search", s.SearchPosts)
	posts.Get("/:id/share", s.GetShareForm)
	posts.Post("/:id/share", s.SharePost)
	posts.Post("/:id/comments", s.CreateComment)
	posts.Get("/:year/:month/:day/:slug", s.GetPost)

	return app, s, deps
}

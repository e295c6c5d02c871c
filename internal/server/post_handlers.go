package server

import (
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts?tag=...&page=...
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.Context()

	list, err := s.postService.ListPosts(ctx, c.Query("tag"), c.Query("page", "1"))
	if err != nil {
		return respondServiceError(c, err)
	}

	resp := fiber.Map{
		"posts": list.Page.Items,
		"pagination": fiber.Map{
			"page":         list.Page.Number,
			"total_pages":  list.Page.TotalPages,
			"total_items":  list.Page.TotalItems,
			"has_previous": list.Page.HasPrevious(),
			"has_next":     list.Page.HasNext(),
		},
	}
	if list.Tag != nil {
		resp["tag"] = list.Tag
	}
	return c.JSON(resp)
}

// GetPost handles GET /api/posts/:year/:month/:day/:slug
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.Context()
	slug := c.Params("slug")

	year, yerr := c.ParamsInt("year")
	month, merr := c.ParamsInt("month")
	day, derr := c.ParamsInt("day")
	if yerr != nil || merr != nil || derr != nil {
		// A non-numeric date segment cannot address any post.
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("post", slug))
	}

	detail, err := s.postService.GetPostDetail(ctx, year, month, day, slug)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":          detail.Post,
		"comments":      detail.Comments,
		"similar_posts": detail.SimilarPosts,
	})
}

// SearchPosts handles GET /api/posts/search?query=...
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	query := c.Query("query")

	results, fieldErrs, err := s.postService.SearchPosts(ctx, query)
	if err != nil {
		return respondServiceError(c, err)
	}
	if fieldErrs != nil {
		return respondFieldErrors(c, fieldErrs)
	}

	return c.JSON(fiber.Map{
		"query":   query,
		"results": results,
	})
}

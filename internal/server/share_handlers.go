package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetShareForm handles GET /api/posts/:id/share. It returns the post the form
// refers to; nothing has been sent yet.
func (s *Server) GetShareForm(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, svcErr := s.shareService.GetPost(ctx, postID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"post": post,
		"sent": false,
	})
}

// SharePost handles POST /api/posts/:id/share
func (s *Server) SharePost(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		To       string `json:"to"`
		Comments string `json:"comments"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	sent, fieldErrs, svcErr := s.shareService.SharePost(ctx, postID, service.ShareInput{
		Name:     req.Name,
		Email:    req.Email,
		To:       req.To,
		Comments: req.Comments,
	})
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}
	if fieldErrs != nil {
		return respondFieldErrors(c, fieldErrs)
	}

	return c.JSON(fiber.Map{
		"sent": sent,
	})
}

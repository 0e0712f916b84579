package server

import (
	"devlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

type createCommentRequest struct {
	Text string `json:"text"`
}

// CreateComment appends a comment to a post and returns the post's
// comment list.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comments, err := s.commentService.AddComment(c.UserContext(), userID(c), postID, req.Text)
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}

// DeleteComment removes the caller's comment from a post and returns the
// post's comment list.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	commentID, err := parseID(c, "commentId", "Comment")
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}

	comments, err := s.commentService.RemoveComment(c.UserContext(), userID(c), postID, commentID)
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}

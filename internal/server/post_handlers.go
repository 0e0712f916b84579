package server

import (
	"devlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	Text string `json:"text"`
}

// CreatePost creates a post authored by the caller.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), userID(c), req.Text)
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// GetPosts lists all posts, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPost returns a single post with its likes and comments.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "Post")
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost removes a post owned by the caller.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "Post")
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	if err := s.postService.DeletePost(c.UserContext(), userID(c), id); err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Post removed"})
}

// LikePost records a like and returns the post's like list.
func (s *Server) LikePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "Post")
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	likes, err := s.postService.LikePost(c.UserContext(), userID(c), id)
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	return c.Status(fiber.StatusOK).JSON(likes)
}

// UnlikePost removes the caller's like and returns the post's like list.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "Post")
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	likes, err := s.postService.UnlikePost(c.UserContext(), userID(c), id)
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	return c.Status(fiber.StatusOK).JSON(likes)
}

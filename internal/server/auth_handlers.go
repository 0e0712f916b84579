package server

import (
	"devlink/internal/models"
	"devlink/internal/service"

	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register handles new account creation and returns a signed token.
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	token, _, err := s.authService.Register(c.UserContext(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return fail(c, err, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(tokenResponse{Token: token})
}

// Login authenticates an existing account and returns a signed token.
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email and password are required"))
	}

	token, _, err := s.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		// Invalid credentials are reported as 400 to match the login
		// contract; other failures keep their natural status.
		if models.ErrorCode(err) == models.CodeUnauthorized {
			return models.RespondWithError(c, fiber.StatusBadRequest, err)
		}
		return fail(c, err, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(tokenResponse{Token: token})
}

// GetAuthedUser returns the account behind the presented token, without
// the password hash.
func (s *Server) GetAuthedUser(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.UserContext(), userID(c))
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

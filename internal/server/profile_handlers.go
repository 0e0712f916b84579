package server

import (
	"time"

	"devlink/internal/models"
	"devlink/internal/service"

	"github.com/gofiber/fiber/v2"
)

type upsertProfileRequest struct {
	Status         string  `json:"status"`
	Company        string  `json:"company"`
	Website        string  `json:"website"`
	Location       string  `json:"location"`
	Skills         string  `json:"skills"`
	Bio            string  `json:"bio"`
	GithubUsername string  `json:"github_username"`
	Youtube        *string `json:"youtube"`
	Facebook       *string `json:"facebook"`
	Linkedin       *string `json:"linkedin"`
	Twitter        *string `json:"twitter"`
	Instagram      *string `json:"instagram"`
}

type experienceRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type educationRequest struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Description  string     `json:"description"`
}

// GetMyProfile returns the caller's profile. A missing profile is a 400,
// matching the profile route contract.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetOwnProfile(c.UserContext(), userID(c))
	if err != nil {
		return fail(c, err, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// UpsertProfile creates or replaces the caller's profile.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req upsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.Upsert(c.UserContext(), userID(c), service.UpsertProfileInput{
		Status:         req.Status,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Skills:         req.Skills,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Twitter:        req.Twitter,
		Instagram:      req.Instagram,
	})
	if err != nil {
		return fail(c, err, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// GetProfiles lists all profiles with owner name and avatar.
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.ListProfiles(c.UserContext())
	if err != nil {
		return fail(c, err, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(profiles)
}

// GetProfileByUser returns the profile of the user named in the route.
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	id, err := parseID(c, "userId", "Profile")
	if err != nil {
		return fail(c, err, fiber.StatusBadRequest)
	}
	profile, err := s.profileService.GetByUser(c.UserContext(), id)
	if err != nil {
		return fail(c, err, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// DeleteAccount removes the caller's posts, profile and account.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.profileService.DeleteAccount(c.UserContext(), userID(c)); err != nil {
		return fail(c, err, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User deleted"})
}

// AddExperience adds a work history entry and returns the updated profile.
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req experienceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddExperience(c.UserContext(), userID(c), service.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return fail(c, err, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// RemoveExperience deletes a work history entry by id.
func (s *Server) RemoveExperience(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "Experience")
	if err != nil {
		return fail(c, err, fiber.StatusBadRequest)
	}
	profile, err := s.profileService.RemoveExperience(c.UserContext(), userID(c), id)
	if err != nil {
		return fail(c, err, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// AddEducation adds a schooling entry and returns the updated profile.
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req educationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddEducation(c.UserContext(), userID(c), service.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Description:  req.Description,
	})
	if err != nil {
		return fail(c, err, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// RemoveEducation deletes a schooling entry by id.
func (s *Server) RemoveEducation(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "Education")
	if err != nil {
		return fail(c, err, fiber.StatusBadRequest)
	}
	profile, err := s.profileService.RemoveEducation(c.UserContext(), userID(c), id)
	if err != nil {
		return fail(c, err, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// GetGithubRepos proxies the five most recently created public repos of a
// GitHub user. Upstream failures are reported as 404.
func (s *Server) GetGithubRepos(c *fiber.Ctx) error {
	repos, err := s.profileService.GithubRepos(c.UserContext(), c.Params("username"))
	if err != nil {
		return fail(c, err, fiber.StatusNotFound)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(repos)
}

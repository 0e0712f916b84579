package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"devlink/internal/github"
	"devlink/internal/models"
	"devlink/internal/repository"
)

// ProfileService implements profile management, the experience/education
// sub-lists and the GitHub repository lookup.
type ProfileService struct {
	profileRepo  repository.ProfileRepository
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	githubClient *github.Client
}

// UpsertProfileInput carries the full desired state of a profile. Social
// link fields are pointers so that absent fields leave the stored value
// untouched while empty strings clear it.
type UpsertProfileInput struct {
	Status         string
	Company        string
	Website        string
	Location       string
	Skills         string
	Bio            string
	GithubUsername string
	Youtube        *string
	Facebook       *string
	Linkedin       *string
	Twitter        *string
	Instagram      *string
}

type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Description  string
}

// NewProfileService returns a new ProfileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	githubClient *github.Client,
) *ProfileService {
	return &ProfileService{
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		postRepo:     postRepo,
		githubClient: githubClient,
	}
}

// normalizeSkills splits a comma separated skills string into trimmed,
// non-empty entries.
func normalizeSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// Upsert creates the caller's profile or replaces its scalar fields if one
// already exists. Social links update field by field; a nil pointer keeps
// the stored value.
func (s *ProfileService) Upsert(ctx context.Context, userID uint, in UpsertProfileInput) (*models.Profile, error) {
	if strings.TrimSpace(in.Status) == "" {
		return nil, models.NewValidationError("Status is required")
	}
	if strings.TrimSpace(in.Location) == "" {
		return nil, models.NewValidationError("Location is required")
	}
	skills := normalizeSkills(in.Skills)
	if len(skills) == 0 {
		return nil, models.NewValidationError("Skills is required")
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if models.ErrorCode(err) != models.CodeNotFound {
			return nil, err
		}
		profile = &models.Profile{UserID: userID}
	}

	profile.Status = in.Status
	profile.Company = in.Company
	profile.Website = in.Website
	profile.Location = in.Location
	profile.Skills = skills
	profile.Bio = in.Bio
	profile.GithubUsername = in.GithubUsername

	if in.Youtube != nil {
		profile.Social.Youtube = *in.Youtube
	}
	if in.Facebook != nil {
		profile.Social.Facebook = *in.Facebook
	}
	if in.Linkedin != nil {
		profile.Social.Linkedin = *in.Linkedin
	}
	if in.Twitter != nil {
		profile.Social.Twitter = *in.Twitter
	}
	if in.Instagram != nil {
		profile.Social.Instagram = *in.Instagram
	}

	if profile.ID == 0 {
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// GetOwnProfile returns the caller's profile.
func (s *ProfileService) GetOwnProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// GetByUser returns the profile of an arbitrary user.
func (s *ProfileService) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// ListProfiles returns all profiles with owner details.
func (s *ProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// DeleteAccount removes the caller's posts, profile and account, in that
// order, so a failure part way leaves no orphaned account.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.postRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

// AddExperience prepends a work history entry to the caller's profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID uint, in ExperienceInput) (*models.Profile, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(in.Company) == "" {
		return nil, models.NewValidationError("Company is required")
	}
	if in.From.IsZero() {
		return nil, models.NewValidationError("From date is required")
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, exp); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// RemoveExperience deletes an experience entry by id. Removing an entry
// that does not exist leaves the profile unchanged.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// AddEducation prepends a schooling entry to the caller's profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID uint, in EducationInput) (*models.Profile, error) {
	if strings.TrimSpace(in.School) == "" {
		return nil, models.NewValidationError("School is required")
	}
	if strings.TrimSpace(in.Degree) == "" {
		return nil, models.NewValidationError("Degree is required")
	}
	if strings.TrimSpace(in.FieldOfStudy) == "" {
		return nil, models.NewValidationError("Field of study is required")
	}
	if in.From.IsZero() {
		return nil, models.NewValidationError("From date is required")
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, edu); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// RemoveEducation deletes an education entry by id. Removing an entry
// that does not exist leaves the profile unchanged.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// GithubRepos fetches the five most recently created public repositories
// of a GitHub user.
func (s *ProfileService) GithubRepos(ctx context.Context, username string) (json.RawMessage, error) {
	if strings.TrimSpace(username) == "" {
		return nil, models.NewValidationError("Username is required")
	}
	return s.githubClient.ListRepos(ctx, username)
}

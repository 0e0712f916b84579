// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"devlink/internal/models"
	"devlink/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// All seeded accounts share this password so developers can log in as any
// of them.
const SeedPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db           *gorm.DB
	passwordHash string
	rng          *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) (*Factory, error) {
	gofakeit.Seed(time.Now().UnixNano())
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	return &Factory{
		db:           db,
		passwordHash: string(hash),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// CreateUser constructs and persists a sample user.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	email := gofakeit.Email()
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    fmt.Sprintf("%d.%s", gofakeit.Number(100, 999), email),
		Password: f.passwordHash,
		Avatar:   service.GravatarURL(email),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

var seedStatuses = []string{
	"Developer", "Senior Developer", "Junior Developer",
	"Student or Learning", "Instructor", "Manager", "Intern",
}

// CreateProfile constructs and persists a profile for the given user,
// with a couple of experience and education entries.
func (f *Factory) CreateProfile(user *models.User) (*models.Profile, error) {
	skills := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		skills = append(skills, gofakeit.ProgrammingLanguage())
	}

	profile := &models.Profile{
		UserID:         user.ID,
		Status:         seedStatuses[f.rng.Intn(len(seedStatuses))],
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		Skills:         skills,
		Bio:            gofakeit.Sentence(12),
		GithubUsername: strings.ToLower(gofakeit.Username()),
		Social: models.SocialLinks{
			Twitter:  fmt.Sprintf("https://twitter.com/%s", strings.ToLower(gofakeit.Username())),
			Linkedin: fmt.Sprintf("https://linkedin.com/in/%s", strings.ToLower(gofakeit.Username())),
		},
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}

	from := time.Now().AddDate(-f.rng.Intn(5)-1, 0, 0)
	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       gofakeit.JobTitle(),
		Company:     gofakeit.Company(),
		Location:    gofakeit.City(),
		From:        from,
		Current:     true,
		Description: gofakeit.Sentence(10),
	}
	if err := f.db.Create(exp).Error; err != nil {
		return nil, err
	}

	eduTo := from.AddDate(0, -f.rng.Intn(12)-1, 0)
	eduFrom := eduTo.AddDate(-4, 0, 0)
	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       fmt.Sprintf("%s University", gofakeit.City()),
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         eduFrom,
		To:           &eduTo,
		Description:  gofakeit.Sentence(8),
	}
	if err := f.db.Create(edu).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// CreatePost constructs and persists a post authored by the given user,
// with its author snapshot filled in.
func (f *Factory) CreatePost(user *models.User) (*models.Post, error) {
	post := &models.Post{
		UserID:    user.ID,
		Text:      gofakeit.Paragraph(1, 3, 8, " "),
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now().Add(-time.Duration(f.rng.Intn(90*24)) * time.Hour),
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment by the given user on the given post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   gofakeit.Sentence(10),
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like by the given user on the given post. Returns
// nil without error when the user already liked the post.
func (f *Factory) CreateLike(user *models.User, post *models.Post) (*models.Like, error) {
	var count int64
	if err := f.db.Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", post.ID, user.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}
	like := &models.Like{PostID: post.ID, UserID: user.ID}
	if err := f.db.Create(like).Error; err != nil {
		return nil, err
	}
	return like, nil
}

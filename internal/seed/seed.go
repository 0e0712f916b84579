package seed

import (
	"log/slog"

	"devlink/internal/middleware"
	"devlink/internal/models"

	"gorm.io/gorm"
)

// Seeder orchestrates demo data creation.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) (*Seeder, error) {
	factory, err := NewFactory(db)
	if err != nil {
		return nil, err
	}
	return &Seeder{db: db, factory: factory}, nil
}

// ClearAll removes all seedable data, children first.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.Experience{},
		&models.Education{},
		&models.Profile{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	middleware.Logger.Info("cleared existing data")
	return nil
}

// Seed creates numUsers users with profiles and numPosts posts spread
// among them, plus a sprinkling of likes and comments.
func (s *Seeder) Seed(numUsers, numPosts int) error {
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return err
		}
		if _, err := s.factory.CreateProfile(user); err != nil {
			return err
		}
		users = append(users, user)
	}
	middleware.Logger.Info("seeded users with profiles", slog.Int("count", len(users)))

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return err
		}
		posts = append(posts, post)
	}
	middleware.Logger.Info("seeded posts", slog.Int("count", len(posts)))

	likes, comments := 0, 0
	for _, post := range posts {
		for i := 0; i < s.factory.rng.Intn(5); i++ {
			liker := users[s.factory.rng.Intn(len(users))]
			like, err := s.factory.CreateLike(liker, post)
			if err != nil {
				return err
			}
			if like != nil {
				likes++
			}
		}
		for i := 0; i < s.factory.rng.Intn(3); i++ {
			commenter := users[s.factory.rng.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return err
			}
			comments++
		}
	}
	middleware.Logger.Info("seeded engagement",
		slog.Int("likes", likes), slog.Int("comments", comments))
	return nil
}

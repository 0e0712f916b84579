package service

import (
	"context"
	"testing"

	"devlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Function-field stubs so each test overrides only the calls it cares
// about. Unset fields fail loudly.

type userRepoStub struct {
	getByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	createFn     func(ctx context.Context, user *models.User) error
	deleteFn     func(ctx context.Context, id uint) error
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		},
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) {
			return nil, nil
		},
		createFn: func(_ context.Context, user *models.User) error {
			user.ID = 1
			return nil
		},
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type profileRepoStub struct {
	getByUserIDFn      func(ctx context.Context, userID uint) (*models.Profile, error)
	listFn             func(ctx context.Context) ([]models.Profile, error)
	createFn           func(ctx context.Context, profile *models.Profile) error
	updateFn           func(ctx context.Context, profile *models.Profile) error
	deleteByUserIDFn   func(ctx context.Context, userID uint) error
	addExperienceFn    func(ctx context.Context, exp *models.Experience) error
	removeExperienceFn func(ctx context.Context, profileID, expID uint) error
	addEducationFn     func(ctx context.Context, edu *models.Education) error
	removeEducationFn  func(ctx context.Context, profileID, eduID uint) error
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn: func(_ context.Context, userID uint) (*models.Profile, error) {
			return nil, models.NewNotFoundError("Profile", userID)
		},
		listFn: func(_ context.Context) ([]models.Profile, error) { return nil, nil },
		createFn: func(_ context.Context, profile *models.Profile) error {
			profile.ID = 1
			return nil
		},
		updateFn:           func(_ context.Context, _ *models.Profile) error { return nil },
		deleteByUserIDFn:   func(_ context.Context, _ uint) error { return nil },
		addExperienceFn:    func(_ context.Context, _ *models.Experience) error { return nil },
		removeExperienceFn: func(_ context.Context, _, _ uint) error { return nil },
		addEducationFn:     func(_ context.Context, _ *models.Education) error { return nil },
		removeEducationFn:  func(_ context.Context, _, _ uint) error { return nil },
	}
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) List(ctx context.Context) ([]models.Profile, error) {
	return s.listFn(ctx)
}
func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}
func (s *profileRepoStub) DeleteByUserID(ctx context.Context, userID uint) error {
	return s.deleteByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) AddExperience(ctx context.Context, exp *models.Experience) error {
	return s.addExperienceFn(ctx, exp)
}
func (s *profileRepoStub) RemoveExperience(ctx context.Context, profileID, expID uint) error {
	return s.removeExperienceFn(ctx, profileID, expID)
}
func (s *profileRepoStub) AddEducation(ctx context.Context, edu *models.Education) error {
	return s.addEducationFn(ctx, edu)
}
func (s *profileRepoStub) RemoveEducation(ctx context.Context, profileID, eduID uint) error {
	return s.removeEducationFn(ctx, profileID, eduID)
}

type postRepoStub struct {
	createFn         func(ctx context.Context, post *models.Post) error
	getByIDFn        func(ctx context.Context, id uint) (*models.Post, error)
	listFn           func(ctx context.Context) ([]*models.Post, error)
	deleteFn         func(ctx context.Context, id uint) error
	deleteByUserIDFn func(ctx context.Context, userID uint) error
	isLikedFn        func(ctx context.Context, userID, postID uint) (bool, error)
	likeFn           func(ctx context.Context, userID, postID uint) error
	unlikeFn         func(ctx context.Context, userID, postID uint) error
	listLikesFn      func(ctx context.Context, postID uint) ([]models.Like, error)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, post *models.Post) error {
			post.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1}, nil
		},
		listFn:           func(_ context.Context) ([]*models.Post, error) { return nil, nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		deleteByUserIDFn: func(_ context.Context, _ uint) error { return nil },
		isLikedFn:        func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		likeFn:           func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:         func(_ context.Context, _, _ uint) error { return nil },
		listLikesFn:      func(_ context.Context, _ uint) ([]models.Like, error) { return nil, nil },
	}
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]*models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) DeleteByUserID(ctx context.Context, userID uint) error {
	return s.deleteByUserIDFn(ctx, userID)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) ListLikes(ctx context.Context, postID uint) ([]models.Like, error) {
	return s.listLikesFn(ctx, postID)
}

type commentRepoStub struct {
	createFn         func(ctx context.Context, comment *models.Comment) error
	getByPostAndIDFn func(ctx context.Context, postID, commentID uint) (*models.Comment, error)
	listByPostFn     func(ctx context.Context, postID uint) ([]models.Comment, error)
	deleteFn         func(ctx context.Context, id uint) error
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, comment *models.Comment) error {
			comment.ID = 1
			return nil
		},
		getByPostAndIDFn: func(_ context.Context, _, commentID uint) (*models.Comment, error) {
			return nil, models.NewNotFoundError("Comment", commentID)
		},
		listByPostFn: func(_ context.Context, _ uint) ([]models.Comment, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByPostAndID(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	return s.getByPostAndIDFn(ctx, postID, commentID)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, models.ErrorCode(err))
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertCode(t, err, models.CodeValidation)
}

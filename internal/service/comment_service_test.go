package service

import (
	"context"
	"testing"

	"devlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_AddComment(t *testing.T) {
	t.Parallel()

	t.Run("snapshots the commenter and returns the list", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Name: "Ada", Avatar: "https://example.com/a.png"}, nil
		}
		commentRepo := noopCommentRepo()
		var created *models.Comment
		commentRepo.createFn = func(_ context.Context, comment *models.Comment) error {
			comment.ID = 3
			created = comment
			return nil
		}
		commentRepo.listByPostFn = func(_ context.Context, _ uint) ([]models.Comment, error) {
			return []models.Comment{*created}, nil
		}
		svc := NewCommentService(commentRepo, noopPostRepo(), userRepo)

		comments, err := svc.AddComment(context.Background(), 1, 10, "nice post")
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "Ada", comments[0].Name)
		assert.Equal(t, uint(10), comments[0].PostID)
	})

	t.Run("blank text", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopPostRepo(), noopUserRepo())
		_, err := svc.AddComment(context.Background(), 1, 10, " ")
		assertValidationError(t, err)
	})

	t.Run("missing post", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		}
		svc := NewCommentService(noopCommentRepo(), postRepo, noopUserRepo())
		_, err := svc.AddComment(context.Background(), 1, 10, "hello")
		assertCode(t, err, models.CodeNotFound)
	})
}

func TestCommentService_RemoveComment(t *testing.T) {
	t.Parallel()

	withComment := func(authorID uint) *commentRepoStub {
		repo := noopCommentRepo()
		repo.getByPostAndIDFn = func(_ context.Context, postID, commentID uint) (*models.Comment, error) {
			return &models.Comment{ID: commentID, PostID: postID, UserID: authorID}, nil
		}
		return repo
	}

	t.Run("author removes own comment", func(t *testing.T) {
		t.Parallel()
		repo := withComment(1)
		var deletedID uint
		repo.deleteFn = func(_ context.Context, id uint) error {
			deletedID = id
			return nil
		}
		svc := NewCommentService(repo, noopPostRepo(), noopUserRepo())

		_, err := svc.RemoveComment(context.Background(), 1, 10, 3)
		require.NoError(t, err)
		assert.Equal(t, uint(3), deletedID)
	})

	t.Run("non-author is rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(withComment(2), noopPostRepo(), noopUserRepo())
		_, err := svc.RemoveComment(context.Background(), 1, 10, 3)
		assertCode(t, err, models.CodeUnauthorized)
	})

	t.Run("comment id is matched on the post", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		var gotPostID, gotCommentID uint
		repo.getByPostAndIDFn = func(_ context.Context, postID, commentID uint) (*models.Comment, error) {
			gotPostID, gotCommentID = postID, commentID
			return &models.Comment{ID: commentID, PostID: postID, UserID: 1}, nil
		}
		svc := NewCommentService(repo, noopPostRepo(), noopUserRepo())

		_, err := svc.RemoveComment(context.Background(), 1, 10, 3)
		require.NoError(t, err)
		assert.Equal(t, uint(10), gotPostID)
		assert.Equal(t, uint(3), gotCommentID)
	})

	t.Run("unknown comment", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopPostRepo(), noopUserRepo())
		_, err := svc.RemoveComment(context.Background(), 1, 10, 3)
		assertCode(t, err, models.CodeNotFound)
	})
}

package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullFlow walks the whole lifecycle of a post through two accounts:
// author likes and unlikes their own post, a second user comments and
// removes the comment, and a repeated removal of the same comment fails.
func TestFullFlow(t *testing.T) {
	t.Parallel()
	_, app := setupTestServer(t)

	userA := registerUser(t, app, "User A", "user-a@example.com")
	post := createPost(t, app, userA, "hello")

	likeResp := doJSON(t, app, http.MethodPut, "/api/posts/like/"+itoa(post.ID), userA, nil)
	require.Equal(t, http.StatusOK, likeResp.StatusCode)
	var likes []map[string]any
	decodeBody(t, likeResp, &likes)
	require.Len(t, likes, 1)

	unlikeResp := doJSON(t, app, http.MethodPut, "/api/posts/unlike/"+itoa(post.ID), userA, nil)
	require.Equal(t, http.StatusOK, unlikeResp.StatusCode)
	decodeBody(t, unlikeResp, &likes)
	assert.Empty(t, likes)

	userB := registerUser(t, app, "User B", "user-b@example.com")
	commentResp := doJSON(t, app, http.MethodPost, "/api/posts/comment/"+itoa(post.ID), userB,
		map[string]string{"text": "nice"})
	require.Equal(t, http.StatusOK, commentResp.StatusCode)
	var comments []struct {
		ID   uint   `json:"id"`
		Text string `json:"text"`
	}
	decodeBody(t, commentResp, &comments)
	require.Len(t, comments, 1)
	commentID := comments[0].ID

	removeResp := doJSON(t, app, http.MethodDelete,
		"/api/posts/comment/"+itoa(post.ID)+"/"+itoa(commentID), userB, nil)
	require.Equal(t, http.StatusOK, removeResp.StatusCode)
	decodeBody(t, removeResp, &comments)
	assert.Empty(t, comments)

	// The comment is gone, so even the post author cannot remove it again.
	repeatResp := doJSON(t, app, http.MethodDelete,
		"/api/posts/comment/"+itoa(post.ID)+"/"+itoa(commentID), userA, nil)
	defer func() { _ = repeatResp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, repeatResp.StatusCode)
}

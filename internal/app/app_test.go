package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ErnestoAbreu/distributed-social-network/internal/chord"
	"github.com/ErnestoAbreu/distributed-social-network/internal/config"
	"github.com/ErnestoAbreu/distributed-social-network/internal/store"
)

// newTestRouter builds a one-node ring; every operation resolves locally.
func newTestRouter(t *testing.T) *chord.Router {
	t.Helper()
	st, err := store.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	pool := chord.NewPool(config.Default(), zap.NewNop())
	t.Cleanup(pool.Close)

	node := chord.NewNode("10.0.0.1:50051", 8, st, pool, zap.NewNop())
	node.CreateRing()
	return chord.NewRouter(node, zap.NewNop())
}

func newTestAuth(t *testing.T) (*AuthService, *chord.Router) {
	t.Helper()
	router := newTestRouter(t)
	repo := NewAuthRepository(router, zap.NewNop())
	return NewAuthService(repo, "test-secret", zap.NewNop()), router
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _ := newTestAuth(t)

	require.NoError(t, auth.Register("Alice", "Alice A.", "hunter2"))

	token, err := auth.Login("Alice", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Alice", username)
}

func TestRegisterDuplicate(t *testing.T) {
	auth, _ := newTestAuth(t)

	require.NoError(t, auth.Register("alice", "", "pw"))
	assert.ErrorIs(t, auth.Register("alice", "", "other"), ErrUserExists)
}

func TestLoginFailures(t *testing.T) {
	auth, _ := newTestAuth(t)
	require.NoError(t, auth.Register("alice", "", "pw"))

	_, err := auth.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = auth.Login("nobody", "pw")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = auth.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestUsernamesCaseInsensitiveKeys(t *testing.T) {
	auth, _ := newTestAuth(t)
	require.NoError(t, auth.Register("Alice", "", "pw"))

	// The record is addressed by the lowercased key.
	exists, err := auth.repo.ExistsUser("ALICE")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPostsCreateLoadList(t *testing.T) {
	router := newTestRouter(t)
	posts := NewPostRepository(router, zap.NewNop())

	p1, err := posts.CreatePost("alice", "first!")
	require.NoError(t, err)
	p2, err := posts.CreatePost("alice", "second")
	require.NoError(t, err)
	require.NotEqual(t, p1.PostID, p2.PostID)

	got, err := posts.LoadPost(p1.PostID)
	require.NoError(t, err)
	assert.Equal(t, "first!", got.Content)
	assert.Equal(t, "alice", got.UserID)

	list, err := posts.LoadPosts("alice")
	require.NoError(t, err)
	require.Len(t, list, 2)

	// No posts is an empty list, not an error.
	list, err = posts.LoadPosts("bob")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepost(t *testing.T) {
	router := newTestRouter(t)
	posts := NewPostRepository(router, zap.NewNop())

	original, err := posts.CreatePost("alice", "origin")
	require.NoError(t, err)

	repost, err := posts.Repost("bob", original.PostID)
	require.NoError(t, err)
	assert.Equal(t, original.PostID, repost.RepostOf)
	assert.Equal(t, "origin", repost.Content)
	assert.Equal(t, "bob", repost.UserID)

	list, err := posts.LoadPosts("bob")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestFollowUnfollow(t *testing.T) {
	router := newTestRouter(t)
	relations := NewRelationsRepository(router, zap.NewNop())

	require.NoError(t, relations.Follow("alice", "bob"))
	require.NoError(t, relations.Follow("alice", "carol"))
	// Following twice is a no-op.
	require.NoError(t, relations.Follow("alice", "bob"))

	following, err := relations.Following("alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bob", "carol"}, following)

	followers, err := relations.Followers("bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, followers)

	require.NoError(t, relations.Unfollow("alice", "bob"))
	following, err = relations.Following("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"carol"}, following)
	followers, err = relations.Followers("bob")
	require.NoError(t, err)
	assert.Empty(t, followers)

	// Cannot follow yourself.
	assert.ErrorIs(t, relations.Follow("alice", "alice"), chord.ErrInvalidArgument)
}

func TestFeedMergesFollowedUsers(t *testing.T) {
	router := newTestRouter(t)
	posts := NewPostRepository(router, zap.NewNop())
	relations := NewRelationsRepository(router, zap.NewNop())

	_, err := posts.CreatePost("bob", "from bob")
	require.NoError(t, err)
	_, err = posts.CreatePost("carol", "from carol")
	require.NoError(t, err)
	_, err = posts.CreatePost("mallory", "not followed")
	require.NoError(t, err)

	require.NoError(t, relations.Follow("alice", "bob"))
	require.NoError(t, relations.Follow("alice", "carol"))

	feed, err := posts.Feed("alice", relations)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	contents := []string{feed[0].Content, feed[1].Content}
	assert.ElementsMatch(t, []string{"from bob", "from carol"}, contents)
}

func TestKeyNamespacing(t *testing.T) {
	assert.Equal(t, "User/alice", UserKey("Alice"))
	assert.Equal(t, "User/alice/Posts", UserPostsKey("alice"))
	assert.Equal(t, "User/alice/Following", FollowingKey("ALICE"))
	assert.Equal(t, "User/alice/Followers", FollowersKey("alice"))
	assert.Equal(t, "Post/p-1", PostKey("p-1"))
}

// Package app contains the thin social-network services layered on the
// key-value substrate. Records are JSON documents serialized here; the
// storage core treats them as opaque bytes.
package app

import (
	"encoding/json"
	"path"
	"strings"
	"time"
)

// User is the account record stored under "User/{username}".
type User struct {
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name,omitempty"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Post is stored under "Post/{post_id}".
type Post struct {
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	RepostOf  string    `json:"repost_of,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserPosts is the per-user post-id list, "User/{username}/Posts".
type UserPosts struct {
	PostIDs []string `json:"posts_id"`
}

// UserList backs both Following and Followers records.
type UserList struct {
	Users []string `json:"users"`
}

// ─── Key namespacing ─────────────────────────────────────────────────────────

func UserKey(username string) string {
	return path.Join("User", strings.ToLower(username))
}

func UserPostsKey(username string) string {
	return path.Join("User", strings.ToLower(username), "Posts")
}

func FollowingKey(username string) string {
	return path.Join("User", strings.ToLower(username), "Following")
}

func FollowersKey(username string) string {
	return path.Join("User", strings.ToLower(username), "Followers")
}

func PostKey(postID string) string {
	return path.Join("Post", postID)
}

// ─── Serialization ───────────────────────────────────────────────────────────

func marshal(v any) ([]byte, error) { return json.Marshal(v) }

func unmarshal(raw []byte, v any) error { return json.Unmarshal(raw, v) }

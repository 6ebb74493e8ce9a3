package app

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ErnestoAbreu/distributed-social-network/internal/chord"
)

// PostRepository stores posts and per-user post lists through the router.
type PostRepository struct {
	router *chord.Router
	lgr    *zap.Logger
}

func NewPostRepository(router *chord.Router, lgr *zap.Logger) *PostRepository {
	return &PostRepository{router: router, lgr: lgr.Named("app.posts")}
}

// CreatePost stores a new post and appends it to the author's list.
func (r *PostRepository) CreatePost(username, content string) (*Post, error) {
	if content == "" {
		return nil, chord.ErrInvalidArgument
	}
	post := &Post{
		PostID:    uuid.NewString(),
		UserID:    username,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.savePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Repost stores a new post referencing an existing one.
func (r *PostRepository) Repost(username, postID string) (*Post, error) {
	original, err := r.LoadPost(postID)
	if err != nil {
		return nil, err
	}
	post := &Post{
		PostID:    uuid.NewString(),
		UserID:    username,
		Content:   original.Content,
		RepostOf:  original.PostID,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.savePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) savePost(post *Post) error {
	raw, err := marshal(post)
	if err != nil {
		return chord.ErrInternal
	}
	if err := r.router.Save(PostKey(post.PostID), raw); err != nil {
		r.lgr.Error("save post failed", zap.String("post_id", post.PostID), zap.Error(err))
		return err
	}
	if err := r.addToPostsList(post.UserID, post.PostID); err != nil {
		r.lgr.Error("append to user post list failed",
			zap.String("post_id", post.PostID), zap.String("username", post.UserID), zap.Error(err))
		return err
	}
	return nil
}

// LoadPost fetches one post by id.
func (r *PostRepository) LoadPost(postID string) (*Post, error) {
	raw, err := r.router.Load(PostKey(postID))
	if err != nil {
		return nil, err
	}
	var p Post
	if err := unmarshal(raw, &p); err != nil {
		return nil, chord.ErrInternal
	}
	return &p, nil
}

func (r *PostRepository) addToPostsList(username, postID string) error {
	key := UserPostsKey(username)
	var list UserPosts
	raw, err := r.router.Load(key)
	if err == nil {
		if err := unmarshal(raw, &list); err != nil {
			return chord.ErrInternal
		}
	} else if !errors.Is(err, chord.ErrNotFound) {
		return err
	}
	list.PostIDs = append(list.PostIDs, postID)
	out, err := marshal(&list)
	if err != nil {
		return chord.ErrInternal
	}
	return r.router.Save(key, out)
}

// LoadPosts returns a user's posts, newest first. A user with no post list
// simply has no posts.
func (r *PostRepository) LoadPosts(username string) ([]*Post, error) {
	raw, err := r.router.Load(UserPostsKey(username))
	if errors.Is(err, chord.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list UserPosts
	if err := unmarshal(raw, &list); err != nil {
		return nil, chord.ErrInternal
	}

	posts := make([]*Post, 0, len(list.PostIDs))
	for _, id := range list.PostIDs {
		post, err := r.LoadPost(id)
		if errors.Is(err, chord.ErrNotFound) {
			// The list may reference a post a replica has not seen yet.
			continue
		}
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	sortPosts(posts)
	return posts, nil
}

// Feed merges the posts of everyone username follows, newest first.
func (r *PostRepository) Feed(username string, relations *RelationsRepository) ([]*Post, error) {
	following, err := relations.Following(username)
	if err != nil {
		return nil, err
	}
	var feed []*Post
	for _, followed := range following {
		posts, err := r.LoadPosts(followed)
		if err != nil {
			r.lgr.Warn("feed: skipping user",
				zap.String("username", followed), zap.Error(err))
			continue
		}
		feed = append(feed, posts...)
	}
	sortPosts(feed)
	return feed, nil
}

func sortPosts(posts []*Post) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

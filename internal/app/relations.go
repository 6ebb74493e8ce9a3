package app

import (
	"errors"

	"go.uber.org/zap"

	"github.com/ErnestoAbreu/distributed-social-network/internal/chord"
)

// RelationsRepository maintains the follow graph: every user has a
// Following list and a Followers list, and both sides are updated on each
// follow/unfollow.
type RelationsRepository struct {
	router *chord.Router
	lgr    *zap.Logger
}

func NewRelationsRepository(router *chord.Router, lgr *zap.Logger) *RelationsRepository {
	return &RelationsRepository{router: router, lgr: lgr.Named("app.relations")}
}

// Following returns the usernames that username follows.
func (r *RelationsRepository) Following(username string) ([]string, error) {
	return r.loadList(FollowingKey(username))
}

// Followers returns the usernames following username.
func (r *RelationsRepository) Followers(username string) ([]string, error) {
	return r.loadList(FollowersKey(username))
}

// Follow records that follower follows followed, updating both lists.
func (r *RelationsRepository) Follow(follower, followed string) error {
	if follower == followed {
		return chord.ErrInvalidArgument
	}
	if err := r.addToList(FollowingKey(follower), followed); err != nil {
		return err
	}
	if err := r.addToList(FollowersKey(followed), follower); err != nil {
		return err
	}
	r.lgr.Info("follow", zap.String("follower", follower), zap.String("followed", followed))
	return nil
}

// Unfollow removes the relation from both lists.
func (r *RelationsRepository) Unfollow(follower, followed string) error {
	if err := r.removeFromList(FollowingKey(follower), followed); err != nil {
		return err
	}
	if err := r.removeFromList(FollowersKey(followed), follower); err != nil {
		return err
	}
	r.lgr.Info("unfollow", zap.String("follower", follower), zap.String("followed", followed))
	return nil
}

func (r *RelationsRepository) loadList(key string) ([]string, error) {
	raw, err := r.router.Load(key)
	if errors.Is(err, chord.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list UserList
	if err := unmarshal(raw, &list); err != nil {
		return nil, chord.ErrInternal
	}
	return list.Users, nil
}

func (r *RelationsRepository) saveList(key string, users []string) error {
	raw, err := marshal(&UserList{Users: users})
	if err != nil {
		return chord.ErrInternal
	}
	return r.router.Save(key, raw)
}

func (r *RelationsRepository) addToList(key, username string) error {
	users, err := r.loadList(key)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u == username {
			return nil
		}
	}
	return r.saveList(key, append(users, username))
}

func (r *RelationsRepository) removeFromList(key, username string) error {
	users, err := r.loadList(key)
	if err != nil {
		return err
	}
	out := users[:0]
	for _, u := range users {
		if u != username {
			out = append(out, u)
		}
	}
	if len(out) == len(users) {
		return nil
	}
	return r.saveList(key, out)
}

package userrepo

import (
	"context"
	"sync"

	"github.com/wanderplan/travel-planner-api/internal/domain"
	"github.com/wanderplan/travel-planner-api/internal/ports/out/userrepo"
)

// Repo is an in-memory implementation of userrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.UserID]userrepo.User
}

func NewRepo() *Repo {
	return &Repo{
		byID: make(map[domain.UserID]userrepo.User),
	}
}

func (r *Repo) Create(ctx context.Context, u userrepo.User) error {
	_ = ctx
	if u.ID == "" {
		return userrepo.ErrAlreadyExists
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; ok {
		return userrepo.ErrAlreadyExists
	}
	for _, existing := range r.byID {
		if existing.Username == u.Username {
			return userrepo.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return userrepo.ErrEmailTaken
		}
	}
	r.byID[u.ID] = cloneUser(u)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.UserID) (userrepo.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return userrepo.User{}, userrepo.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (userrepo.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return userrepo.User{}, userrepo.ErrNotFound
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (userrepo.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return userrepo.User{}, userrepo.ErrNotFound
}

func (r *Repo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func cloneUser(u userrepo.User) userrepo.User {
	cp := u
	if u.PhoneNumber != nil {
		v := *u.PhoneNumber
		cp.PhoneNumber = &v
	}
	return cp
}

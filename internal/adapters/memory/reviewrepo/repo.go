package reviewrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/wanderplan/travel-planner-api/internal/domain"
	"github.com/wanderplan/travel-planner-api/internal/ports/out/reviewrepo"
)

// Repo is an in-memory implementation of reviewrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.ReviewID]reviewrepo.Review
}

func NewRepo() *Repo {
	return &Repo{
		byID: make(map[domain.ReviewID]reviewrepo.Review),
	}
}

func (r *Repo) Create(ctx context.Context, rv reviewrepo.Review) error {
	_ = ctx
	if rv.ID == "" {
		return reviewrepo.ErrAlreadyExists
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[rv.ID]; ok {
		return reviewrepo.ErrAlreadyExists
	}
	r.byID[rv.ID] = cloneReview(rv)
	return nil
}

func (r *Repo) ListAll(ctx context.Context) ([]reviewrepo.Review, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]reviewrepo.Review, 0, len(r.byID))
	for _, rv := range r.byID {
		out = append(out, cloneReview(rv))
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return string(a.ID) < string(b.ID)
	})
	return out, nil
}

func cloneReview(rv reviewrepo.Review) reviewrepo.Review {
	cp := rv
	cp.Title = cloneStringPtr(rv.Title)
	cp.Comment = cloneStringPtr(rv.Comment)
	cp.Destination = cloneStringPtr(rv.Destination)
	if rv.Rating != nil {
		v := *rv.Rating
		cp.Rating = &v
	}
	return cp
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

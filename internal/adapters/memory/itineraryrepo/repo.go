package itineraryrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/wanderplan/travel-planner-api/internal/domain"
	"github.com/wanderplan/travel-planner-api/internal/ports/out/itineraryrepo"
)

// Repo is an in-memory implementation of itineraryrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.ItineraryID]itineraryrepo.Itinerary
}

func NewRepo() *Repo {
	return &Repo{
		byID: make(map[domain.ItineraryID]itineraryrepo.Itinerary),
	}
}

func (r *Repo) Create(ctx context.Context, it itineraryrepo.Itinerary) error {
	_ = ctx
	if it.ID == "" {
		return itineraryrepo.ErrAlreadyExists
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[it.ID]; ok {
		return itineraryrepo.ErrAlreadyExists
	}
	r.byID[it.ID] = cloneItinerary(it)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.ItineraryID) (itineraryrepo.Itinerary, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.byID[id]
	if !ok {
		return itineraryrepo.Itinerary{}, itineraryrepo.ErrNotFound
	}
	return cloneItinerary(it), nil
}

func (r *Repo) ListByUser(ctx context.Context, userID domain.UserID) ([]itineraryrepo.Itinerary, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]itineraryrepo.Itinerary, 0)
	for _, it := range r.byID {
		if it.UserID == userID {
			out = append(out, cloneItinerary(it))
		}
	}
	sortItineraries(out)
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.ItineraryID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return itineraryrepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func cloneItinerary(it itineraryrepo.Itinerary) itineraryrepo.Itinerary {
	cp := it
	cp.StartDate = cloneStringPtr(it.StartDate)
	cp.EndDate = cloneStringPtr(it.EndDate)
	cp.BudgetRange = cloneStringPtr(it.BudgetRange)
	cp.TravelStyle = cloneStringPtr(it.TravelStyle)
	if it.NumberOfDays != nil {
		v := *it.NumberOfDays
		cp.NumberOfDays = &v
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

func sortItineraries(its []itineraryrepo.Itinerary) {
	// CreatedAt descending; ID as a deterministic tie-breaker.
	sort.Slice(its, func(i, j int) bool {
		a, b := its[i], its[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return string(a.ID) < string(b.ID)
	})
}

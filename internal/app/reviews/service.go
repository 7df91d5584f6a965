package reviews

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/wanderplan/travel-planner-api/internal/domain"
	clockport "github.com/wanderplan/travel-planner-api/internal/ports/out/clock"
	"github.com/wanderplan/travel-planner-api/internal/ports/out/reviewrepo"
	"github.com/wanderplan/travel-planner-api/internal/ports/out/userrepo"
)

type SubmitInput struct {
	Rating      *int
	Title       *string
	Comment     *string
	Destination *string
}

type Service struct {
	repo  reviewrepo.Repository
	users userrepo.Repository
	clk   clockport.Clock

	newReviewID func() domain.ReviewID
}

func NewService(repo reviewrepo.Repository, users userrepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		repo:  repo,
		users: users,
		clk:   clk,
		newReviewID: func() domain.ReviewID {
			return domain.ReviewID(uuid.NewString())
		},
	}
}

// SetNewReviewIDForTest overrides review ID generation for deterministic
// tests. It should not be used in production code.
func (s *Service) SetNewReviewIDForTest(fn func() domain.ReviewID) {
	if fn != nil {
		s.newReviewID = fn
	}
}

// ListAll returns every review, newest first. The listing is public.
func (s *Service) ListAll(ctx context.Context) ([]domain.Review, error) {
	recs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomain(rec))
	}
	return out, nil
}

// Submit records a review attributed to the authenticated caller. The
// reviewer name comes from the caller's user record, never from the payload.
func (s *Service) Submit(ctx context.Context, caller domain.Identity, in SubmitInput) (domain.Review, error) {
	u, err := s.users.GetByUsername(ctx, string(caller))
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return domain.Review{}, &Error{Status: 404, Code: "USER_NOT_FOUND", Message: "user not found"}
		}
		return domain.Review{}, err
	}

	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return domain.Review{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid review", Details: map[string]any{"rating": "must be between 1 and 5"}}
	}
	if in.Comment == nil || strings.TrimSpace(*in.Comment) == "" {
		return domain.Review{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid review", Details: map[string]any{"comment": "must be non-empty"}}
	}

	now := s.clk.Now()
	rec := reviewrepo.Review{
		ID:           s.newReviewID(),
		UserID:       u.ID,
		ReviewerName: strings.TrimSpace(u.FirstName + " " + u.LastName),
		Rating:       cloneIntPtr(in.Rating),
		Title:        cloneStringPtr(in.Title),
		Comment:      cloneStringPtr(in.Comment),
		Destination:  cloneStringPtr(in.Destination),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if rec.ReviewerName == "" {
		rec.ReviewerName = u.Username
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return domain.Review{}, err
	}
	return toDomain(rec), nil
}

func toDomain(rec reviewrepo.Review) domain.Review {
	return domain.Review{
		ID:           rec.ID,
		UserID:       rec.UserID,
		ReviewerName: rec.ReviewerName,
		Rating:       cloneIntPtr(rec.Rating),
		Title:        cloneStringPtr(rec.Title),
		Comment:      cloneStringPtr(rec.Comment),
		Destination:  cloneStringPtr(rec.Destination),
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

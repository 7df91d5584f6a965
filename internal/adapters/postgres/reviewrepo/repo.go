package reviewrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/wanderplan/travel-planner-api/internal/adapters/postgres"
	"github.com/wanderplan/travel-planner-api/internal/domain"
	"github.com/wanderplan/travel-planner-api/internal/ports/out/reviewrepo"
)

// Repo is a Postgres implementation of reviewrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, rv reviewrepo.Review) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	rvUUID, err := uuid.Parse(string(rv.ID))
	if err != nil {
		return fmt.Errorf("invalid review id: %w", err)
	}
	userUUID, err := uuid.Parse(string(rv.UserID))
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO reviews (
				external_id,
				user_id,
				reviewer_name,
				rating,
				title,
				comment,
				destination,
				created_at,
				updated_at
			) VALUES (
				$1,
				(SELECT id FROM users WHERE external_id = $2),
				$3,$4,$5,$6,$7,$8,$9
			)
		`,
			rvUUID,
			userUUID,
			rv.ReviewerName,
			rv.Rating,
			rv.Title,
			rv.Comment,
			rv.Destination,
			rv.CreatedAt.UTC(),
			rv.UpdatedAt.UTC(),
		)
		if err != nil {
			if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
				return reviewrepo.ErrAlreadyExists
			}
			return err
		}
		return nil
	})
}

func (r *Repo) ListAll(ctx context.Context) ([]reviewrepo.Review, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT
			rv.external_id,
			author.external_id,
			rv.reviewer_name,
			rv.rating,
			rv.title,
			rv.comment,
			rv.destination,
			rv.created_at,
			rv.updated_at
		FROM reviews rv
		JOIN users author ON author.id = rv.user_id
		ORDER BY rv.created_at DESC, rv.external_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reviewrepo.Review, 0)
	for rows.Next() {
		var (
			extID     uuid.UUID
			authorID  uuid.UUID
			name      string
			rating    *int
			title     *string
			comment   *string
			dest      *string
			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(&extID, &authorID, &name, &rating, &title, &comment, &dest, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		out = append(out, reviewrepo.Review{
			ID:           domain.ReviewID(extID.String()),
			UserID:       domain.UserID(authorID.String()),
			ReviewerName: name,
			Rating:       rating,
			Title:        title,
			Comment:      comment,
			Destination:  dest,
			CreatedAt:    createdAt.UTC(),
			UpdatedAt:    updatedAt.UTC(),
		})
	}
	return out, rows.Err()
}

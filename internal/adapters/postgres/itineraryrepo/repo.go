package itineraryrepo

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
	"github.com/wanderplan/travel-planner-api/internal/ports/out/itineraryrepo"
)

const itineraryColumns = `
	it.external_id,
	owner.external_id,
	it.destination,
	it.full_itinerary,
	it.start_date,
	it.end_date,
	it.number_of_days,
	it.budget_range,
	it.travel_style,
	it.created_at,
	it.updated_at`

// Repo is a Postgres implementation of itineraryrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, it itineraryrepo.Itinerary) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	itUUID, err := uuid.Parse(string(it.ID))
	if err != nil {
		return fmt.Errorf("invalid itinerary id: %w", err)
	}
	ownerUUID, err := uuid.Parse(string(it.UserID))
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO itineraries (
				external_id,
				user_id,
				destination,
				full_itinerary,
				start_date,
				end_date,
				number_of_days,
				budget_range,
				travel_style,
				created_at,
				updated_at
			) VALUES (
				$1,
				(SELECT id FROM users WHERE external_id = $2),
				$3,$4,$5,$6,$7,$8,$9,$10,$11
			)
		`,
			itUUID,
			ownerUUID,
			it.Destination,
			it.FullItinerary,
			it.StartDate,
			it.EndDate,
			it.NumberOfDays,
			it.BudgetRange,
			it.TravelStyle,
			it.CreatedAt.UTC(),
			it.UpdatedAt.UTC(),
		)
		if err != nil {
			if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
				return itineraryrepo.ErrAlreadyExists
			}
			return err
		}
		return nil
	})
}

func (r *Repo) GetByID(ctx context.Context, id domain.ItineraryID) (itineraryrepo.Itinerary, error) {
	if r.pool == nil {
		return itineraryrepo.Itinerary{}, errors.New("nil postgres pool")
	}
	itUUID, err := uuid.Parse(string(id))
	if err != nil {
		return itineraryrepo.Itinerary{}, itineraryrepo.ErrNotFound
	}

	row := r.pool.QueryRow(ctx, `
		SELECT `+itineraryColumns+`
		FROM itineraries it
		JOIN users owner ON owner.id = it.user_id
		WHERE it.external_id = $1
	`, itUUID)

	it, err := scanItinerary(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return itineraryrepo.Itinerary{}, itineraryrepo.ErrNotFound
		}
		return itineraryrepo.Itinerary{}, err
	}
	return it, nil
}

func (r *Repo) ListByUser(ctx context.Context, userID domain.UserID) ([]itineraryrepo.Itinerary, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	ownerUUID, err := uuid.Parse(string(userID))
	if err != nil {
		return []itineraryrepo.Itinerary{}, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+itineraryColumns+`
		FROM itineraries it
		JOIN users owner ON owner.id = it.user_id
		WHERE owner.external_id = $1
		ORDER BY it.created_at DESC, it.external_id ASC
	`, ownerUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]itineraryrepo.Itinerary, 0)
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) Delete(ctx context.Context, id domain.ItineraryID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	itUUID, err := uuid.Parse(string(id))
	if err != nil {
		return itineraryrepo.ErrNotFound
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM itineraries WHERE external_id = $1`, itUUID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return itineraryrepo.ErrNotFound
	}
	return nil
}

func scanItinerary(row pgx.Row) (itineraryrepo.Itinerary, error) {
	var (
		extID     uuid.UUID
		ownerID   uuid.UUID
		dest      string
		body      string
		startDate *string
		endDate   *string
		days      *int
		budget    *string
		style     *string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&extID, &ownerID, &dest, &body, &startDate, &endDate, &days, &budget, &style, &createdAt, &updatedAt); err != nil {
		return itineraryrepo.Itinerary{}, err
	}
	return itineraryrepo.Itinerary{
		ID:            domain.ItineraryID(extID.String()),
		UserID:        domain.UserID(ownerID.String()),
		Destination:   dest,
		FullItinerary: body,
		StartDate:     startDate,
		EndDate:       endDate,
		NumberOfDays:  days,
		BudgetRange:   budget,
		TravelStyle:   style,
		CreatedAt:     createdAt.UTC(),
		UpdatedAt:     updatedAt.UTC(),
	}, nil
}

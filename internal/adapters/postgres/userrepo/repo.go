package userrepo

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
	"github.com/wanderplan/travel-planner-api/internal/ports/out/userrepo"
)

const userColumns = `external_id, username, email, password_hash, first_name, last_name, phone_number, role, created_at, updated_at`

// Repo is a Postgres implementation of userrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, u userrepo.User) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	userUUID, err := uuid.Parse(string(u.ID))
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO users (
				external_id,
				username,
				email,
				password_hash,
				first_name,
				last_name,
				phone_number,
				role,
				created_at,
				updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`,
			userUUID,
			u.Username,
			u.Email,
			u.PasswordHash,
			u.FirstName,
			u.LastName,
			u.PhoneNumber,
			u.Role,
			u.CreatedAt.UTC(),
			u.UpdatedAt.UTC(),
		)
		if err != nil {
			if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
				switch pe.ConstraintName {
				case "users_username_unique":
					return userrepo.ErrUsernameTaken
				case "users_email_unique":
					return userrepo.ErrEmailTaken
				default:
					return userrepo.ErrAlreadyExists
				}
			}
			return err
		}
		return nil
	})
}

func (r *Repo) GetByID(ctx context.Context, id domain.UserID) (userrepo.User, error) {
	if r.pool == nil {
		return userrepo.User{}, errors.New("nil postgres pool")
	}
	userUUID, err := uuid.Parse(string(id))
	if err != nil {
		return userrepo.User{}, userrepo.ErrNotFound
	}
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE external_id = $1`, userUUID)
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (userrepo.User, error) {
	if r.pool == nil {
		return userrepo.User{}, errors.New("nil postgres pool")
	}
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (userrepo.User, error) {
	if r.pool == nil {
		return userrepo.User{}, errors.New("nil postgres pool")
	}
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *Repo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if r.pool == nil {
		return false, errors.New("nil postgres pool")
	}
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username)
}

func (r *Repo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if r.pool == nil {
		return false, errors.New("nil postgres pool")
	}
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *Repo) getOne(ctx context.Context, query string, arg any) (userrepo.User, error) {
	row := r.pool.QueryRow(ctx, query, arg)

	var (
		extID     uuid.UUID
		username  string
		email     string
		hash      string
		firstName string
		lastName  string
		phone     *string
		role      string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&extID, &username, &email, &hash, &firstName, &lastName, &phone, &role, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return userrepo.User{}, userrepo.ErrNotFound
		}
		return userrepo.User{}, err
	}

	return userrepo.User{
		ID:           domain.UserID(extID.String()),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		PhoneNumber:  cloneStringPtr(phone),
		Role:         role,
		CreatedAt:    createdAt.UTC(),
		UpdatedAt:    updatedAt.UTC(),
	}, nil
}

func (r *Repo) exists(ctx context.Context, query string, arg any) (bool, error) {
	var ok bool
	if err := r.pool.QueryRow(ctx, query, arg).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

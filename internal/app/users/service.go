package users

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wanderplan/travel-planner-api/internal/domain"
	clockport "github.com/wanderplan/travel-planner-api/internal/ports/out/clock"
	"github.com/wanderplan/travel-planner-api/internal/ports/out/userrepo"
)

// TokenSigner is the supplied signing utility's minting half.
type TokenSigner interface {
	Sign(subject string) (string, error)
}

type Service struct {
	repo   userrepo.Repository
	signer TokenSigner
	clk    clockport.Clock

	newUserID func() domain.UserID
}

func NewService(repo userrepo.Repository, signer TokenSigner, clk clockport.Clock) *Service {
	return &Service{
		repo:   repo,
		signer: signer,
		clk:    clk,
		newUserID: func() domain.UserID {
			return domain.UserID(uuid.NewString())
		},
	}
}

// SetNewUserIDForTest overrides user ID generation for deterministic tests.
// It should not be used in production code.
func (s *Service) SetNewUserIDForTest(fn func() domain.UserID) {
	if fn != nil {
		s.newUserID = fn
	}
}

func (s *Service) SignUp(ctx context.Context, in SignUpInput) (AuthResult, error) {
	username := domain.NormalizeUsername(in.Username)
	if username == "" {
		return AuthResult{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid username", Details: map[string]any{"username": "must be non-empty"}}
	}
	email := strings.TrimSpace(in.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return AuthResult{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid email", Details: map[string]any{"email": "must be a valid email address"}}
	}
	if len(in.Password) < 8 {
		return AuthResult{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid password", Details: map[string]any{"password": "must be at least 8 characters"}}
	}

	if taken, err := s.repo.ExistsByEmail(ctx, email); err != nil {
		return AuthResult{}, err
	} else if taken {
		return AuthResult{}, &Error{Status: 409, Code: "EMAIL_TAKEN", Message: "Email already exists"}
	}
	if taken, err := s.repo.ExistsByUsername(ctx, username); err != nil {
		return AuthResult{}, err
	} else if taken {
		return AuthResult{}, &Error{Status: 409, Code: "USERNAME_TAKEN", Message: "Username already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	now := s.clk.Now()
	u := userrepo.User{
		ID:           s.newUserID(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		PhoneNumber:  cloneStringPtr(in.PhoneNumber),
		Role:         "USER",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		switch {
		case errors.Is(err, userrepo.ErrUsernameTaken):
			return AuthResult{}, &Error{Status: 409, Code: "USERNAME_TAKEN", Message: "Username already exists"}
		case errors.Is(err, userrepo.ErrEmailTaken):
			return AuthResult{}, &Error{Status: 409, Code: "EMAIL_TAKEN", Message: "Email already exists"}
		default:
			return AuthResult{}, err
		}
	}

	return s.authResult(u)
}

func (s *Service) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" && email == "" {
		return AuthResult{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "Username or email is required"}
	}

	var (
		u   userrepo.User
		err error
	)
	if username != "" {
		u, err = s.repo.GetByUsername(ctx, username)
	} else {
		u, err = s.repo.GetByEmail(ctx, email)
	}
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return AuthResult{}, &Error{Status: 401, Code: "INVALID_CREDENTIALS", Message: "Invalid credentials"}
		}
		return AuthResult{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return AuthResult{}, &Error{Status: 401, Code: "INVALID_CREDENTIALS", Message: "Invalid credentials"}
	}

	return s.authResult(u)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return domain.User{}, &Error{Status: 404, Code: "USER_NOT_FOUND", Message: "user not found"}
		}
		return domain.User{}, err
	}
	return toDomain(u), nil
}

func (s *Service) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.repo.ExistsByUsername(ctx, username)
}

func (s *Service) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, email)
}

func (s *Service) authResult(u userrepo.User) (AuthResult, error) {
	token, err := s.signer.Sign(u.Username)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{
		Token:     token,
		TokenType: "Bearer",
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}, nil
}

func toDomain(u userrepo.User) domain.User {
	return domain.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PhoneNumber:  cloneStringPtr(u.PhoneNumber),
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

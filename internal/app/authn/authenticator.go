package authn

import (
	"errors"
	"strings"

	"github.com/wanderplan/travel-planner-api/internal/domain"
)

var (
	// ErrMissingCredentials indicates the Authorization header was absent or
	// did not carry a Bearer token.
	ErrMissingCredentials = errors.New("missing bearer credentials")

	// ErrInvalidToken indicates a present token failed verification
	// (malformed, expired, or bad signature).
	ErrInvalidToken = errors.New("invalid bearer token")
)

// Verifier is the supplied signing utility's verification half.
type Verifier interface {
	Verify(token string) (string, error)
}

// Authenticator extracts the caller's identity from a raw Authorization
// header value. It has no side effects and is safe for concurrent use; the
// result depends only on the header value and the immutable signing secret.
type Authenticator struct {
	verifier Verifier
}

func New(verifier Verifier) *Authenticator {
	return &Authenticator{verifier: verifier}
}

const bearerPrefix = "Bearer "

// Authenticate fails closed: any header that is not a well-formed
// "Bearer <token>" yields ErrMissingCredentials, and any token the verifier
// rejects yields ErrInvalidToken.
func (a *Authenticator) Authenticate(rawHeaderValue string) (domain.Identity, error) {
	if rawHeaderValue == "" {
		return "", ErrMissingCredentials
	}
	if !strings.HasPrefix(rawHeaderValue, bearerPrefix) {
		return "", ErrMissingCredentials
	}
	raw := strings.TrimSpace(strings.TrimPrefix(rawHeaderValue, bearerPrefix))
	if raw == "" {
		return "", ErrMissingCredentials
	}

	subject, err := a.verifier.Verify(raw)
	if err != nil {
		return "", ErrInvalidToken
	}
	return domain.Identity(subject), nil
}

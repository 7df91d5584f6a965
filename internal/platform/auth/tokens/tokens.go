package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure. Callers get no
// detail about why a token was rejected.
var ErrInvalidToken = errors.New("invalid token")

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Tokens signs and verifies bearer tokens. Signing is HS256 over an immutable
// shared secret, so both operations are pure functions of their inputs and
// safe for concurrent use.
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	skew   time.Duration
	clock  Clock
}

func New(secret, issuer string, ttl time.Duration) *Tokens {
	return NewWithOptions(secret, issuer, ttl, 0, nil)
}

func NewWithOptions(secret, issuer string, ttl, skew time.Duration, clock Clock) *Tokens {
	if clock == nil {
		clock = realClock{}
	}
	return &Tokens{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		skew:   skew,
		clock:  clock,
	}
}

// Sign mints a token for the given subject (the username).
func (t *Tokens) Sign(subject string) (string, error) {
	now := t.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    t.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks the token's signature, issuer, and expiry and returns the
// embedded subject. Any failure yields ErrInvalidToken.
func (t *Tokens) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(t.skew),
		jwt.WithTimeFunc(func() time.Time { return t.clock.Now() }),
	)
	if err != nil {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

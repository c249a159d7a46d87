// Package auth gates the API behind the access PIN and guards destructive
// routes with the confirmation PIN.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ConfirmHeader = "X-Confirm-PIN"
	issuer        = "bistro"
)

var (
	ErrInvalidPIN   = errors.New("invalid pin")
	ErrInvalidToken = errors.New("invalid token")
)

type Authenticator struct {
	accessPIN  string
	confirmPIN string
	secret     []byte
	ttl        time.Duration
	now        func() time.Time
}

type Option func(*Authenticator)

func WithClock(now func() time.Time) Option {
	return func(a *Authenticator) { a.now = now }
}

// New builds an Authenticator. An empty secret is replaced by a random one, so
// tokens do not survive a restart.
func New(accessPIN, confirmPIN, secret string, ttl time.Duration, opts ...Option) (*Authenticator, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generating token secret: %w", err)
		}
	}

	a := &Authenticator{
		accessPIN:  accessPIN,
		confirmPIN: confirmPIN,
		secret:     key,
		ttl:        ttl,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Unlock exchanges the access PIN for a signed session token.
func (a *Authenticator) Unlock(pin string) (string, time.Time, error) {
	if !equal(pin, a.accessPIN) {
		return "", time.Time{}, ErrInvalidPIN
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return signed, expiresAt, nil
}

func (a *Authenticator) Verify(token string) error {
	_, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return nil
}

// Confirm checks the confirmation PIN required by destructive actions.
func (a *Authenticator) Confirm(pin string) error {
	if !equal(pin, a.confirmPIN) {
		return ErrInvalidPIN
	}

	return nil
}

// RequireToken rejects requests without a valid bearer token.
func (a *Authenticator) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || a.Verify(token) != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireConfirmation rejects requests whose X-Confirm-PIN header is wrong.
func (a *Authenticator) RequireConfirmation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := a.Confirm(r.Header.Get(ConfirmHeader)); err != nil {
			http.Error(w, "confirmation pin required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func equal(got, want string) bool {
	return want != "" && subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

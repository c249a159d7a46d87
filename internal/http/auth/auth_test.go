package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func newAuth(t *testing.T, clock func() time.Time) *Authenticator {
	t.Helper()

	a, err := New("2929", "29173456", "test-secret", time.Hour, WithClock(clock))
	require.NoError(t, err)

	return a
}

func TestAuthenticator_Unlock(t *testing.T) {
	a := newAuth(t, func() time.Time { return now })

	_, _, err := a.Unlock("0000")
	assert.ErrorIs(t, err, ErrInvalidPIN)

	token, expiresAt, err := a.Unlock("2929")
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)
	assert.NoError(t, a.Verify(token))
}

func TestAuthenticator_Verify(t *testing.T) {
	clock := now
	a := newAuth(t, func() time.Time { return clock })

	token, _, err := a.Unlock("2929")
	require.NoError(t, err)

	other, err := New("2929", "29173456", "another-secret", time.Hour, WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	assert.ErrorIs(t, other.Verify(token), ErrInvalidToken)

	assert.ErrorIs(t, a.Verify("not-a-token"), ErrInvalidToken)

	clock = now.Add(2 * time.Hour)
	assert.ErrorIs(t, a.Verify(token), ErrInvalidToken)
}

func TestNew_RandomSecret(t *testing.T) {
	a, err := New("2929", "1", "", time.Hour)
	require.NoError(t, err)

	b, err := New("2929", "1", "", time.Hour)
	require.NoError(t, err)

	token, _, err := a.Unlock("2929")
	require.NoError(t, err)
	assert.Error(t, b.Verify(token))
}

func TestMiddleware(t *testing.T) {
	a := newAuth(t, time.Now)

	r := chi.NewRouter()
	r.Route("/unlock", NewHandler(a).Routes)
	r.Group(func(r chi.Router) {
		r.Use(a.RequireToken)
		r.Get("/protected", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
		r.With(a.RequireConfirmation).Delete("/protected", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/unlock", strings.NewReader(`{"pin":"2929"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp unlockResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	type testCase struct {
		name    string
		method  string
		token   string
		confirm string
		want    int
	}

	tests := []testCase{
		{name: "NoToken", method: http.MethodGet, want: http.StatusUnauthorized},
		{name: "BadToken", method: http.MethodGet, token: "abc", want: http.StatusUnauthorized},
		{name: "ValidToken", method: http.MethodGet, token: resp.Token, want: http.StatusOK},
		{name: "DeleteWithoutConfirmation", method: http.MethodDelete, token: resp.Token, want: http.StatusForbidden},
		{name: "DeleteWrongConfirmation", method: http.MethodDelete, token: resp.Token, confirm: "2929", want: http.StatusForbidden},
		{name: "DeleteConfirmed", method: http.MethodDelete, token: resp.Token, confirm: "29173456", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/protected", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			if tt.confirm != "" {
				req.Header.Set(ConfirmHeader, tt.confirm)
			}

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_UnlockWrongPIN(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/unlock", NewHandler(newAuth(t, time.Now)).Routes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/unlock", strings.NewReader(`{"pin":"1234"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

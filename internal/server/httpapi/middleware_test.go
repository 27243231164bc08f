package httpapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/server/auth"
	"github.com/dmitrijs2005/notekeeper/internal/server/ratelimit"
	"github.com/stretchr/testify/assert"
)

func TestRequireAuth_MissingToken(t *testing.T) {
	s := newTestServer(&fakeUsers{}, &fakeNotes{})

	w := doRequest(t, s, http.MethodPost, "/notes/new", `{"description":"x"}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	s := newTestServer(&fakeUsers{}, &fakeNotes{})

	w := doRequest(t, s, http.MethodPost, "/notes/new", `{"description":"x"}`, "not.a.jwt")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	s := newTestServer(&fakeUsers{}, &fakeNotes{})

	expired, err := auth.GenerateToken(1, false, []byte(testSecret), -time.Second)
	if err != nil {
		t.Fatalf("token setup: %v", err)
	}

	w := doRequest(t, s, http.MethodPost, "/notes/new", `{"description":"x"}`, expired)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimit_DenialShortCircuits(t *testing.T) {
	s := newTestServer(&fakeUsers{}, &fakeNotes{})
	s.limiter = ratelimit.New(2, time.Minute)

	token := testToken(t, 1, false)

	for i := 0; i < 2; i++ {
		w := doRequest(t, s, http.MethodPost, "/notes/new", `{"description":"x"}`, token)
		assert.Equal(t, http.StatusOK, w.Code, "request %d within budget", i+1)
	}

	w := doRequest(t, s, http.MethodPost, "/notes/new", `{"description":"x"}`, token)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimit_RunsBeforeAuth(t *testing.T) {
	s := newTestServer(&fakeUsers{}, &fakeNotes{})
	s.limiter = ratelimit.New(1, time.Minute)

	// exhaust the budget with an authenticated request
	w := doRequest(t, s, http.MethodPost, "/notes/new", `{"description":"x"}`, testToken(t, 1, false))
	assert.Equal(t, http.StatusOK, w.Code)

	// an unauthenticated request from the same client must see 429, not 401
	w = doRequest(t, s, http.MethodPost, "/notes/new", `{"description":"x"}`, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimit_AppliesToUnauthenticatedRoutes(t *testing.T) {
	s := newTestServer(&fakeUsers{loginResp: "tok"}, &fakeNotes{})
	s.limiter = ratelimit.New(1, time.Minute)

	w := doRequest(t, s, http.MethodPost, "/users/login", `{"username":"a","password":"b"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s, http.MethodPost, "/users/login", `{"username":"a","password":"b"}`, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

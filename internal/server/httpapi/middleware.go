package httpapi

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/auth"
	"github.com/google/uuid"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// responseRecorder captures status and size for the request log.
type responseRecorder struct {
	b      int
	status int
	w      http.ResponseWriter
}

func (r *responseRecorder) Header() http.Header { return r.w.Header() }

func (r *responseRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.w.Write(p)
	r.b += n
	return n, err
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.status = statusCode
	r.w.WriteHeader(statusCode)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := uuid.NewRandom()
		log := s.logger.With(
			"req_id", requestID.String(),
			"method", r.Method,
			"path", r.URL.Path,
		)

		start := time.Now()
		rr := &responseRecorder{w: w}

		next.ServeHTTP(rr, r)

		log.Info(r.Context(), "request complete",
			"status", rr.status,
			"bytes", rr.b,
			"took_ms", int64(time.Since(start)/time.Millisecond),
		)
	})
}

// clientAddr derives the rate-limiting key for a request: the first hop
// of X-Forwarded-For when present, otherwise the remote address host.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// rateLimit rejects the request with 429 before any further processing
// when the client's budget for the current window is exhausted.
func (s *Server) rateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientAddr(r)) {
			writeError(w, common.ErrorRateLimited)
			return
		}
		next(w, r)
	}
}

// requireAuth verifies the auth-token header and stores the claims in the
// request context.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(common.AuthTokenHeaderName)
		if token == "" {
			writeError(w, common.ErrMissingToken)
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next(w, r.WithContext(ctx))
	}
}

func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

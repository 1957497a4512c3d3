// internal/httpserver/session.go
//
// Session tokens for the game API.
//   - HS256 JWT with the session ID in "gid".
//   - Accepted as a bearer token or the memory_session cookie.

package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionCookieName = "memory_session"

// ctxSessionKey is the context key type for the session ID.
type ctxSessionKey struct{}

// sessionID returns the session ID placed in the context by requireSession.
func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(ctxSessionKey{}).(string)
	return id
}

// signSession creates an HS256 token carrying the session ID in "gid".
func (s *Server) signSession(id string) (string, time.Time, error) {
	now := s.opts.Now()
	exp := now.Add(s.opts.SessionTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": id,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.opts.JWTSecret))
	return ss, exp, err
}

// parseSession validates a token and returns its session ID.
func (s *Server) parseSession(tok string) (string, bool) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.opts.Now))
	if err != nil || !t.Valid {
		return "", false
	}
	id, _ := claims["gid"].(string)
	return id, id != ""
}

// requireSession enforces a valid session token and injects its ID into the
// request context.
func (s *Server) requireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearerOrCookie(r)
			if tok == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			id, ok := s.parseSession(tok)
			if !ok {
				writeError(w, http.StatusUnauthorized, "invalid_token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxSessionKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerOrCookie extracts a bearer token from the Authorization header or
// the session cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(sessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, s.sessionCookie(token, exp))
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	c := s.sessionCookie("", time.Time{})
	c.MaxAge = -1
	http.SetCookie(w, c)
}

func (s *Server) sessionCookie(value string, exp time.Time) *http.Cookie {
	secure := secureCookies()
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	}
}

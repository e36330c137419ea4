package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Session is the persisted credential pair (token, role) plus the claims
// the console derives from the token at login so guards and expiry checks
// work offline.
type Session struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	Subject   string    `json:"subject,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

func (s Session) Authenticated() bool { return s.Token != "" }

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Store persists the session across console invocations.
// Implementations live in services/session.
type Store interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

// Claims carried in the backend-issued bearer token.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// SessionFromToken derives a Session from a bearer token. The signature is
// NOT verified here; only the backend holds the key and it re-validates the
// token on every call.
func SessionFromToken(token string) (Session, error) {
	claims := new(Claims)
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Session{}, errors.Wrap(err, "parsing bearer token")
	}
	sess := Session{
		Token:   token,
		Role:    claims.Role,
		Subject: claims.Subject,
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}

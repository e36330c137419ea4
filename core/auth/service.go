package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/schoolmed/console/core"
)

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrSessionExpired       = errors.New("session expired, log in again")
	ErrNotLoggedIn          = errors.New("not logged in")
)

var nowFunc = time.Now // mockable

type (
	Credentials struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	loginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role,omitempty"`
	}

	Service struct {
		client core.APIClient
		store  Store
	}
)

func NewService(client core.APIClient, store Store) *Service {
	return &Service{client: client, store: store}
}

// Login exchanges credentials for a bearer token and persists the
// resulting session.
func (svc *Service) Login(ctx context.Context, username, password string) (Session, error) {
	creds := Credentials{
		Username: core.CleanString(username, true /* lower */),
		Password: password,
	}
	if err := core.CheckStruct(creds); err != nil {
		return Session{}, err
	}

	var resp loginResponse
	if err := svc.client.Post(ctx, "/api/auth/login", creds, &resp); err != nil {
		switch core.StatusCode(err) {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return Session{}, ErrAuthenticationFailed
		}
		return Session{}, err
	}

	sess, err := SessionFromToken(resp.Token)
	if err != nil {
		return Session{}, err
	}
	if sess.Role == "" {
		sess.Role = resp.Role
	}
	if err := svc.store.Save(sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Logout clears the persisted session.
func (svc *Service) Logout() error {
	return svc.store.Clear()
}

// Current returns the persisted session, rejecting missing or expired ones.
func (svc *Service) Current() (Session, error) {
	sess, err := svc.store.Load()
	if err != nil {
		return Session{}, err
	}
	if !sess.Authenticated() {
		return Session{}, ErrNotLoggedIn
	}
	if sess.Expired(nowFunc()) {
		return Session{}, ErrSessionExpired
	}
	return sess, nil
}

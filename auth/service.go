package auth

import (
	"context"
	"errors"
	"time"

	"github.com/kitchenlab/recipebox/catalog"
)

type (
	// Service orchestrates registration and login against the catalog's
	// user table. Each call is independent, no session state is kept
	// between requests beyond the issued-token set.
	Service struct {
		store    *catalog.Store
		tokens   TokenStore
		secret   []byte
		validity time.Duration
	}
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords, callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("auth: invalid username or password")
)

func NewService(store *catalog.Store, tokens TokenStore, secret []byte, validity time.Duration) *Service {
	return &Service{
		store:    store,
		tokens:   tokens,
		secret:   secret,
		validity: validity,
	}
}

// Register hashes the password and persists a new user record.
// A duplicate username surfaces as catalog.DuplicateUser.
func (s *Service) Register(ctx context.Context, username, email, password string) error {
	digest, err := HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.store.CreateUser(ctx, username, email, digest)
	return err
}

// Login verifies the credentials and, on success, issues a signed token
// and records it in the token store.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.LookupUser(ctx, username)
	if err != nil {
		var notFound catalog.UserNotFound
		if errors.As(err, &notFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	token, err := IssueToken(user.ID, s.secret, s.validity)
	if err != nil {
		return "", err
	}
	if err := s.tokens.Save(ctx, token); err != nil {
		return "", err
	}
	return token, nil
}

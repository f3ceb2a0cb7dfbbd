package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/mattn/go-sqlite3"
)

type (
	User struct {
		ID           int64
		Username     string
		Email        string
		PasswordHash string
	}
)

func usernameHash(username string) int64 {
	return int64(xxhash.Sum64String(username))
}

// CreateUser persists a new user record. The password must already be
// hashed by the caller, plaintext never reaches the store.
func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `insert into users(username, username_hash64, email, password) values (?, ?, ?, ?)`,
		username, usernameHash(username), email, passwordHash)
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, DuplicateUser{Username: username}
		}
		return 0, fmt.Errorf("unable to store user in catalog, cause %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("unable to read new user id, cause %w", err)
	}
	return id, nil
}

// LookupUser finds a user by its exact username.
func (s *Store) LookupUser(ctx context.Context, username string) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `select user_id, username, email, password from users where username_hash64 = ? and username = ?`,
		usernameHash(username), username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, UserNotFound{Username: username}
	} else if err != nil {
		return User{}, fmt.Errorf("unable to load user %v from catalog, cause %w", username, err)
	}
	return u, nil
}

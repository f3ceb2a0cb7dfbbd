package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kitchenlab/recipebox/catalog"
	"github.com/kitchenlab/recipebox/internal/testutil"
)

func acquireService(ctx context.Context, t *testing.T) (*Service, TokenStore, func()) {
	store, cleanup := testutil.AcquireCatalog(ctx, t, "auth-test")
	tokens := InMemoryTokenStore(10 * time.Minute)
	svc := NewService(store, tokens, []byte("a-very-long-test-secret"), time.Hour)
	return svc, tokens, cleanup
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, tokens, cleanup := acquireService(ctx, t)
	defer cleanup()

	err := svc.Register(ctx, "alice", "a@x.com", "secret123")
	if err != nil {
		t.Fatal(err)
	}
	token, err := svc.Login(ctx, "alice", "secret123")
	if err != nil {
		t.Fatal(err)
	}
	userID, err := ParseToken(token, []byte("a-very-long-test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	if userID <= 0 {
		t.Fatalf("token carries invalid user id %v", userID)
	}
	found, err := tokens.Lookup(ctx, token)
	if err != nil {
		t.Fatal(err)
	} else if !found {
		t.Fatal("token not found on storage")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := acquireService(ctx, t)
	defer cleanup()

	err := svc.Register(ctx, "alice", "a@x.com", "secret123")
	if err != nil {
		t.Fatal(err)
	}
	// wrong password and unknown user must be indistinguishable
	_, err = svc.Login(ctx, "alice", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	_, err = svc.Login(ctx, "nobody", "secret123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, _, cleanup := acquireService(ctx, t)
	defer cleanup()

	err := svc.Register(ctx, "alice", "a@x.com", "secret123")
	if err != nil {
		t.Fatal(err)
	}
	err = svc.Register(ctx, "alice", "other@x.com", "different")
	var dup catalog.DuplicateUser
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateUser, got %v", err)
	}
	// the original credentials still work
	if _, err := svc.Login(ctx, "alice", "secret123"); err != nil {
		t.Fatal(err)
	}
}

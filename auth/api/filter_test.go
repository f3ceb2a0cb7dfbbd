package api

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kitchenlab/recipebox/auth"
	"github.com/steinfletcher/apitest"
)

func TestProtect(t *testing.T) {
	secret := []byte("a-very-long-test-secret")
	ts := auth.InMemoryTokenStore(10 * time.Minute)
	sr := NewRealm(ts, secret)
	var count uint32
	protected := sr.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddUint32(&count, 1)
		http.Error(w, "OK", http.StatusOK)
	}))

	token, err := auth.IssueToken(1, secret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	apitest.Handler(protected).Get("/").Expect(t).Status(http.StatusUnauthorized).End()
	apitest.Handler(protected).Get("/").Header("Authorization", "Bearer garbage").Expect(t).Status(http.StatusUnauthorized).End()
	// valid signature but never issued by this process
	apitest.Handler(protected).Get("/").Header("Authorization", fmt.Sprintf("Bearer %v", token)).Expect(t).Status(http.StatusUnauthorized).End()
	ts.Save(context.Background(), token)
	apitest.Handler(protected).Get("/").Header("Authorization", fmt.Sprintf("Bearer %v", token)).Expect(t).Status(http.StatusOK).End()
	if count != 1 {
		t.Fatal("Protected endpoint should have been called only once")
	}
}

func TestProtectWithoutTokenStore(t *testing.T) {
	secret := []byte("a-very-long-test-secret")
	sr := NewRealm(nil, secret)
	protected := sr.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "OK", http.StatusOK)
	}))

	token, err := auth.IssueToken(1, secret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	expired, err := auth.IssueToken(1, secret, -time.Second)
	if err != nil {
		t.Fatal(err)
	}
	apitest.Handler(protected).Get("/").Header("Authorization", fmt.Sprintf("Bearer %v", token)).Expect(t).Status(http.StatusOK).End()
	apitest.Handler(protected).Get("/").Header("Authorization", fmt.Sprintf("Bearer %v", expired)).Expect(t).Status(http.StatusUnauthorized).End()
}

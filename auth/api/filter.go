package api

import (
	"net/http"
	"regexp"

	"github.com/kitchenlab/recipebox/auth"
	"github.com/kitchenlab/recipebox/internal/logutil"
)

type (
	SecurityRealm struct {
		tokenset auth.TokenStore
		secret   []byte
	}
)

var (
	bearerTokenRE = regexp.MustCompile(`^Bearer ([^\s]+)$`)
)

// NewRealm protects sensitive handlers with bearer-token checks. When
// tokens is nil only the token signature and expiry are validated,
// which allows a realm to accept tokens minted by another process
// sharing the same secret.
func NewRealm(tokens auth.TokenStore, secret []byte) *SecurityRealm {
	return &SecurityRealm{
		tokenset: tokens,
		secret:   secret,
	}
}

func (s *SecurityRealm) Protect(sensitive http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.checkToken(r) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		sensitive.ServeHTTP(w, r)
	})
}

func (s *SecurityRealm) checkToken(r *http.Request) bool {
	ctx := r.Context()
	log := logutil.GetOrDefault(ctx)
	groups := bearerTokenRE.FindStringSubmatch(r.Header.Get("Authorization"))
	if len(groups) == 0 {
		return false
	}
	tk := groups[1]
	if _, err := auth.ParseToken(tk, s.secret); err != nil {
		return false
	}
	if s.tokenset == nil {
		return true
	}
	found, err := s.tokenset.Lookup(ctx, tk)
	if err != nil {
		log.Error().Err(err).Msg("Unexpected error when checking for token in token set")
		return false
	}
	return found
}

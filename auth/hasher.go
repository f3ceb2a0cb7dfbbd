package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Fixed parameters so digests verify regardless of which host minted
// them. 7 passes over 10 MB should be a good replacement for 1 pass
// over 64 MB of ram.
const (
	argonTime    = 7
	argonMemory  = 10 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16

	digestPrefix = "argon2id"
)

// HashPassword derives a one-way digest from the given plaintext with a
// fresh random salt. The digest is safe to persist.
func HashPassword(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	_, err := rand.Read(salt)
	if err != nil {
		return "", fmt.Errorf("unable to generate password salt, cause %w", err)
	}
	key := argon2.IDKey([]byte(plaintext), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("%v$%v$%v", digestPrefix,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// VerifyPassword recomputes the digest for the candidate plaintext and
// compares it in constant time. Any malformed digest verifies as false.
func VerifyPassword(plaintext, digest string) bool {
	parts := strings.Split(digest, "$")
	if len(parts) != 3 || parts[0] != digestPrefix {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil || len(want) != argonKeyLen {
		return false
	}
	got := argon2.IDKey([]byte(plaintext), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return subtle.ConstantTimeCompare(got, want) == 1
}

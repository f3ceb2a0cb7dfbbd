package auth

import (
	"fmt"
	"os"
)

const (
	SecretEnvVar = "RECIPEBOX_TOKEN_SECRET"

	minSecretLen = 16
)

// SecretFromEnv reads the token-signing secret from the named
// environment variable and wipes the variable afterwards, so the secret
// never outlives process startup in the environment.
func SecretFromEnv(varname string, getfn func(string) string, setfn func(string, string) error) ([]byte, error) {
	if getfn == nil {
		getfn = os.Getenv
	}
	if setfn == nil {
		setfn = os.Setenv
	}
	val := getfn(varname)
	setfn(varname, "")
	if len(val) < minSecretLen {
		return nil, fmt.Errorf("auth: secret from %v must be at least %v bytes long", varname, minSecretLen)
	}
	return []byte(val), nil
}

// Package auth establishes user identity for the recipe catalog.
//
// Passwords are never stored, only an argon2id digest with a random
// per-user salt. Logins that succeed are rewarded with a signed JWT
// bound to the user id and an expiry; the signing secret comes from the
// environment and is wiped from it once read.
//
// Issued tokens are also kept in an in-memory set. The public read API
// never checks them, reads are deliberately open. Administrative
// endpoints go through SecurityRealm (see the api subpackage) which
// validates both the signature and, when configured with the set,
// membership in it.
package auth

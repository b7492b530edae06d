package gallery

import (
	"crypto/subtle"
	"fmt"

	"github.com/alexedwards/argon2id"
)

// Verifier decides whether a candidate unlocks an item's stored secret. An
// empty stored secret must never verify.
type Verifier interface {
	Verify(secret, candidate string) bool
}

// PlaintextVerifier compares the stored secret and the candidate as exact,
// case-sensitive strings.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(secret, candidate string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(candidate)) == 1
}

// Argon2Verifier expects the stored secret to be an argon2id encoding as
// produced by HashSecret. Malformed encodings never verify.
type Argon2Verifier struct{}

func (Argon2Verifier) Verify(secret, candidate string) bool {
	if secret == "" {
		return false
	}
	ok, err := argon2id.ComparePasswordAndHash(candidate, secret)
	return err == nil && ok
}

func HashSecret(plain string, params *argon2id.Params) (string, error) {
	if plain == "" {
		return "", fmt.Errorf("cannot hash an empty secret")
	}
	if params == nil {
		params = argon2id.DefaultParams
	}
	return argon2id.CreateHash(plain, params)
}

type Scheme string

const (
	SchemePlaintext Scheme = "plaintext"
	SchemeArgon2id  Scheme = "argon2id"
)

func VerifierFor(scheme Scheme) (Verifier, error) {
	switch scheme {
	case "", SchemePlaintext:
		return PlaintextVerifier{}, nil
	case SchemeArgon2id:
		return Argon2Verifier{}, nil
	default:
		return nil, fmt.Errorf("unknown secret scheme %q", scheme)
	}
}

package account

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Credential is the stored password material for an account. Historically
// passwords were stored in plaintext; those rows are still in the database and
// are migrated to bcrypt on the first successful login. The bcrypt version
// prefix is the structural marker that distinguishes the two encodings.
type Credential struct {
	hashed bool
	value  string
}

// ParseCredential classifies a stored credential string.
func ParseCredential(stored string) Credential {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return Credential{hashed: true, value: stored}
	}
	return Credential{hashed: false, value: stored}
}

// NewHashedCredential hashes a plaintext password with bcrypt.
func NewHashedCredential(plaintext string) (Credential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return Credential{}, err
	}
	return Credential{hashed: true, value: string(hash)}, nil
}

// IsLegacy reports whether the credential is still stored as plaintext.
func (c Credential) IsLegacy() bool {
	return !c.hashed
}

// Verify checks a plaintext password against the credential.
func (c Credential) Verify(plaintext string) bool {
	if c.hashed {
		return bcrypt.CompareHashAndPassword([]byte(c.value), []byte(plaintext)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(c.value), []byte(plaintext)) == 1
}

// Stored returns the representation persisted in the credential column.
func (c Credential) Stored() string {
	return c.value
}

// api/util/password_util.go
package util

import "golang.org/x/crypto/bcrypt"

// PasswordUtil hashes and compares secrets (passwords and security answers).
type PasswordUtil struct {
	cost int
}

func NewPasswordUtil(cost int) *PasswordUtil {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordUtil{cost: cost}
}

func (p *PasswordUtil) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), p.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Matches reports whether secret hashes to hash. Malformed hashes never match.
func (p *PasswordUtil) Matches(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

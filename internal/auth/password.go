package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword runs bcrypt at the given cost (DefaultCost when zero). The
// per-record random salt is embedded in the returned hash.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether candidate matches the stored hash. The
// comparison is constant time; a mismatch is a plain false, never an error.
func CheckPasswordHash(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}

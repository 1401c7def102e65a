package password

import "golang.org/x/crypto/bcrypt"

// Hash encodes a plaintext password with a per-call random salt. The output
// is one-way; the original value is never recoverable from it.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Matches reports whether plain corresponds to hash. The underlying compare
// is constant-time; any mismatch or malformed hash yields false.
func Matches(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

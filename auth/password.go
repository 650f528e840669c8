package auth

import "golang.org/x/crypto/bcrypt"

const hashCost = 10

// HashPassword returns a salted bcrypt hash; a fresh salt is generated on
// every call so identical inputs never hash to the same value.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

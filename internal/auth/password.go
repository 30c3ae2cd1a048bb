package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt-хеш с DefaultCost
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword nil, если пароль подходит к хешу
func CheckPassword(hash, pw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
}

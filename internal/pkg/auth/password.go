package auth

import (
	"math/rand"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the hashing cost for stored passwords.
const BcryptCost = 12

// HashPassword hashes a plaintext password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a hash.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

const (
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	digitChars   = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"

	generatedPasswordLength = 14
)

// GeneratePassword builds an initial student password: one character from
// each class, a slice of the student code, padded to length and shuffled.
func GeneratePassword(code string) string {
	allChars := upperChars + lowerChars + digitChars + specialChars

	var b strings.Builder
	b.WriteByte(upperChars[rand.Intn(len(upperChars))])
	b.WriteByte(lowerChars[rand.Intn(len(lowerChars))])
	b.WriteByte(digitChars[rand.Intn(len(digitChars))])
	b.WriteByte(specialChars[rand.Intn(len(specialChars))])

	if len(code) > 2 {
		b.WriteString(code[rand.Intn(len(code)-2):])
	}

	for b.Len() < generatedPasswordLength {
		b.WriteByte(allChars[rand.Intn(len(allChars))])
	}

	return shuffle(b.String())
}

func shuffle(input string) string {
	chars := []byte(input)
	for i := len(chars) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		chars[i], chars[j] = chars[j], chars[i]
	}
	return string(chars)
}

package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
	assert.False(t, CheckPassword("not a hash", "anything"))
}

func TestGeneratePassword(t *testing.T) {
	containsAny := func(s, set string) bool {
		return strings.ContainsAny(s, set)
	}

	for i := 0; i < 20; i++ {
		password := GeneratePassword("ST2520110121")

		assert.GreaterOrEqual(t, len(password), generatedPasswordLength)
		assert.True(t, containsAny(password, upperChars), "needs an upper-case character")
		assert.True(t, containsAny(password, lowerChars), "needs a lower-case character")
		assert.True(t, containsAny(password, digitChars), "needs a digit")
		assert.True(t, containsAny(password, specialChars), "needs a special character")
	}
}

func TestGeneratePasswordVaries(t *testing.T) {
	a := GeneratePassword("ST2520110121")
	b := GeneratePassword("ST2520110121")
	assert.NotEqual(t, a, b)
}

package helpers

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateStudentCode(t *testing.T) {
	year := time.Now().Year() % 100

	for i := 0; i < 20; i++ {
		code := GenerateStudentCode(20, 3)

		assert.Len(t, code, 12)
		assert.Equal(t, fmt.Sprintf("ST%02d203", year), code[:7])
	}
}

func TestGenerateStudentCodeWrapsAge(t *testing.T) {
	code := GenerateStudentCode(105, 1)
	assert.Len(t, code, 12)
	assert.Equal(t, "05", code[4:6])
}

func TestGenerateStudentCodeVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		seen[GenerateStudentCode(20, 1)] = true
	}
	assert.Greater(t, len(seen), 1, "the random suffix must vary")
}

func TestUniversityEmail(t *testing.T) {
	email := UniversityEmail("ST2520110121")
	assert.Equal(t, "st2520110121@collegium.edu", email)
	assert.True(t, strings.HasSuffix(email, "@"+UniversityDomain))
}

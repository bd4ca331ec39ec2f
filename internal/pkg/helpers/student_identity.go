package helpers

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// UniversityDomain is the mail domain of generated student addresses.
const UniversityDomain = "collegium.edu"

const (
	codeSuffixMin = 10101
	codeSuffixMax = 99119
)

// GenerateStudentCode builds a candidate student code from the join year,
// the student's age and academic year plus a random suffix. Uniqueness is
// not guaranteed here; callers check the code against the store and retry.
func GenerateStudentCode(age int, academicYear int) string {
	year := time.Now().Year() % 100
	suffix := codeSuffixMin + rand.Intn(codeSuffixMax-codeSuffixMin)
	return fmt.Sprintf("ST%02d%02d%d%d", year, age%100, academicYear, suffix)
}

// UniversityEmail derives the student mail address from the code.
func UniversityEmail(code string) string {
	return fmt.Sprintf("%s@%s", strings.ToLower(code), UniversityDomain)
}

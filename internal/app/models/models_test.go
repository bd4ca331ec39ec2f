package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ozank/collegium/internal/pkg/apperrors"
)

func TestDepartmentCapacityFloor(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"zero falls back to default", 0, DefaultMaxStudentCount},
		{"negative falls back to default", -5, DefaultMaxStudentCount},
		{"at the floor boundary", 25, DefaultMaxStudentCount},
		{"just above the floor", 26, 26},
		{"normal capacity", 250, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Department
			d.SetMaxStudentCount(tt.value)
			assert.Equal(t, tt.want, d.MaxStudentCount)
		})
	}
}

func TestDepartmentFloorAppliedOnSave(t *testing.T) {
	d := Department{MaxStudentCount: 10}
	d.Name = "Mathematics"

	assert.NoError(t, d.BeforeSave(nil))
	assert.Equal(t, DefaultMaxStudentCount, d.MaxStudentCount,
		"floor must hold even when the field is set directly")
}

func TestCourseSemester(t *testing.T) {
	var c Course
	c.Name = "Algebra"

	assert.NoError(t, c.SetSemester(1))
	assert.Equal(t, 1, c.Semester)

	err := c.SetSemester(3)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSemester)
	assert.Equal(t, 1, c.Semester, "rejected assignment must not mutate")

	assert.NoError(t, c.BeforeSave(nil))

	c.Semester = 0
	assert.ErrorIs(t, c.BeforeSave(nil), apperrors.ErrInvalidSemester)
}

func TestValidateBase(t *testing.T) {
	var b BaseModel

	assert.ErrorIs(t, b.ValidateBase(), apperrors.ErrValidationFailed)

	b.Name = "   "
	assert.ErrorIs(t, b.ValidateBase(), apperrors.ErrValidationFailed)

	b.Name = strings.Repeat("x", MaxNameLength)
	assert.NoError(t, b.ValidateBase())

	b.Name = strings.Repeat("x", MaxNameLength+1)
	assert.ErrorIs(t, b.ValidateBase(), apperrors.ErrValidationFailed)
}

func TestDiscriminatorStamping(t *testing.T) {
	s := Student{}
	s.Name = "Ada Lovelace"
	assert.NoError(t, s.BeforeSave(nil))
	assert.Equal(t, PersonTypeStudent, s.PersonType)

	p := Professor{}
	p.Name = "Alan Turing"
	assert.NoError(t, p.BeforeSave(nil))
	assert.Equal(t, PersonTypeProfessor, p.PersonType)
}

func TestValidRole(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleUser, RoleSuperUser, RoleStudent} {
		assert.True(t, ValidRole(role))
	}
	assert.False(t, ValidRole(Role("janitor")))
}

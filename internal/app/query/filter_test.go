package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozank/collegium/internal/pkg/apperrors"
)

func testFieldMap() FieldMap {
	return NewFieldMap(
		map[string]string{
			"name":         "name",
			"age":          "age",
			"departmentId": "department_id",
			"active":       "active",
		},
		map[string]string{
			"department": "Department",
			"courses":    "Courses.Course",
		},
	)
}

func TestParseFilterSingleClause(t *testing.T) {
	f, err := ParseFilter("age>=18", testFieldMap())
	require.NoError(t, err)
	require.Len(t, f.clauses, 1)

	assert.Equal(t, "age >= ?", f.clauses[0].expr)
	assert.Equal(t, int64(18), f.clauses[0].arg)
	assert.False(t, f.clauses[0].or)
}

func TestParseFilterConnectors(t *testing.T) {
	f, err := ParseFilter("age>=18and::departmentId==3or::name==Algebra", testFieldMap())
	require.NoError(t, err)
	require.Len(t, f.clauses, 3)

	assert.False(t, f.clauses[0].or)
	assert.False(t, f.clauses[1].or, "first connector is and")
	assert.True(t, f.clauses[2].or, "second connector is or")
	assert.Equal(t, "name = ?", f.clauses[2].expr)
	assert.Equal(t, "Algebra", f.clauses[2].arg)
}

func TestParseFilterOperators(t *testing.T) {
	tests := []struct {
		raw  string
		expr string
	}{
		{"age==4", "age = ?"},
		{"age!=4", "age <> ?"},
		{"age>4", "age > ?"},
		{"age>=4", "age >= ?"},
		{"age<4", "age < ?"},
		{"age<=4", "age <= ?"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			f, err := ParseFilter(tt.raw, testFieldMap())
			require.NoError(t, err)
			require.Len(t, f.clauses, 1)
			assert.Equal(t, tt.expr, f.clauses[0].expr)
		})
	}
}

func TestParseFilterLiteralConversion(t *testing.T) {
	tests := []struct {
		raw  string
		want interface{}
	}{
		{"age==42", int64(42)},
		{"age==4.5", 4.5},
		{"active==true", true},
		{"name==Bob", "Bob"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			f, err := ParseFilter(tt.raw, testFieldMap())
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.clauses[0].arg)
		})
	}
}

func TestParseFilterUnknownField(t *testing.T) {
	_, err := ParseFilter("salary>=100", testFieldMap())
	assert.ErrorIs(t, err, apperrors.ErrUnknownField)
}

func TestParseFilterMalformedClause(t *testing.T) {
	for _, raw := range []string{"age", "==4", "age==", "and::age==4"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseFilter(raw, testFieldMap())
			assert.Error(t, err)
		})
	}
}

func TestParseFilterEmpty(t *testing.T) {
	f, err := ParseFilter("  ", testFieldMap())
	require.NoError(t, err)
	assert.True(t, f.Empty())
}

func TestProgrammaticFilter(t *testing.T) {
	f := Where("department_id = ?", 3).And("age > ?", 20)
	require.Len(t, f.clauses, 2)
	assert.False(t, f.Empty())
}

func TestFieldMapLookupIsCaseInsensitive(t *testing.T) {
	fm := testFieldMap()

	column, err := fm.Column("DepartmentID")
	require.NoError(t, err)
	assert.Equal(t, "department_id", column)

	path, err := fm.Preload("COURSES")
	require.NoError(t, err)
	assert.Equal(t, "Courses.Course", path)

	_, err = fm.Preload("grades")
	assert.ErrorIs(t, err, apperrors.ErrUnknownRelation)
}

func TestBuildSpec(t *testing.T) {
	spec, err := Build(Options{
		Filter:   "age>=18",
		Includes: []string{"department"},
		OrderBy:  "departmentId",
		Desc:     true,
	}, testFieldMap())
	require.NoError(t, err)

	assert.True(t, spec.HasFilter())
	assert.Equal(t, []string{"Department"}, spec.Preloads)
	assert.Equal(t, "department_id", spec.OrderBy)
	assert.True(t, spec.Desc)
}

func TestBuildSpecRejectsUnknownNames(t *testing.T) {
	_, err := Build(Options{OrderBy: "salary"}, testFieldMap())
	assert.ErrorIs(t, err, apperrors.ErrUnknownField)

	_, err = Build(Options{Includes: []string{"grades"}}, testFieldMap())
	assert.ErrorIs(t, err, apperrors.ErrUnknownRelation)
}

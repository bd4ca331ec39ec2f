package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/query"
	"github.com/ozank/collegium/internal/pkg/apperrors"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Department{},
		&models.Address{},
		&models.Course{},
		&models.StudentCourse{},
		&models.Exam{},
		&models.Grade{},
		&models.StudentCrucialInformation{},
		&models.AppUser{},
	))

	// The person subtypes share one table; AutoMigrate applies only one
	// model per table, so each subtype runs separately.
	require.NoError(t, db.AutoMigrate(&models.Student{}))
	require.NoError(t, db.AutoMigrate(&models.Professor{}))
	require.NoError(t, db.AutoMigrate(&models.Administrator{}))
	return db
}

func newDepartment(name string) *models.Department {
	d := &models.Department{}
	d.Name = name
	d.SetMaxStudentCount(200)
	return d
}

func newStudent(name string, age int) *models.Student {
	s := &models.Student{}
	s.Name = name
	s.Age = age
	s.StudentCode = fmt.Sprintf("ST25%02d1%d", age, 10101+age)
	return s
}

func TestCreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewBase[models.Department](db, zerolog.Nop())
	ctx := context.Background()

	department := newDepartment("Mathematics")
	require.NoError(t, repo.Create(ctx, department))
	require.NotZero(t, department.ID)

	got, err := repo.GetByID(ctx, department.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", got.Name)
	assert.Equal(t, 200, got.MaxStudentCount)
}

func TestGetByIDMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewBase[models.Department](db, zerolog.Nop())

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteByIDMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewBase[models.Department](db, zerolog.Nop())

	err := repo.DeleteByID(context.Background(), 9999)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestUpdatePersistsChanges(t *testing.T) {
	db := openTestDB(t)
	repo := NewBase[models.Department](db, zerolog.Nop())
	ctx := context.Background()

	department := newDepartment("Physics")
	require.NoError(t, repo.Create(ctx, department))

	department.Name = "Applied Physics"
	require.NoError(t, repo.Update(ctx, department))

	got, err := repo.GetByID(ctx, department.ID)
	require.NoError(t, err)
	assert.Equal(t, "Applied Physics", got.Name)
}

func TestGetWhere(t *testing.T) {
	db := openTestDB(t)
	repo := NewBase[models.Department](db, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newDepartment("Mathematics")))
	require.NoError(t, repo.Create(ctx, newDepartment("Physics")))

	got, err := repo.GetWhere(ctx, query.Spec{Filter: query.Where("name = ?", "Physics")})
	require.NoError(t, err)
	assert.Equal(t, "Physics", got.Name)

	_, err = repo.GetWhere(ctx, query.Spec{Filter: query.Where("name = ?", "Alchemy")})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestUpdateRange(t *testing.T) {
	db := openTestDB(t)
	repo := NewBase[models.Student](db, zerolog.Nop())
	ctx := context.Background()

	ada := newStudent("Ada", 20)
	grace := newStudent("Grace", 21)
	require.NoError(t, repo.Create(ctx, ada))
	require.NoError(t, repo.Create(ctx, grace))

	ada.Age = 22
	grace.Age = 23
	require.NoError(t, repo.UpdateRange(ctx, []*models.Student{ada, grace}))

	got, err := repo.GetAll(ctx, query.Spec{OrderBy: "age"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 22, got[0].Age)
	assert.Equal(t, 23, got[1].Age)
}

func TestDeleteEntity(t *testing.T) {
	db := openTestDB(t)
	repo := NewBase[models.Department](db, zerolog.Nop())
	ctx := context.Background()

	department := newDepartment("Philosophy")
	require.NoError(t, repo.Create(ctx, department))

	require.NoError(t, repo.Delete(ctx, department))

	_, err := repo.GetByID(ctx, department.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteRange(t *testing.T) {
	db := openTestDB(t)
	repo := NewBase[models.Student](db, zerolog.Nop())
	ctx := context.Background()

	ada := newStudent("Ada", 20)
	grace := newStudent("Grace", 21)
	keep := newStudent("Edsger", 22)
	require.NoError(t, repo.Create(ctx, ada))
	require.NoError(t, repo.Create(ctx, grace))
	require.NoError(t, repo.Create(ctx, keep))

	require.NoError(t, repo.DeleteRange(ctx, []*models.Student{ada, grace}))

	got, err := repo.GetAll(ctx, query.Spec{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Edsger", got[0].Name)
}

func TestDiscriminatorScoping(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	students := NewBase[models.Student](db, zerolog.Nop())
	professors := NewBase[models.Professor](db, zerolog.Nop())
	administrators := NewBase[models.Administrator](db, zerolog.Nop())

	require.NoError(t, students.Create(ctx, newStudent("Ada Lovelace", 20)))

	professor := &models.Professor{}
	professor.Name = "Alan Turing"
	professor.Age = 41
	require.NoError(t, professors.Create(ctx, professor))

	administrator := &models.Administrator{}
	administrator.Name = "Margaret Hamilton"
	administrator.Age = 38
	require.NoError(t, administrators.Create(ctx, administrator))

	// All rows share one table; each repository sees only its own kind.
	studentCount, err := students.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), studentCount)

	professorCount, err := professors.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), professorCount)

	administratorCount, err := administrators.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), administratorCount)

	_, err = students.GetByID(ctx, professor.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound,
		"a professor row must be invisible through the student repository")
}

func TestOrFilterStaysInsideDiscriminatorScope(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	students := NewBase[models.Student](db, zerolog.Nop())
	professors := NewBase[models.Professor](db, zerolog.Nop())

	require.NoError(t, students.Create(ctx, newStudent("Ada Lovelace", 20)))

	professor := &models.Professor{}
	professor.Name = "Alan Turing"
	professor.Age = 41
	require.NoError(t, professors.Create(ctx, professor))

	fm := query.NewFieldMap(map[string]string{"age": "age"}, nil)
	filter, err := query.ParseFilter("age==20or::age==41", fm)
	require.NoError(t, err)

	got, err := students.GetAll(ctx, query.Spec{Filter: filter})
	require.NoError(t, err)
	require.Len(t, got, 1, "an or-connected clause must not reach past the student scope")
	assert.Equal(t, "Ada Lovelace", got[0].Name)
}

func TestGetAllWithFilterAndOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewBase[models.Student](db, zerolog.Nop())
	ctx := context.Background()

	for i, name := range []string{"Ada", "Grace", "Edsger"} {
		require.NoError(t, repo.Create(ctx, newStudent(name, 18+i)))
	}

	spec := query.Spec{Filter: query.Where("age >= ?", 19), OrderBy: "age", Desc: true}
	got, err := repo.GetAll(ctx, spec)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Edsger", got[0].Name)
	assert.Equal(t, "Grace", got[1].Name)
}

func TestGetAllPagedArithmetic(t *testing.T) {
	db := openTestDB(t)
	repo := NewBase[models.Student](db, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(ctx, newStudent(fmt.Sprintf("Student %d", i), 18+i)))
	}

	page, err := repo.GetAllPaged(ctx, query.Spec{OrderBy: "age"}, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(7), page.TotalCount)
	assert.Equal(t, 3, page.PageSize)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages())
	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrevious())
	assert.Len(t, page.Items, 3)

	last, err := repo.GetAllPaged(ctx, query.Spec{OrderBy: "age"}, 3, 3)
	require.NoError(t, err)
	assert.Len(t, last.Items, 1)
	assert.False(t, last.HasNext())
	assert.True(t, last.HasPrevious())
}

func TestGetAllPagedEmpty(t *testing.T) {
	db := openTestDB(t)
	repo := NewBase[models.Student](db, zerolog.Nop())

	page, err := repo.GetAllPaged(context.Background(), query.Spec{}, 1, 10)
	require.NoError(t, err, "an empty page is not an error")
	assert.Empty(t, page.Items)
	assert.Zero(t, page.TotalCount)
	assert.Zero(t, page.TotalPages())
	assert.False(t, page.HasNext())
	assert.False(t, page.HasPrevious())
}

func TestDeleteWhereRefusesEmptyFilter(t *testing.T) {
	db := openTestDB(t)
	repo := NewBase[models.Student](db, zerolog.Nop())

	err := repo.DeleteWhere(context.Background(), &query.Filter{})
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	db := openTestDB(t)
	repo := NewBase[models.Student](db, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newStudent("Ada", 20)))

	exists, err := repo.Exists(ctx, query.Where("age = ?", 20))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, query.Where("age = ?", 99))
	require.NoError(t, err)
	assert.False(t, exists)
}

package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/app/query"
	"github.com/ozank/collegium/internal/app/repositories"
	"github.com/ozank/collegium/internal/pkg/apperrors"
	"github.com/ozank/collegium/internal/pkg/results"
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

func departmentService(t *testing.T) (*Service[models.Department], *gorm.DB) {
	db := openTestDB(t)
	repo := repositories.NewBase[models.Department](db, zerolog.Nop())
	return NewService(repo, dto.DepartmentFields, zerolog.Nop()), db
}

func seedDepartments(t *testing.T, svc *Service[models.Department], n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		d := &models.Department{}
		d.Name = fmt.Sprintf("Department %02d", i)
		d.SetMaxStudentCount(100 + i)
		op := svc.Create(context.Background(), d)
		require.True(t, op.IsSuccess())
	}
}

func TestServiceCreateAndGet(t *testing.T) {
	svc, _ := departmentService(t)
	ctx := context.Background()

	d := &models.Department{}
	d.Name = "Mathematics"
	d.SetMaxStudentCount(150)
	require.True(t, svc.Create(ctx, d).IsSuccess())

	got, op := svc.Get(ctx, d.ID)
	require.True(t, op.IsSuccess())
	assert.Equal(t, "Mathematics", got.Name)
}

func TestServiceGetMissing(t *testing.T) {
	svc, _ := departmentService(t)

	_, op := svc.Get(context.Background(), 4242)
	assert.True(t, op.IsFailure())
	assert.Equal(t, results.CodeNotFound, op.FirstCode())
}

func TestServiceGetRejectsUnknownInclude(t *testing.T) {
	svc, _ := departmentService(t)

	_, op := svc.Get(context.Background(), 1, "professors", "janitors")
	assert.True(t, op.IsFailure())
	assert.Equal(t, results.CodeValidationFailed, op.FirstCode())
}

func TestServiceGetByQuery(t *testing.T) {
	svc, _ := departmentService(t)
	seedDepartments(t, svc, 3)
	ctx := context.Background()

	got, op := svc.GetByQuery(ctx, query.Options{Filter: "name==Department 01"})
	require.True(t, op.IsSuccess())
	assert.Equal(t, 101, got.MaxStudentCount)

	_, op = svc.GetByQuery(ctx, query.Options{Filter: "name==Astrology"})
	assert.True(t, op.IsFailure())
	assert.Equal(t, results.CodeNotFound, op.FirstCode())

	_, op = svc.GetByQuery(ctx, query.Options{Filter: "budget==1"})
	assert.True(t, op.IsFailure())
	assert.Equal(t, results.CodeValidationFailed, op.FirstCode())
}

func TestServiceGetAllWithFilter(t *testing.T) {
	svc, _ := departmentService(t)
	seedDepartments(t, svc, 5)

	got, op := svc.GetAll(context.Background(), query.Options{
		Filter:  "maxStudentCount>=103",
		OrderBy: "maxStudentCount",
		Desc:    true,
	})
	require.True(t, op.IsSuccess())
	require.Len(t, got, 2)
	assert.Equal(t, 104, got[0].MaxStudentCount)
}

func TestServiceRejectsUnknownFilterField(t *testing.T) {
	svc, _ := departmentService(t)

	_, op := svc.GetAll(context.Background(), query.Options{Filter: "budget>=1"})
	assert.True(t, op.IsFailure())
	assert.Equal(t, results.CodeValidationFailed, op.FirstCode())
}

func TestServicePaging(t *testing.T) {
	svc, _ := departmentService(t)
	seedDepartments(t, svc, 7)
	ctx := context.Background()

	page, op := svc.GetAllPaged(ctx, query.Options{OrderBy: "name"}, 2, 3)
	require.True(t, op.IsSuccess())
	assert.Equal(t, int64(7), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages())
	assert.Len(t, page.Items, 3)

	// Beyond the last page: success with an empty items slice.
	empty, op := svc.GetAllPaged(ctx, query.Options{}, 9, 3)
	require.True(t, op.IsSuccess())
	assert.Empty(t, empty.Items)
	assert.Equal(t, int64(7), empty.TotalCount)
}

func TestServiceUpdateMerge(t *testing.T) {
	svc, _ := departmentService(t)
	ctx := context.Background()

	d := &models.Department{}
	d.Name = "Physics"
	d.SetMaxStudentCount(100)
	require.True(t, svc.Create(ctx, d).IsSuccess())

	op := svc.Update(ctx, d.ID, func(dept *models.Department) error {
		dept.Name = "Applied Physics"
		return nil
	})
	require.True(t, op.IsSuccess())

	got, op := svc.Get(ctx, d.ID)
	require.True(t, op.IsSuccess())
	assert.Equal(t, "Applied Physics", got.Name)
}

func TestServiceUpdateMergeRejection(t *testing.T) {
	svc, _ := departmentService(t)
	ctx := context.Background()

	d := &models.Department{}
	d.Name = "Physics"
	d.SetMaxStudentCount(100)
	require.True(t, svc.Create(ctx, d).IsSuccess())

	op := svc.Update(ctx, d.ID, func(*models.Department) error {
		return apperrors.ErrInvalidSemester
	})
	assert.True(t, op.IsFailure())
	assert.Equal(t, results.CodeValidationFailed, op.FirstCode())

	got, getOp := svc.Get(ctx, d.ID)
	require.True(t, getOp.IsSuccess())
	assert.Equal(t, "Physics", got.Name, "rejected merge must not persist")
}

func TestServiceUpdateSaveHookRejection(t *testing.T) {
	svc, _ := departmentService(t)
	ctx := context.Background()

	d := &models.Department{}
	d.Name = "Physics"
	d.SetMaxStudentCount(100)
	require.True(t, svc.Create(ctx, d).IsSuccess())

	// The merge itself passes; the save hook rejects the overlong name.
	op := svc.Update(ctx, d.ID, func(dept *models.Department) error {
		dept.Name = strings.Repeat("x", models.MaxNameLength+1)
		return nil
	})
	assert.True(t, op.IsFailure())
	assert.Equal(t, results.CodeValidationFailed, op.FirstCode())
}

func TestServiceUpdateMissing(t *testing.T) {
	svc, _ := departmentService(t)

	op := svc.Update(context.Background(), 4242, func(*models.Department) error { return nil })
	assert.Equal(t, results.CodeNotFound, op.FirstCode())
}

func TestServiceDelete(t *testing.T) {
	svc, _ := departmentService(t)
	ctx := context.Background()

	d := &models.Department{}
	d.Name = "Chemistry"
	d.SetMaxStudentCount(100)
	require.True(t, svc.Create(ctx, d).IsSuccess())

	require.True(t, svc.Delete(ctx, d.ID).IsSuccess())

	op := svc.Delete(ctx, d.ID)
	assert.Equal(t, results.CodeNotFound, op.FirstCode())
}

func TestServiceExistsAndCount(t *testing.T) {
	svc, _ := departmentService(t)
	seedDepartments(t, svc, 3)
	ctx := context.Background()

	exists, op := svc.Exists(ctx, "maxStudentCount==101")
	require.True(t, op.IsSuccess())
	assert.True(t, exists)

	count, op := svc.Count(ctx, "")
	require.True(t, op.IsSuccess())
	assert.Equal(t, int64(3), count)
}

func TestProjectPage(t *testing.T) {
	page := &repositories.PagedResult[models.Department]{
		Items:       make([]models.Department, 2),
		TotalCount:  8,
		PageSize:    2,
		CurrentPage: 2,
	}
	projected := ProjectPage(page, dto.FromDepartment)

	assert.Len(t, projected.Items, 2)
	assert.Equal(t, int64(8), projected.TotalCount)
	assert.Equal(t, 4, projected.TotalPages)
	assert.True(t, projected.HasNext)
	assert.True(t, projected.HasPrevious)
}

package repositories

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ozank/collegium/internal/app/models"
)

// Repositories aggregates every repository for dependency wiring.
type Repositories struct {
	Students       *StudentRepository
	Professors     *Base[models.Professor]
	Administrators *Base[models.Administrator]
	Departments    *Base[models.Department]
	Courses        *Base[models.Course]
	Exams          *Base[models.Exam]
	Grades         *Base[models.Grade]
	Users          *UserRepository
}

// NewRepositories creates all repositories sharing one database handle.
func NewRepositories(db *gorm.DB, logger zerolog.Logger) *Repositories {
	return &Repositories{
		Students:       NewStudentRepository(db, logger),
		Professors:     NewBase[models.Professor](db, logger),
		Administrators: NewBase[models.Administrator](db, logger),
		Departments:    NewBase[models.Department](db, logger),
		Courses:        NewBase[models.Course](db, logger),
		Exams:          NewBase[models.Exam](db, logger),
		Grades:         NewBase[models.Grade](db, logger),
		Users:          NewUserRepository(db, logger),
	}
}

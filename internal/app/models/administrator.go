package models

import "gorm.io/gorm"

// AdminPosition enumerates administrator posts.
type AdminPosition int

const (
	PositionDean AdminPosition = iota + 1
	PositionViceDean
	PositionRegistrar
	PositionSecretary
)

// Administrator is a staff person attached to a department.
type Administrator struct {
	Person
	AdminPosition AdminPosition `json:"adminPosition"`
	DepartmentID  *int          `json:"departmentId,omitempty"`
	Department    *Department   `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
}

func (Administrator) TableName() string { return "people" }

// Discriminator implements Discriminated.
func (Administrator) Discriminator() string { return PersonTypeAdministrator }

func (a *Administrator) BeforeSave(tx *gorm.DB) error {
	a.PersonType = PersonTypeAdministrator
	return a.ValidateBase()
}

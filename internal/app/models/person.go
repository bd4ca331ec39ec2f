package models

// AcademicYear numbers a student's year of study.
type AcademicYear int

const (
	YearFirst AcademicYear = iota + 1
	YearSecond
	YearThird
	YearFourth
)

// Person type tags stored in the people.person_type column.
const (
	PersonTypeStudent       = "STUDENT"
	PersonTypeProfessor     = "PROFESSOR"
	PersonTypeAdministrator = "ADMINISTRATOR"
)

// Person carries the fields shared by everyone stored in the people table.
// Students, professors and administrators share one table, keyed by the
// person_type discriminator.
type Person struct {
	BaseModel
	Age         int      `json:"age"`
	PhoneNumber string   `json:"phoneNumber" gorm:"size:13"`
	Email       string   `json:"email"`
	AddressID   *int     `json:"addressId,omitempty"`
	Address     *Address `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	PersonType  string   `json:"-" gorm:"size:20;index"`
}

// Address is the optional one-to-one location record of a person.
type Address struct {
	BaseModel
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Street   string `json:"street"`
	Country  string `json:"country"`
	PersonID *int   `json:"personId,omitempty"`
}

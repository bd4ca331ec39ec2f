package dto

import (
	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/query"
)

// AdministratorResponse is the default read view of an administrator.
type AdministratorResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	PhoneNumber    string `json:"phoneNumber"`
	Email          string `json:"email"`
	AdminPosition  int    `json:"adminPosition"`
	DepartmentID   *int   `json:"departmentId,omitempty"`
	DepartmentName string `json:"departmentName,omitempty"`
}

// AdministratorCreateRequest is the write shape for adding an administrator.
type AdministratorCreateRequest struct {
	Name          string `json:"name" binding:"required,max=70"`
	Age           int    `json:"age" binding:"required,gt=0"`
	PhoneNumber   string `json:"phoneNumber" binding:"omitempty,max=13"`
	Email         string `json:"email" binding:"required,email"`
	AdminPosition int    `json:"adminPosition" binding:"required,min=1,max=4"`
	DepartmentID  *int   `json:"departmentId" binding:"omitempty,gt=0"`
}

// AdministratorUpdateRequest is the write shape for updating an administrator.
type AdministratorUpdateRequest struct {
	Name          string `json:"name" binding:"omitempty,max=70"`
	Age           int    `json:"age" binding:"omitempty,gt=0"`
	PhoneNumber   string `json:"phoneNumber" binding:"omitempty,max=13"`
	Email         string `json:"email" binding:"omitempty,email"`
	AdminPosition int    `json:"adminPosition" binding:"omitempty,min=1,max=4"`
	DepartmentID  *int   `json:"departmentId" binding:"omitempty,gt=0"`
}

// AdministratorFields maps the exposed administrator view onto the people table.
var AdministratorFields = query.NewFieldMap(
	map[string]string{
		"id":            "id",
		"name":          "name",
		"age":           "age",
		"phoneNumber":   "phone_number",
		"email":         "email",
		"adminPosition": "admin_position",
		"departmentId":  "department_id",
	},
	map[string]string{
		"department": "Department",
		"address":    "Address",
	},
)

// FromAdministrator maps an entity into the default view.
func FromAdministrator(a *models.Administrator) AdministratorResponse {
	resp := AdministratorResponse{
		ID:            a.ID,
		Name:          a.Name,
		Age:           a.Age,
		PhoneNumber:   a.PhoneNumber,
		Email:         a.Email,
		AdminPosition: int(a.AdminPosition),
		DepartmentID:  a.DepartmentID,
	}
	if a.Department != nil {
		resp.DepartmentName = a.Department.Name
	}
	return resp
}

// ToAdministrator maps the create request into a new entity.
func (r *AdministratorCreateRequest) ToAdministrator() *models.Administrator {
	administrator := &models.Administrator{
		AdminPosition: models.AdminPosition(r.AdminPosition),
		DepartmentID:  r.DepartmentID,
	}
	administrator.Name = r.Name
	administrator.Age = r.Age
	administrator.PhoneNumber = r.PhoneNumber
	administrator.Email = r.Email
	return administrator
}

// MergeInto applies the update request's non-zero fields to the entity.
func (r *AdministratorUpdateRequest) MergeInto(a *models.Administrator) {
	if r.Name != "" {
		a.Name = r.Name
	}
	if r.Age != 0 {
		a.Age = r.Age
	}
	if r.PhoneNumber != "" {
		a.PhoneNumber = r.PhoneNumber
	}
	if r.Email != "" {
		a.Email = r.Email
	}
	if r.AdminPosition != 0 {
		a.AdminPosition = models.AdminPosition(r.AdminPosition)
	}
	if r.DepartmentID != nil {
		a.DepartmentID = r.DepartmentID
	}
}

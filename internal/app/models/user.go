package models

// Role names the access level carried in a user's token claim.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
	RoleSuperUser Role = "superuser"
	RoleStudent   Role = "student"
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleUser, RoleSuperUser, RoleStudent:
		return true
	}
	return false
}

// AppUser is a login account. Students get one automatically when they are
// created; staff accounts are registered through the account endpoints.
type AppUser struct {
	ID            int    `json:"id" gorm:"primaryKey"`
	Email         string `json:"email" gorm:"uniqueIndex"`
	Username      string `json:"username" gorm:"uniqueIndex"`
	PasswordHash  string `json:"-"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	PhoneNumber   string `json:"phoneNumber" gorm:"size:13"`
	Role          Role   `json:"role" gorm:"size:20"`
	SecurityStamp string `json:"-"`
}

func (AppUser) TableName() string { return "users" }

// GetID returns the primary key.
func (u *AppUser) GetID() int { return u.ID }

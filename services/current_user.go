package services

import "github.com/gueleresra1/Yemeksystem/models"

// CurrentUser is the authenticated actor as resolved by the auth middleware.
// Role is the role name, never a numeric id.
type CurrentUser struct {
	ID    uint
	Email string
	Role  string
}

func (u CurrentUser) IsAdmin() bool {
	return u.Role == models.RoleAdmin
}

func (u CurrentUser) IsDealer() bool {
	return u.Role == models.RoleDealer
}

package models

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	RoleID   uint   `gorm:"not null" json:"role_id"`
	Role     Role   `json:"role"`

	// Foods published by this user (dealers only).
	Foods []Food `gorm:"foreignKey:DealerID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

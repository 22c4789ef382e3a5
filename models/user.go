package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ProfilePicture keeps the Cloudinary public id next to the URL so the asset
// can be destroyed when replaced or when the account is deleted.
type ProfilePicture struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type User struct {
	ID             uint           `gorm:"primaryKey" json:"_id"`
	FullName       string         `gorm:"not null" json:"fullName"`
	UserName       string         `gorm:"uniqueIndex;not null" json:"userName"`
	Email          string         `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber    string         `gorm:"not null" json:"phoneNumber"`
	Password       string         `gorm:"not null" json:"-"`
	ProfilePicture ProfilePicture `gorm:"embedded;embeddedPrefix:picture_" json:"profilePicture"`
	Role           Role           `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	Addresses      []Address      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses"`
	Orders         []Order        `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Cart           *Cart          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

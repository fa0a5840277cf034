package user

import (
	"time"
)

type User struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username       string `gorm:"type:varchar(100);uniqueIndex;not null"`
	HashedPassword string `gorm:"type:varchar(255);not null"`

	FirstName      string `gorm:"type:varchar(100);not null"`
	LastName       string `gorm:"type:varchar(100);not null"`
	ProfilePicture *string

	IsActive bool `gorm:"default:true"`
	// Kept for backward compatibility; always read through authz.Actor.IsPrivileged.
	IsSuperuser bool   `gorm:"default:false"`
	Role        string `gorm:"type:varchar(20);not null;default:'user'"`

	CreatedAt time.Time
	UpdatedAt time.Time
	LastLogin *time.Time
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

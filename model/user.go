package model

import "time"

type UserRole int8

const (
	UserRoleNormal UserRole = 0
	UserRoleAdmin  UserRole = 1
)

type UserStatus int8

const (
	UserStatusNormal   UserStatus = 0
	UserStatusDisabled UserStatus = 1
)

type User struct {
	ID       uint64     `gorm:"primarykey" json:"id"`
	Email    string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username string     `gorm:"size:100;not null" json:"username"`
	Password string     `gorm:"size:100;not null" json:"-"`
	Role     UserRole   `gorm:"not null;default:0" json:"role"`
	Status   UserStatus `gorm:"not null;default:0" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "noders_user"
}

type SignupParam struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginParam struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GetProfileParam struct {
	CommonParam `json:"-"`
}

type GetProfileResponse struct {
	User User `json:"user"`
}

type UpdatePasswordParam struct {
	CommonParam `json:"-"`

	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

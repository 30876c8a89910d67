package model

import "time"

type Team struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	Name     string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	LeaderID uint64 `gorm:"not null" json:"leader_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Members []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

func (Team) TableName() string {
	return "noders_team"
}

type TeamMemberRole int8

const (
	TeamRoleMember TeamMemberRole = 0
	TeamRoleLeader TeamMemberRole = 1
)

type TeamMember struct {
	ID       uint64         `gorm:"primarykey" json:"id"`
	TeamID   uint64         `gorm:"uniqueIndex:uk_team_user;not null" json:"team_id"`
	UserID   uint64         `gorm:"uniqueIndex:uk_team_user;not null" json:"user_id"`
	Role     TeamMemberRole `gorm:"not null;default:0" json:"role"`
	JoinedAt time.Time      `json:"joined_at"`
}

func (TeamMember) TableName() string {
	return "noders_team_member"
}

type CreateTeamParam struct {
	CommonParam `json:"-"`

	Name string `json:"name" binding:"required,max=100"`
}

type TeamMemberParam struct {
	CommonParam `json:"-"`

	TeamID uint64 `json:"team_id" binding:"required"`
	UserID uint64 `json:"user_id" binding:"required"`
}

type GetTeamParam struct {
	CommonParam `json:"-"`

	TeamID uint64 `form:"team_id" binding:"required"`
}

type GetTeamResponse struct {
	Team Team `json:"team"`
}

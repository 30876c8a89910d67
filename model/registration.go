package model

import "time"

type RegistrationStatus int8

const (
	RegistrationStatusPending  RegistrationStatus = 0
	RegistrationStatusApproved RegistrationStatus = 1
	RegistrationStatusRejected RegistrationStatus = 2
)

type ParticipantType int8

const (
	ParticipantTypeUser ParticipantType = 0
	ParticipantTypeTeam ParticipantType = 1
)

// Registration joins a participant to a competition. ParticipantID is a user
// id for individual competitions and a team id for team competitions; the
// competition's participation type fixes which one, ParticipantType records it
// so queries over the shared table never mix the two id spaces.
type Registration struct {
	ID              uint64             `gorm:"primarykey" json:"id"`
	CompetitionID   uint64             `gorm:"uniqueIndex:uk_competition_participant;not null" json:"competition_id"`
	ParticipantID   uint64             `gorm:"uniqueIndex:uk_competition_participant;not null" json:"participant_id"`
	ParticipantType ParticipantType    `gorm:"uniqueIndex:uk_competition_participant;not null" json:"participant_type"`
	Status          RegistrationStatus `gorm:"not null;default:0" json:"status"`
	ReviewerID      *uint64            `json:"reviewer_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Registration) TableName() string {
	return "noders_registration"
}

// Active means the registration still occupies the participant's slot for the
// competition: pending or approved.
func (r Registration) Active() bool {
	return r.Status == RegistrationStatusPending || r.Status == RegistrationStatusApproved
}

type RegisterCompetitionParam struct {
	CompetitionCommonParam `json:"-"`

	// TeamID is required when the competition's participation type is team.
	TeamID uint64 `json:"team_id"`
}

type ReviewRegistrationParam struct {
	CommonParam `json:"-"`

	RegistrationID uint64 `json:"registration_id" binding:"required"`
	Approve        *bool  `json:"approve" binding:"required"`
}

type GetRegistrationListParam struct {
	CompetitionCommonParam `json:"-"`

	Status   *RegistrationStatus `form:"status" binding:"omitempty,oneof=0 1 2"`
	Page     int                 `form:"page" binding:"required,min=1"`
	PageSize int                 `form:"page_size" binding:"required,min=10,max=100"`
}

type GetRegistrationListResponse struct {
	List     []Registration `json:"list"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

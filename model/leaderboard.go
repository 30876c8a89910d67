package model

import "time"

// LeaderboardEntry is derived from the submission set on demand and never
// persisted.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	ParticipantID uint64  `json:"participant_id"`
	DisplayScore  float64 `json:"display_score"`

	BestPublicSubmissionID  uint64    `json:"best_public_submission_id,omitempty"`
	BestPrivateSubmissionID uint64    `json:"best_private_submission_id,omitempty"`
	BestSubmittedAt         time.Time `json:"best_submitted_at"`
	SubmissionCount         int       `json:"submission_count"`
}

type GetLeaderboardParam struct {
	CompetitionCommonParam `json:"-"`
}

type GetLeaderboardResponse struct {
	CompetitionID uint64             `json:"competition_id"`
	Phase         Phase              `json:"phase"`
	Entries       []LeaderboardEntry `json:"entries"`
	GeneratedAt   time.Time          `json:"generated_at"`
}

type ExportLeaderboardParam struct {
	CommonParam `json:"-"`

	CompetitionID uint64 `form:"competition_id" binding:"required"`
	Format        string `form:"format" binding:"required,oneof=csv xlsx"`
}

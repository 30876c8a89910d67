package model

import "time"

type SubmissionPhase string

const (
	SubmissionPhasePublic  SubmissionPhase = "public"
	SubmissionPhasePrivate SubmissionPhase = "private"
)

type ValidationStatus int8

const (
	ValidationStatusValid   ValidationStatus = 0
	ValidationStatusInvalid ValidationStatus = 1
)

// Submission is write-once. Phase is the phase that was active when the
// submission was admitted and never changes afterwards; Score is written
// exactly once by the score result consumer.
type Submission struct {
	ID            uint64          `gorm:"primarykey" json:"id"`
	CompetitionID uint64          `gorm:"index:idx_competition_participant;not null" json:"competition_id"`
	ParticipantID uint64          `gorm:"index:idx_competition_participant;not null" json:"participant_id"`
	SubmitterID   uint64          `gorm:"not null" json:"submitter_id"` // user who uploaded, also for team entries
	Phase         SubmissionPhase `gorm:"size:10;not null" json:"phase"`

	ObjectKey string  `gorm:"size:200;not null" json:"-"`
	FileName  string  `gorm:"size:200;not null" json:"file_name"`
	FileSize  int64   `gorm:"not null" json:"file_size"`
	Score     float64 `gorm:"not null;default:0" json:"score"`

	ValidationStatus ValidationStatus `gorm:"not null;default:0" json:"validation_status"`
	ScoredAt         *time.Time       `json:"scored_at"`

	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Submission) TableName() string {
	return "noders_submission"
}

type SubmitPredictionParam struct {
	CompetitionCommonParam `json:"-"`

	FileName string `json:"-"`
	FileSize int64  `json:"-"`
	Content  []byte `json:"-"`
}

type SubmitPredictionResponse struct {
	SubmissionID   uint64          `json:"submission_id"`
	Phase          SubmissionPhase `json:"phase"`
	DailyRemaining int             `json:"daily_remaining"`
	TotalRemaining int             `json:"total_remaining"`
}

type GetLatestSubmissionParam struct {
	CompetitionCommonParam `json:"-"`
}

type GetLatestSubmissionResponse struct {
	Submission Submission `json:"submission"`
}

type GetSubmissionDownloadParam struct {
	CompetitionCommonParam `json:"-"`

	SubmissionID uint64 `form:"submission_id" binding:"required"`
}

type GetSubmissionDownloadResponse struct {
	DownloadURL string `json:"download_url"`
	ExpiresIn   int    `json:"expires_in"`
}

type GetSubmissionListParam struct {
	CompetitionCommonParam `json:"-"`

	Page     int `form:"page" binding:"required,min=1"`
	PageSize int `form:"page_size" binding:"required,min=10,max=100"`
}

type GetSubmissionListResponse struct {
	List     []Submission `json:"list"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

type GetQuotaParam struct {
	CompetitionCommonParam `json:"-"`
}

type GetQuotaResponse struct {
	DailyRemaining int `json:"daily_remaining"`
	TotalRemaining int `json:"total_remaining"`
}

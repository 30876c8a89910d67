package model

import "time"

type CompetitionType int8

const (
	CompetitionTypeThreePhase CompetitionType = 0 // registration -> public test -> ended
	CompetitionTypeFourPhase  CompetitionType = 1 // registration -> public test -> private test -> ended
)

type ParticipationType int8

const (
	ParticipationTypeIndividual ParticipationType = 0
	ParticipationTypeTeam       ParticipationType = 1
)

// ScoringMetric is bound at competition creation time. Its direction is fixed
// here and nowhere else; every sort goes through HigherIsBetter.
type ScoringMetric string

const (
	MetricF1        ScoringMetric = "f1"
	MetricAccuracy  ScoringMetric = "accuracy"
	MetricPrecision ScoringMetric = "precision"
	MetricRecall    ScoringMetric = "recall"
	MetricMAE       ScoringMetric = "mae"
	MetricRMSE      ScoringMetric = "rmse"
)

func (m ScoringMetric) Valid() bool {
	switch m {
	case MetricF1, MetricAccuracy, MetricPrecision, MetricRecall, MetricMAE, MetricRMSE:
		return true
	}
	return false
}

func (m ScoringMetric) HigherIsBetter() bool {
	switch m {
	case MetricMAE, MetricRMSE:
		return false
	default:
		return true
	}
}

// Phase is the lifecycle stage derived from the configured timestamps and the
// current time. It is never stored.
type Phase string

const (
	PhaseUpcoming     Phase = "upcoming"
	PhaseRegistration Phase = "registration"
	PhasePublicTest   Phase = "public_test"
	PhasePrivateTest  Phase = "private_test"
	PhaseEnded        Phase = "ended"
)

type Competition struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	CompetitionType   CompetitionType   `gorm:"not null" json:"competition_type"`
	ParticipationType ParticipationType `gorm:"not null" json:"participation_type"`
	ScoringMetric     ScoringMetric     `gorm:"size:20;not null" json:"scoring_metric"`

	RegistrationStart time.Time  `gorm:"not null" json:"registration_start"`
	RegistrationEnd   time.Time  `gorm:"not null" json:"registration_end"`
	PublicTestStart   time.Time  `gorm:"not null" json:"public_test_start"`
	PublicTestEnd     time.Time  `gorm:"not null" json:"public_test_end"`
	PrivateTestStart  *time.Time `json:"private_test_start"` // four-phase only
	PrivateTestEnd    *time.Time `json:"private_test_end"`   // four-phase only

	DailySubmissionLimit int `gorm:"not null;default:5" json:"daily_submission_limit"`
	TotalSubmissionLimit int `gorm:"not null;default:100" json:"total_submission_limit"`
	MaxFileSizeMB        int `gorm:"not null;default:50" json:"max_file_size_mb"`

	MinTeamSize int `gorm:"not null;default:1" json:"min_team_size"`
	MaxTeamSize int `gorm:"not null;default:1" json:"max_team_size"`

	CreatorID uint64    `gorm:"not null" json:"creator_id"`
	UpdaterID uint64    `gorm:"not null" json:"updater_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Competition) TableName() string {
	return "noders_competition"
}

type CreateCompetitionParam struct {
	CommonParam `json:"-"`

	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`

	CompetitionType   CompetitionType   `json:"competition_type" binding:"oneof=0 1"`
	ParticipationType ParticipationType `json:"participation_type" binding:"oneof=0 1"`
	ScoringMetric     ScoringMetric     `json:"scoring_metric" binding:"required,scoring_metric"`

	RegistrationStart time.Time  `json:"registration_start" binding:"required"`
	RegistrationEnd   time.Time  `json:"registration_end" binding:"required"`
	PublicTestStart   time.Time  `json:"public_test_start" binding:"required"`
	PublicTestEnd     time.Time  `json:"public_test_end" binding:"required"`
	PrivateTestStart  *time.Time `json:"private_test_start"`
	PrivateTestEnd    *time.Time `json:"private_test_end"`

	DailySubmissionLimit int `json:"daily_submission_limit" binding:"required,min=1"`
	TotalSubmissionLimit int `json:"total_submission_limit" binding:"required,min=1"`
	MaxFileSizeMB        int `json:"max_file_size_mb" binding:"required,min=1,max=1024"`

	MinTeamSize int `json:"min_team_size" binding:"omitempty,min=1"`
	MaxTeamSize int `json:"max_team_size" binding:"omitempty,min=1"`
}

type UpdateCompetitionParam struct {
	CommonParam `json:"-"`

	ID uint64 `json:"id" binding:"required"`

	Title       *string `json:"title"`
	Description *string `json:"description"`

	DailySubmissionLimit *int `json:"daily_submission_limit" binding:"omitempty,min=1"`
	TotalSubmissionLimit *int `json:"total_submission_limit" binding:"omitempty,min=1"`
	MaxFileSizeMB        *int `json:"max_file_size_mb" binding:"omitempty,min=1,max=1024"`
}

type GetCompetitionParam struct {
	CommonParam `json:"-"`

	CompetitionID uint64 `form:"competition_id" binding:"required"`
}

type CompetitionWithPhase struct {
	Competition
	Phase Phase `json:"phase"`
}

type GetCompetitionResponse struct {
	CompetitionWithPhase
}

type GetCompetitionListParam struct {
	CommonParam `json:"-"`

	Page     int `form:"page" binding:"required,min=1"`
	PageSize int `form:"page_size" binding:"required,min=10,max=100"`
}

type GetCompetitionListResponse struct {
	List     []CompetitionWithPhase `json:"list"`
	Total    int                    `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

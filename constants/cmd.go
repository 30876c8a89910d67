package constants

const (
	SignupPath         = "/Signup"
	LoginPath          = "/Login"
	GetProfilePath     = "/GetProfile"
	UpdatePasswordPath = "/UpdatePassword"
)

const (
	CreateCompetitionPath  = "/CreateCompetition"
	UpdateCompetitionPath  = "/UpdateCompetition"
	GetCompetitionPath     = "/GetCompetition"
	GetCompetitionListPath = "/GetCompetitionList"
)

const (
	CreateTeamPath       = "/CreateTeam"
	AddTeamMemberPath    = "/AddTeamMember"
	RemoveTeamMemberPath = "/RemoveTeamMember"
	GetTeamPath          = "/GetTeam"
)

const (
	RegisterCompetitionPath = "/RegisterCompetition"
	ReviewRegistrationPath  = "/ReviewRegistration"
	GetRegistrationListPath = "/GetRegistrationList"
)

const (
	SubmitPredictionPath      = "/SubmitPrediction"
	GetLatestSubmissionPath   = "/GetLatestSubmission"
	GetSubmissionListPath     = "/GetSubmissionList"
	GetSubmissionDownloadPath = "/GetSubmissionDownload"
	GetQuotaPath              = "/GetQuota"
)

const (
	GetLeaderboardPath     = "/GetLeaderboard"
	RefreshLeaderboardPath = "/RefreshLeaderboard"
	ExportLeaderboardPath  = "/ExportLeaderboard"
)

package constants

const (
	// LeaderboardCacheKey caches the serialized leaderboard per competition.
	LeaderboardCacheKey = "leaderboard:competition:%d"
	// SubmissionMutexKey serializes submission admission per participant and
	// competition.
	SubmissionMutexKey = "submission_mutex:competition:%d:participant:%d"
)

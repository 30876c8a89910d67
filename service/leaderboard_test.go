package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
)

func makeSubmission(id, participantID uint64, phase model.SubmissionPhase, score float64, submittedAt time.Time) model.Submission {
	return model.Submission{
		ID:            id,
		ParticipantID: participantID,
		Phase:         phase,
		Score:         score,
		SubmittedAt:   submittedAt,
	}
}

func TestBuildLeaderboardPublicOnly(t *testing.T) {
	c := threePhaseCompetition()
	c.ScoringMetric = model.MetricF1
	now := pubStart.Add(time.Hour)

	submissions := []model.Submission{
		makeSubmission(1, 100, model.SubmissionPhasePublic, 0.80, pubStart.Add(10*time.Minute)),
		makeSubmission(2, 100, model.SubmissionPhasePublic, 0.92, pubStart.Add(20*time.Minute)),
		makeSubmission(3, 200, model.SubmissionPhasePublic, 0.92, pubStart.Add(5*time.Minute)),
		makeSubmission(4, 300, model.SubmissionPhasePublic, 0.50, pubStart.Add(30*time.Minute)),
	}

	entries := BuildLeaderboard(c, submissions, now)
	require.Len(t, entries, 3)

	// 200 and 100 tie on 0.92; 200 submitted its best earlier.
	assert.Equal(t, uint64(200), entries[0].ParticipantID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, uint64(3), entries[0].BestPublicSubmissionID)

	assert.Equal(t, uint64(100), entries[1].ParticipantID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, uint64(2), entries[1].BestPublicSubmissionID)
	assert.Equal(t, 0.92, entries[1].DisplayScore)
	assert.Equal(t, 2, entries[1].SubmissionCount)

	assert.Equal(t, uint64(300), entries[2].ParticipantID)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestBuildLeaderboardLowerIsBetter(t *testing.T) {
	c := threePhaseCompetition()
	c.ScoringMetric = model.MetricMAE
	now := pubStart.Add(time.Hour)

	submissions := []model.Submission{
		makeSubmission(1, 100, model.SubmissionPhasePublic, 4.2, pubStart.Add(10*time.Minute)),
		makeSubmission(2, 100, model.SubmissionPhasePublic, 3.1, pubStart.Add(20*time.Minute)),
		makeSubmission(3, 200, model.SubmissionPhasePublic, 3.5, pubStart.Add(5*time.Minute)),
	}

	entries := BuildLeaderboard(c, submissions, now)
	require.Len(t, entries, 2)
	assert.Equal(t, uint64(100), entries[0].ParticipantID)
	assert.Equal(t, 3.1, entries[0].DisplayScore)
	assert.Equal(t, uint64(200), entries[1].ParticipantID)
}

func TestBuildLeaderboardCombinedPhase(t *testing.T) {
	c := fourPhaseCompetition()
	c.ScoringMetric = model.MetricAccuracy
	now := privStart.Add(time.Hour)

	submissions := []model.Submission{
		// 100 has both phases: bests 0.90 public, 0.80 private.
		makeSubmission(1, 100, model.SubmissionPhasePublic, 0.90, pubStart.Add(10*time.Minute)),
		makeSubmission(2, 100, model.SubmissionPhasePublic, 0.85, pubStart.Add(20*time.Minute)),
		makeSubmission(3, 100, model.SubmissionPhasePrivate, 0.80, privStart.Add(10*time.Minute)),
		// 200 has both phases: bests 0.70 public, 1.00 private.
		makeSubmission(4, 200, model.SubmissionPhasePublic, 0.70, pubStart.Add(15*time.Minute)),
		makeSubmission(5, 200, model.SubmissionPhasePrivate, 1.00, privStart.Add(5*time.Minute)),
		// 300 never submitted in the private phase and must not rank.
		makeSubmission(6, 300, model.SubmissionPhasePublic, 0.99, pubStart.Add(5*time.Minute)),
	}

	entries := BuildLeaderboard(c, submissions, now)
	require.Len(t, entries, 2)

	// Both display 0.85; 200's private best landed earlier so it wins the tie.
	assert.Equal(t, uint64(200), entries[0].ParticipantID)
	assert.InDelta(t, 0.85, entries[0].DisplayScore, 1e-9)
	assert.Equal(t, uint64(4), entries[0].BestPublicSubmissionID)
	assert.Equal(t, uint64(5), entries[0].BestPrivateSubmissionID)
	assert.Equal(t, 2, entries[0].SubmissionCount)

	assert.Equal(t, uint64(100), entries[1].ParticipantID)
	assert.InDelta(t, 0.85, entries[1].DisplayScore, 1e-9)
	assert.Equal(t, uint64(1), entries[1].BestPublicSubmissionID)
	assert.Equal(t, uint64(3), entries[1].BestPrivateSubmissionID)
	assert.Equal(t, 3, entries[1].SubmissionCount)
}

func TestBuildLeaderboardCombinedTieBreak(t *testing.T) {
	c := fourPhaseCompetition()
	c.ScoringMetric = model.MetricAccuracy
	now := privStart.Add(time.Hour)

	submissions := []model.Submission{
		makeSubmission(1, 100, model.SubmissionPhasePublic, 0.90, pubStart.Add(10*time.Minute)),
		makeSubmission(2, 100, model.SubmissionPhasePrivate, 0.80, privStart.Add(30*time.Minute)),
		makeSubmission(3, 200, model.SubmissionPhasePublic, 0.80, pubStart.Add(20*time.Minute)),
		makeSubmission(4, 200, model.SubmissionPhasePrivate, 0.90, privStart.Add(5*time.Minute)),
	}

	entries := BuildLeaderboard(c, submissions, now)
	require.Len(t, entries, 2)
	assert.Equal(t, uint64(200), entries[0].ParticipantID)
	assert.Equal(t, uint64(100), entries[1].ParticipantID)
}

func TestBuildLeaderboardBeforePrivateIgnoresPrivateRows(t *testing.T) {
	c := fourPhaseCompetition()
	c.ScoringMetric = model.MetricAccuracy
	now := pubStart.Add(time.Hour)

	submissions := []model.Submission{
		makeSubmission(1, 100, model.SubmissionPhasePublic, 0.60, pubStart.Add(10*time.Minute)),
		makeSubmission(2, 100, model.SubmissionPhasePrivate, 0.99, pubStart.Add(20*time.Minute)),
	}

	entries := BuildLeaderboard(c, submissions, now)
	require.Len(t, entries, 1)
	assert.Equal(t, 0.60, entries[0].DisplayScore)
	assert.Equal(t, 2, entries[0].SubmissionCount)
}

func TestBuildLeaderboardEmpty(t *testing.T) {
	entries := BuildLeaderboard(threePhaseCompetition(), nil, pubStart)
	assert.Empty(t, entries)
}

func TestBetterSubmission(t *testing.T) {
	early := makeSubmission(1, 1, model.SubmissionPhasePublic, 0.5, pubStart)
	late := makeSubmission(2, 1, model.SubmissionPhasePublic, 0.5, pubStart.Add(time.Hour))
	higher := makeSubmission(3, 1, model.SubmissionPhasePublic, 0.9, pubStart.Add(2*time.Hour))

	assert.True(t, betterSubmission(&early, nil, true))
	assert.True(t, betterSubmission(&higher, &early, true))
	assert.False(t, betterSubmission(&higher, &early, false))
	assert.True(t, betterSubmission(&early, &late, true), "equal scores keep the earlier submission")
	assert.False(t, betterSubmission(&late, &early, true))
}

package csv

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
)

func TestExport(t *testing.T) {
	leaderboard := &model.GetLeaderboardResponse{
		CompetitionID: 1,
		Phase:         model.PhasePublicTest,
		Entries: []model.LeaderboardEntry{
			{
				Rank:            1,
				ParticipantID:   200,
				DisplayScore:    0.92,
				SubmissionCount: 3,
				BestSubmittedAt: time.Date(2026, 3, 12, 9, 30, 0, 0, time.UTC),
			},
			{
				Rank:            2,
				ParticipantID:   100,
				DisplayScore:    0.87,
				SubmissionCount: 1,
				BestSubmittedAt: time.Date(2026, 3, 13, 14, 0, 0, 0, time.UTC),
			},
		},
	}

	var buf bytes.Buffer
	err := NewCSVLeaderboardExporter(nil).Export(context.Background(), leaderboard, &buf)
	require.NoError(t, err)

	want := "rank,participant_id,score,submissions,best_submitted_at\n" +
		"1,200,0.920000,3,2026-03-12 09:30:00\n" +
		"2,100,0.870000,1,2026-03-13 14:00:00\n"
	assert.Equal(t, want, buf.String())
}

func TestExportEmptyLeaderboard(t *testing.T) {
	var buf bytes.Buffer
	err := NewCSVLeaderboardExporter(nil).Export(context.Background(), &model.GetLeaderboardResponse{}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "rank,participant_id,score,submissions,best_submitted_at\n", buf.String())
}

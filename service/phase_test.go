package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
)

var (
	regStart  = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	regEnd    = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	pubStart  = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	pubEnd    = time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	privStart = time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC)
	privEnd   = time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC)
)

func threePhaseCompetition() *model.Competition {
	return &model.Competition{
		CompetitionType:   model.CompetitionTypeThreePhase,
		RegistrationStart: regStart,
		RegistrationEnd:   regEnd,
		PublicTestStart:   pubStart,
		PublicTestEnd:     pubEnd,
	}
}

func fourPhaseCompetition() *model.Competition {
	c := threePhaseCompetition()
	c.CompetitionType = model.CompetitionTypeFourPhase
	c.PrivateTestStart = &privStart
	c.PrivateTestEnd = &privEnd
	return c
}

func TestResolvePhase(t *testing.T) {
	testCases := []struct {
		name        string
		competition *model.Competition
		now         time.Time
		want        model.Phase
	}{
		{
			name:        "before registration start",
			competition: threePhaseCompetition(),
			now:         regStart.Add(-time.Second),
			want:        model.PhaseUpcoming,
		},
		{
			name:        "registration start is inclusive",
			competition: threePhaseCompetition(),
			now:         regStart,
			want:        model.PhaseRegistration,
		},
		{
			name:        "mid registration",
			competition: threePhaseCompetition(),
			now:         regStart.Add(48 * time.Hour),
			want:        model.PhaseRegistration,
		},
		{
			name:        "gap between registration end and public test start counts as public test",
			competition: threePhaseCompetition(),
			now:         regEnd.Add(time.Hour),
			want:        model.PhasePublicTest,
		},
		{
			name:        "mid public test",
			competition: threePhaseCompetition(),
			now:         pubStart.Add(time.Hour),
			want:        model.PhasePublicTest,
		},
		{
			name:        "three phase ends at public test end",
			competition: threePhaseCompetition(),
			now:         pubEnd,
			want:        model.PhaseEnded,
		},
		{
			name:        "four phase public test end enters private test",
			competition: fourPhaseCompetition(),
			now:         pubEnd,
			want:        model.PhasePrivateTest,
		},
		{
			name:        "mid private test",
			competition: fourPhaseCompetition(),
			now:         privStart.Add(time.Hour),
			want:        model.PhasePrivateTest,
		},
		{
			name:        "four phase ends at private test end",
			competition: fourPhaseCompetition(),
			now:         privEnd,
			want:        model.PhaseEnded,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolvePhase(tc.competition, tc.now))
		})
	}
}

func TestSubmissionPhaseFor(t *testing.T) {
	testCases := []struct {
		name        string
		competition *model.Competition
		now         time.Time
		wantPhase   model.SubmissionPhase
		wantOpen    bool
	}{
		{
			name:        "registration window rejects submissions",
			competition: threePhaseCompetition(),
			now:         regStart.Add(time.Hour),
			wantOpen:    false,
		},
		{
			name:        "public test window stamps public",
			competition: threePhaseCompetition(),
			now:         pubStart.Add(time.Hour),
			wantPhase:   model.SubmissionPhasePublic,
			wantOpen:    true,
		},
		{
			name:        "private test window stamps private",
			competition: fourPhaseCompetition(),
			now:         privStart.Add(time.Hour),
			wantPhase:   model.SubmissionPhasePrivate,
			wantOpen:    true,
		},
		{
			name:        "ended rejects submissions",
			competition: fourPhaseCompetition(),
			now:         privEnd.Add(time.Hour),
			wantOpen:    false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			phase, open := SubmissionPhaseFor(tc.competition, tc.now)
			assert.Equal(t, tc.wantOpen, open)
			assert.Equal(t, tc.wantPhase, phase)
		})
	}
}

func TestPrivatePhaseStarted(t *testing.T) {
	assert.False(t, PrivatePhaseStarted(threePhaseCompetition(), privEnd))

	c := fourPhaseCompetition()
	assert.False(t, PrivatePhaseStarted(c, privStart.Add(-time.Second)))
	assert.True(t, PrivatePhaseStarted(c, privStart))
	assert.True(t, PrivatePhaseStarted(c, privEnd.Add(time.Hour)))
}

func TestDayStart(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	now := time.Date(2026, 3, 15, 23, 59, 59, 500, loc)
	got := DayStart(now)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

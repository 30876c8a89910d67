package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/errs"
)

func TestEvaluateAddMember(t *testing.T) {
	caps := []teamRegistrationCap{
		{CompetitionID: 10, MinTeamSize: 2, MaxTeamSize: 4},
		{CompetitionID: 11, MinTeamSize: 1, MaxTeamSize: 3},
	}

	testCases := []struct {
		name            string
		leaderID        uint64
		operatorID      uint64
		memberIDs       []uint64
		candidateID     uint64
		caps            []teamRegistrationCap
		candidateActive map[uint64]struct{}
		wantCode        errs.Code
	}{
		{
			name:        "ok with room to spare",
			leaderID:    1,
			operatorID:  1,
			memberIDs:   []uint64{1, 2},
			candidateID: 3,
			caps:        caps,
		},
		{
			name:        "ok when team has no registrations",
			leaderID:    1,
			operatorID:  1,
			memberIDs:   []uint64{1, 2, 3, 4, 5},
			candidateID: 6,
		},
		{
			name:        "operator is not the leader",
			leaderID:    1,
			operatorID:  2,
			memberIDs:   []uint64{1, 2},
			candidateID: 3,
			caps:        caps,
			wantCode:    errs.CodeNotTeamLeader,
		},
		{
			name:        "operator is not even a member",
			leaderID:    1,
			operatorID:  9,
			memberIDs:   []uint64{1, 2},
			candidateID: 9,
			wantCode:    errs.CodeNotTeamLeader,
		},
		{
			name:        "candidate already a member",
			leaderID:    1,
			operatorID:  1,
			memberIDs:   []uint64{1, 2, 3},
			candidateID: 2,
			caps:        caps,
			wantCode:    errs.CodeDuplicate,
		},
		{
			name:        "would exceed the smallest registered cap",
			leaderID:    1,
			operatorID:  1,
			memberIDs:   []uint64{1, 2, 3},
			candidateID: 4,
			caps:        caps,
			wantCode:    errs.CodeTeamSizeViolation,
		},
		{
			name:            "candidate already competes elsewhere",
			leaderID:        1,
			operatorID:      1,
			memberIDs:       []uint64{1, 2},
			candidateID:     3,
			caps:            caps,
			candidateActive: map[uint64]struct{}{10: {}},
			wantCode:        errs.CodeTeamConflict,
		},
		{
			name:            "activity in an unrelated competition is fine",
			leaderID:        1,
			operatorID:      1,
			memberIDs:       []uint64{1, 2},
			candidateID:     3,
			caps:            caps,
			candidateActive: map[uint64]struct{}{99: {}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := evaluateAddMember(tc.leaderID, tc.operatorID, tc.memberIDs, tc.candidateID, tc.caps, tc.candidateActive)
			if tc.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			de, ok := errs.AsDomain(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantCode, de.Code)
		})
	}
}

func TestEvaluateRemoveMember(t *testing.T) {
	caps := []teamRegistrationCap{
		{CompetitionID: 10, MinTeamSize: 3, MaxTeamSize: 5},
	}

	testCases := []struct {
		name       string
		leaderID   uint64
		operatorID uint64
		memberID   uint64
		memberIDs  []uint64
		caps       []teamRegistrationCap
		wantCode   errs.Code
	}{
		{
			name:       "ok above the minimum",
			leaderID:   1,
			operatorID: 1,
			memberID:   4,
			memberIDs:  []uint64{1, 2, 3, 4},
			caps:       caps,
		},
		{
			name:       "operator is not the leader",
			leaderID:   1,
			operatorID: 2,
			memberID:   4,
			memberIDs:  []uint64{1, 2, 3, 4},
			caps:       caps,
			wantCode:   errs.CodeNotTeamLeader,
		},
		{
			name:       "a member cannot remove itself",
			leaderID:   1,
			operatorID: 4,
			memberID:   4,
			memberIDs:  []uint64{1, 2, 3, 4},
			caps:       caps,
			wantCode:   errs.CodeNotTeamLeader,
		},
		{
			name:       "leader cannot be removed",
			leaderID:   1,
			operatorID: 1,
			memberID:   1,
			memberIDs:  []uint64{1, 2, 3, 4},
			caps:       caps,
			wantCode:   errs.CodeLeaderRemovalForbidden,
		},
		{
			name:       "target is not a member",
			leaderID:   1,
			operatorID: 1,
			memberID:   9,
			memberIDs:  []uint64{1, 2, 3, 4},
			caps:       caps,
			wantCode:   errs.CodeMalformedInput,
		},
		{
			name:       "would fall below the registered minimum",
			leaderID:   1,
			operatorID: 1,
			memberID:   3,
			memberIDs:  []uint64{1, 2, 3},
			caps:       caps,
			wantCode:   errs.CodeTeamSizeViolation,
		},
		{
			name:       "no registrations means no minimum",
			leaderID:   1,
			operatorID: 1,
			memberID:   2,
			memberIDs:  []uint64{1, 2},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := evaluateRemoveMember(tc.leaderID, tc.operatorID, tc.memberID, tc.memberIDs, tc.caps)
			if tc.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			de, ok := errs.AsDomain(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantCode, de.Code)
		})
	}
}

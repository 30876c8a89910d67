package errs

import (
	"errors"
	"fmt"
)

// Code identifies an expected, recoverable rejection. Anything not covered by
// a code is treated as an internal failure by the web layer.
type Code string

const (
	CodeNotEligible            Code = "not_eligible"
	CodeWrongPhase             Code = "wrong_phase"
	CodeQuotaExceeded          Code = "quota_exceeded"
	CodeMalformedInput         Code = "malformed_input"
	CodeTeamSizeViolation      Code = "team_size_violation"
	CodeTeamConflict           Code = "team_conflict"
	CodeLeaderRemovalForbidden Code = "leader_removal_forbidden"
	CodeNotTeamLeader          Code = "not_team_leader"
	CodeDuplicate              Code = "duplicate"
)

type DomainError struct {
	Code    Code
	Message string

	// CompetitionID and Limit name the offending competition/limit so the
	// caller can render an actionable message. Zero when not applicable.
	CompetitionID uint64
	Limit         int
}

func (e *DomainError) Error() string {
	if e.CompetitionID != 0 {
		return fmt.Sprintf("%s: %s (competition %d)", e.Code, e.Message, e.CompetitionID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsDomain unwraps err into a DomainError if one is in the chain.
func AsDomain(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

func NotEligible(competitionID uint64) *DomainError {
	return &DomainError{
		Code:          CodeNotEligible,
		Message:       "no approved registration for this competition",
		CompetitionID: competitionID,
	}
}

func WrongPhase(competitionID uint64, phase string) *DomainError {
	return &DomainError{
		Code:          CodeWrongPhase,
		Message:       fmt.Sprintf("submissions are closed, competition is in %s phase", phase),
		CompetitionID: competitionID,
	}
}

func QuotaExceeded(competitionID uint64, limit int, window string) *DomainError {
	return &DomainError{
		Code:          CodeQuotaExceeded,
		Message:       fmt.Sprintf("%s submission limit of %d reached", window, limit),
		CompetitionID: competitionID,
		Limit:         limit,
	}
}

func MalformedInput(msg string) *DomainError {
	return &DomainError{
		Code:    CodeMalformedInput,
		Message: msg,
	}
}

func TeamSizeViolation(competitionID uint64, limit int, msg string) *DomainError {
	return &DomainError{
		Code:          CodeTeamSizeViolation,
		Message:       msg,
		CompetitionID: competitionID,
		Limit:         limit,
	}
}

func TeamConflict(competitionID uint64, userID uint64) *DomainError {
	return &DomainError{
		Code:          CodeTeamConflict,
		Message:       fmt.Sprintf("user %d already competes in this competition with another team", userID),
		CompetitionID: competitionID,
	}
}

func LeaderRemovalForbidden() *DomainError {
	return &DomainError{
		Code:    CodeLeaderRemovalForbidden,
		Message: "the team leader cannot be removed",
	}
}

func NotTeamLeader() *DomainError {
	return &DomainError{
		Code:    CodeNotTeamLeader,
		Message: "only the team leader may change the roster",
	}
}

func Duplicate(msg string) *DomainError {
	return &DomainError{
		Code:    CodeDuplicate,
		Message: msg,
	}
}

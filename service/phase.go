package service

import (
	"time"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
)

// Clock abstracts wall-clock reads so phase resolution and quota day
// boundaries stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func NewSystemClock() Clock {
	return SystemClock{}
}

// ResolvePhase maps the configured timestamps and now to the current phase.
// Intervals are half-open, evaluated in order, first match wins. The result
// must be recomputed on every call; nothing here is cached.
func ResolvePhase(c *model.Competition, now time.Time) model.Phase {
	switch {
	case now.Before(c.RegistrationStart):
		return model.PhaseUpcoming
	case now.Before(c.RegistrationEnd):
		return model.PhaseRegistration
	case now.Before(c.PublicTestEnd):
		return model.PhasePublicTest
	case c.CompetitionType == model.CompetitionTypeFourPhase &&
		c.PrivateTestEnd != nil && now.Before(*c.PrivateTestEnd):
		return model.PhasePrivateTest
	default:
		return model.PhaseEnded
	}
}

// SubmissionPhaseFor returns the phase tag to stamp on a submission admitted
// now, or false when the competition is not accepting submissions.
func SubmissionPhaseFor(c *model.Competition, now time.Time) (model.SubmissionPhase, bool) {
	switch ResolvePhase(c, now) {
	case model.PhasePublicTest:
		return model.SubmissionPhasePublic, true
	case model.PhasePrivateTest:
		return model.SubmissionPhasePrivate, true
	default:
		return "", false
	}
}

// PrivatePhaseStarted reports whether a four-phase competition has reached its
// private test window. Three-phase competitions never do.
func PrivatePhaseStarted(c *model.Competition, now time.Time) bool {
	if c.CompetitionType != model.CompetitionTypeFourPhase || c.PrivateTestStart == nil {
		return false
	}
	return !now.Before(*c.PrivateTestStart)
}

// DayStart returns the server-local midnight of now. Callers compute it once
// per admission attempt so the count query and the insert agree on the day
// boundary.
func DayStart(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
}

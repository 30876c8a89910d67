package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/constants"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service/exporter/factory"
)

type LeaderboardService interface {
	// GetLeaderboard returns the current leaderboard, from cache when fresh
	GetLeaderboard(ctx context.Context, competitionID uint64) (*model.GetLeaderboardResponse, error)
	// RefreshLeaderboard recomputes and caches the leaderboard
	RefreshLeaderboard(ctx context.Context, competitionID uint64) (*model.GetLeaderboardResponse, error)
	// Export streams the leaderboard in the requested format
	Export(ctx context.Context, competitionID uint64, format factory.LeaderboardExporterType, writer io.Writer) error
}

type LeaderboardServiceImpl struct {
	db              *gorm.DB
	rdb             redis.Cmdable
	clock           Clock
	log             loggerv2.Logger
	exporterFactory *factory.LeaderboardExporterFactory
	cacheTTL        time.Duration
}

var _ LeaderboardService = (*LeaderboardServiceImpl)(nil)

func NewLeaderboardService(db *gorm.DB, rdb redis.Cmdable, clock Clock, log loggerv2.Logger, cacheTTL time.Duration) LeaderboardService {
	return &LeaderboardServiceImpl{
		db:              db,
		rdb:             rdb,
		clock:           clock,
		log:             log,
		exporterFactory: factory.NewLeaderboardExporterFactory(log),
		cacheTTL:        cacheTTL,
	}
}

func (s *LeaderboardServiceImpl) GetLeaderboard(ctx context.Context, competitionID uint64) (*model.GetLeaderboardResponse, error) {
	cacheKey := fmt.Sprintf(constants.LeaderboardCacheKey, competitionID)

	cached, err := s.rdb.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var resp model.GetLeaderboardResponse
		if err = json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
		s.log.WarnContext(ctx, "unmarshal cached leaderboard failed", logger.Error(err))
	} else if err != redis.Nil {
		s.log.WarnContext(ctx, "get cached leaderboard failed", logger.Error(err))
	}

	return s.RefreshLeaderboard(ctx, competitionID)
}

func (s *LeaderboardServiceImpl) RefreshLeaderboard(ctx context.Context, competitionID uint64) (*model.GetLeaderboardResponse, error) {
	var competition model.Competition
	err := s.db.WithContext(ctx).
		Where("id = ?", competitionID).
		First(&competition).Error
	if err != nil {
		return nil, fmt.Errorf("RefreshLeaderboard failed at select from competition: %w", err)
	}

	// Submitted-at ascending keeps the earliest-submission tie-break stable
	// without a secondary sort inside the aggregation.
	submissions := make([]model.Submission, 0)
	err = s.db.WithContext(ctx).
		Where("competition_id = ?", competitionID).
		Where("validation_status = ?", model.ValidationStatusValid).
		Where("scored_at IS NOT NULL").
		Order("submitted_at asc").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("RefreshLeaderboard failed at select from submission: %w", err)
	}

	now := s.clock.Now()
	resp := &model.GetLeaderboardResponse{
		CompetitionID: competitionID,
		Phase:         ResolvePhase(&competition, now),
		Entries:       BuildLeaderboard(&competition, submissions, now),
		GeneratedAt:   now,
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("RefreshLeaderboard failed at marshal leaderboard: %w", err)
	}
	err = s.rdb.Set(ctx, fmt.Sprintf(constants.LeaderboardCacheKey, competitionID), payload, s.cacheTTL).Err()
	if err != nil {
		s.log.WarnContext(ctx, "cache leaderboard failed",
			logger.Error(err),
			logger.Uint64("competition_id", competitionID))
	}

	return resp, nil
}

func (s *LeaderboardServiceImpl) Export(ctx context.Context, competitionID uint64, format factory.LeaderboardExporterType, writer io.Writer) error {
	exp := s.exporterFactory.GetLeaderboardExporter(format)
	if exp == nil {
		return fmt.Errorf("get leaderboard exporter failed: exporter not found")
	}

	resp, err := s.GetLeaderboard(ctx, competitionID)
	if err != nil {
		return err
	}
	return exp.Export(ctx, resp, writer)
}

// BuildLeaderboard derives the ranked leaderboard from a snapshot of valid
// submissions. It is a pure function of its arguments: safe to recompute
// repeatedly and concurrently with new submissions arriving.
//
// Before the private phase starts (and always for three-phase competitions)
// only public submissions rank. Once the private phase has started, a
// participant ranks only with at least one valid submission in each phase;
// the display score is the mean of the per-phase bests.
func BuildLeaderboard(c *model.Competition, submissions []model.Submission, now time.Time) []model.LeaderboardEntry {
	higher := c.ScoringMetric.HigherIsBetter()

	type aggregate struct {
		bestPublic  *model.Submission
		bestPrivate *model.Submission
		count       int
	}

	byParticipant := make(map[uint64]*aggregate)
	order := make([]uint64, 0)
	for i := range submissions {
		sub := &submissions[i]
		agg, ok := byParticipant[sub.ParticipantID]
		if !ok {
			agg = &aggregate{}
			byParticipant[sub.ParticipantID] = agg
			order = append(order, sub.ParticipantID)
		}
		agg.count++
		switch sub.Phase {
		case model.SubmissionPhasePublic:
			if betterSubmission(sub, agg.bestPublic, higher) {
				agg.bestPublic = sub
			}
		case model.SubmissionPhasePrivate:
			if betterSubmission(sub, agg.bestPrivate, higher) {
				agg.bestPrivate = sub
			}
		}
	}

	combined := PrivatePhaseStarted(c, now)

	entries := make([]model.LeaderboardEntry, 0, len(byParticipant))
	for _, participantID := range order {
		agg := byParticipant[participantID]
		if combined {
			// Partial participants are excluded entirely so nobody ranks on
			// an incomplete attempt.
			if agg.bestPublic == nil || agg.bestPrivate == nil {
				continue
			}
			entries = append(entries, model.LeaderboardEntry{
				ParticipantID:           participantID,
				DisplayScore:            (agg.bestPublic.Score + agg.bestPrivate.Score) / 2,
				BestPublicSubmissionID:  agg.bestPublic.ID,
				BestPrivateSubmissionID: agg.bestPrivate.ID,
				BestSubmittedAt:         agg.bestPrivate.SubmittedAt,
				SubmissionCount:         agg.count,
			})
		} else {
			if agg.bestPublic == nil {
				continue
			}
			entries = append(entries, model.LeaderboardEntry{
				ParticipantID:          participantID,
				DisplayScore:           agg.bestPublic.Score,
				BestPublicSubmissionID: agg.bestPublic.ID,
				BestSubmittedAt:        agg.bestPublic.SubmittedAt,
				SubmissionCount:        agg.count,
			})
		}
	}

	// Ties on the display score break by the earliest contributing
	// submission: public best before the private phase, the earliest private
	// best afterwards.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].DisplayScore != entries[j].DisplayScore {
			if higher {
				return entries[i].DisplayScore > entries[j].DisplayScore
			}
			return entries[i].DisplayScore < entries[j].DisplayScore
		}
		return entries[i].BestSubmittedAt.Before(entries[j].BestSubmittedAt)
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// betterSubmission reports whether candidate beats current. A nil current
// always loses; equal scores keep the earlier submission.
func betterSubmission(candidate, current *model.Submission, higherIsBetter bool) bool {
	if current == nil {
		return true
	}
	if candidate.Score == current.Score {
		return candidate.SubmittedAt.Before(current.SubmittedAt)
	}
	if higherIsBetter {
		return candidate.Score > current.Score
	}
	return candidate.Score < current.Score
}

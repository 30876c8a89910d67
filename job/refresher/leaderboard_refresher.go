package refresher

import (
	"context"
	"fmt"
	"time"

	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service"
)

// LeaderboardRefresher periodically recomputes the cached leaderboards of
// competitions currently inside a test window, so readers mostly hit a warm
// cache even when nobody submits.
type LeaderboardRefresher struct {
	db             *gorm.DB
	leaderboardSvc service.LeaderboardService
	log            loggerv2.Logger
}

func NewLeaderboardRefresher(db *gorm.DB, leaderboardSvc service.LeaderboardService, log loggerv2.Logger) *LeaderboardRefresher {
	return &LeaderboardRefresher{
		db:             db,
		leaderboardSvc: leaderboardSvc,
		log:            log,
	}
}

func (r *LeaderboardRefresher) RunRefresh(ctx context.Context) error {
	now := time.Now()

	competitionIDs := make([]uint64, 0)
	err := r.db.WithContext(ctx).Model(&model.Competition{}).
		Where("public_test_start <= ?", now).
		Where("public_test_end > ? OR (private_test_end IS NOT NULL AND private_test_end > ?)", now, now).
		Pluck("id", &competitionIDs).Error
	if err != nil {
		return fmt.Errorf("RunRefresh failed at select from competition: %w", err)
	}

	var failed int
	for _, competitionID := range competitionIDs {
		if _, err = r.leaderboardSvc.RefreshLeaderboard(ctx, competitionID); err != nil {
			failed++
			r.log.ErrorContext(ctx, "refresh leaderboard failed",
				logger.Error(err),
				logger.Uint64("competition_id", competitionID))
		}
	}

	r.log.InfoContext(ctx, "leaderboard refresh completed",
		logger.Int("total", len(competitionIDs)),
		logger.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("RunRefresh failed for %d of %d competitions", failed, len(competitionIDs))
	}
	return nil
}

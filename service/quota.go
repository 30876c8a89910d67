package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
)

type QuotaStatus struct {
	DailyRemaining int
	TotalRemaining int
}

func (q QuotaStatus) Exhausted() bool {
	return q.DailyRemaining <= 0 || q.TotalRemaining <= 0
}

type QuotaService interface {
	// Remaining computes the participant's submission allowance for the
	// competition. Only valid submissions count. dayStart is supplied by the
	// caller so the daily count and the subsequent insert share one boundary.
	Remaining(ctx context.Context, c *model.Competition, participantID uint64, dayStart time.Time) (QuotaStatus, error)
}

type QuotaServiceImpl struct {
	db *gorm.DB
}

var _ QuotaService = (*QuotaServiceImpl)(nil)

func NewQuotaService(db *gorm.DB) QuotaService {
	return &QuotaServiceImpl{db: db}
}

func (s *QuotaServiceImpl) Remaining(ctx context.Context, c *model.Competition, participantID uint64, dayStart time.Time) (QuotaStatus, error) {
	var today, total int64

	base := s.db.WithContext(ctx).Model(&model.Submission{}).
		Where("competition_id = ?", c.ID).
		Where("participant_id = ?", participantID).
		Where("validation_status = ?", model.ValidationStatusValid)

	err := base.Session(&gorm.Session{}).Count(&total).Error
	if err != nil {
		return QuotaStatus{}, fmt.Errorf("Remaining failed at count submissions: %w", err)
	}

	err = base.Session(&gorm.Session{}).
		Where("submitted_at >= ?", dayStart).
		Count(&today).Error
	if err != nil {
		return QuotaStatus{}, fmt.Errorf("Remaining failed at count submissions since day start: %w", err)
	}

	return computeQuota(c.DailySubmissionLimit, c.TotalSubmissionLimit, int(today), int(total)), nil
}

// computeQuota never returns a negative allowance even when a race let the
// counts overshoot a limit.
func computeQuota(dailyLimit, totalLimit, today, total int) QuotaStatus {
	return QuotaStatus{
		DailyRemaining: max(0, dailyLimit-today),
		TotalRemaining: max(0, totalLimit-total),
	}
}

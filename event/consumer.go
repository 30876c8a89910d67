package event

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/redis/go-redis/v9"
	"github.com/to404hanga/pkg404/gotools/retry"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/constants"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
)

// ScoreResultConsumer applies scorer verdicts to submission rows. It is the
// only writer of scores; a submission is scored at most once.
type ScoreResultConsumer struct {
	db    *gorm.DB
	rdb   redis.Cmdable
	group sarama.ConsumerGroup
	log   loggerv2.Logger
}

func NewScoreResultConsumer(db *gorm.DB, rdb redis.Cmdable, group sarama.ConsumerGroup, log loggerv2.Logger) *ScoreResultConsumer {
	return &ScoreResultConsumer{
		db:    db,
		rdb:   rdb,
		group: group,
		log:   log,
	}
}

// Start consumes until ctx is cancelled.
func (c *ScoreResultConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.group.Consume(ctx, []string{ScoreResultTopic}, c)
			if err != nil {
				c.log.ErrorContext(ctx, "score result consume loop exited", logger.Error(err))
			}
			if ctx.Err() != nil {
				return
			}
			time.Sleep(time.Second)
		}
	}()
}

func (c *ScoreResultConsumer) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (c *ScoreResultConsumer) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (c *ScoreResultConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		var result ScoreResultMessage
		if err := result.Unmarshal(msg.Value); err != nil {
			c.log.ErrorContext(session.Context(), "unmarshal score result failed", logger.Error(err))
			session.MarkMessage(msg, "")
			continue
		}

		if err := c.applyResult(session.Context(), &result); err != nil {
			c.log.ErrorContext(session.Context(), "apply score result failed",
				logger.Error(err),
				logger.Uint64("submission_id", result.SubmissionID))
			// leave unmarked so the claim is redelivered
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}

func (c *ScoreResultConsumer) applyResult(ctx context.Context, result *ScoreResultMessage) error {
	var submission model.Submission
	err := c.db.WithContext(ctx).
		Where("id = ?", result.SubmissionID).
		First(&submission).Error
	if err != nil {
		return fmt.Errorf("applyResult failed at select from submission: %w", err)
	}

	status := model.ValidationStatusValid
	if !result.Valid {
		status = model.ValidationStatusInvalid
	}

	res := c.db.WithContext(ctx).Model(&model.Submission{}).
		Where("id = ?", result.SubmissionID).
		Where("scored_at IS NULL").
		Updates(map[string]any{
			"score":             result.Score,
			"validation_status": status,
			"scored_at":         time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("applyResult failed at update submission: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// already scored, duplicate delivery
		return nil
	}

	err = retry.Do(ctx, func() error {
		return c.rdb.Del(ctx, fmt.Sprintf(constants.LeaderboardCacheKey, submission.CompetitionID)).Err()
	})
	if err != nil {
		c.log.WarnContext(ctx, "invalidate leaderboard cache failed",
			logger.Error(err),
			logger.Uint64("competition_id", submission.CompetitionID))
	}
	return nil
}

package cleaner

import (
	"context"
	"fmt"
	"time"

	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/pkg/filestore"
)

// ArtifactCleaner removes the stored prediction files of invalid submissions
// once they age out. The submission rows stay for audit; only the objects go.
type ArtifactCleaner struct {
	db        *gorm.DB
	fileStore *filestore.MinIOService
	log       loggerv2.Logger
	bucket    string
	timeRange time.Duration
}

func NewArtifactCleaner(db *gorm.DB, fileStore *filestore.MinIOService, log loggerv2.Logger, bucket string, timeRange time.Duration) *ArtifactCleaner {
	return &ArtifactCleaner{
		db:        db,
		fileStore: fileStore,
		log:       log,
		bucket:    bucket,
		timeRange: timeRange,
	}
}

func (c *ArtifactCleaner) RunCleanup(ctx context.Context) error {
	c.log.InfoContext(ctx, "Starting artifact cleanup job")

	cutoff := time.Now().Add(-c.timeRange)

	submissions := make([]model.Submission, 0)
	err := c.db.WithContext(ctx).
		Where("validation_status = ?", model.ValidationStatusInvalid).
		Where("submitted_at < ?", cutoff).
		Where("object_key <> ''").
		Find(&submissions).Error
	if err != nil {
		return fmt.Errorf("RunCleanup failed at select from submission: %w", err)
	}

	var deleted, errored int
	for _, submission := range submissions {
		if err = c.fileStore.RemoveObject(ctx, c.bucket, submission.ObjectKey); err != nil {
			errored++
			c.log.ErrorContext(ctx, "remove stored object failed",
				logger.Error(err),
				logger.Uint64("submission_id", submission.ID),
				logger.String("object_key", submission.ObjectKey))
			continue
		}
		err = c.db.WithContext(ctx).Model(&model.Submission{}).
			Where("id = ?", submission.ID).
			UpdateColumn("object_key", "").Error
		if err != nil {
			errored++
			c.log.ErrorContext(ctx, "clear object key failed",
				logger.Error(err),
				logger.Uint64("submission_id", submission.ID))
			continue
		}
		deleted++
	}

	c.log.InfoContext(ctx, "Artifact cleanup completed",
		logger.Int("deleted", deleted),
		logger.Int("errored", errored))
	if errored > 0 {
		return fmt.Errorf("RunCleanup failed for %d of %d artifacts", errored, len(submissions))
	}
	return nil
}

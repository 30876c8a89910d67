package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/to404hanga/pkg404/gotools/retry"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/constants"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/errs"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/event"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/pkg/filestore"
)

const (
	admissionMutexTTL = 10 * time.Second

	downloadURLTTLSeconds = 600
)

type SubmissionService interface {
	// SubmitPrediction runs the full admission sequence for one attempt:
	// registration, phase, quota, file validation, store, insert, publish.
	SubmitPrediction(ctx context.Context, param *model.SubmitPredictionParam) (*model.SubmitPredictionResponse, error)
	// GetLatestSubmission returns the caller's most recent submission
	GetLatestSubmission(ctx context.Context, competitionID, userID uint64) (*model.Submission, error)
	// GetSubmissionList returns a page of the caller's submissions
	GetSubmissionList(ctx context.Context, param *model.GetSubmissionListParam) ([]model.Submission, int, error)
	// GetDownloadURL returns a short-lived link to the stored file of one of
	// the caller's own submissions
	GetDownloadURL(ctx context.Context, param *model.GetSubmissionDownloadParam) (*model.GetSubmissionDownloadResponse, error)
	// GetQuota reports the caller's remaining allowance
	GetQuota(ctx context.Context, competitionID, userID uint64) (*model.GetQuotaResponse, error)
	// ResolveParticipant maps the calling user to the competition's
	// participant identity (the user itself, or the user's registered team)
	ResolveParticipant(ctx context.Context, c *model.Competition, userID uint64) (uint64, model.ParticipantType, error)
}

type SubmissionServiceImpl struct {
	db        *gorm.DB
	rdb       redis.Cmdable
	quotaSvc  QuotaService
	regSvc    RegistrationService
	teamSvc   TeamService
	compSvc   CompetitionService
	fileStore *filestore.MinIOService
	producer  event.Producer
	clock     Clock
	log       loggerv2.Logger
	bucket    string
}

var _ SubmissionService = (*SubmissionServiceImpl)(nil)

func NewSubmissionService(
	db *gorm.DB,
	rdb redis.Cmdable,
	quotaSvc QuotaService,
	regSvc RegistrationService,
	teamSvc TeamService,
	compSvc CompetitionService,
	fileStore *filestore.MinIOService,
	producer event.Producer,
	clock Clock,
	log loggerv2.Logger,
	bucket string,
) SubmissionService {
	return &SubmissionServiceImpl{
		db:        db,
		rdb:       rdb,
		quotaSvc:  quotaSvc,
		regSvc:    regSvc,
		teamSvc:   teamSvc,
		compSvc:   compSvc,
		fileStore: fileStore,
		producer:  producer,
		clock:     clock,
		log:       log,
		bucket:    bucket,
	}
}

func (s *SubmissionServiceImpl) SubmitPrediction(ctx context.Context, param *model.SubmitPredictionParam) (*model.SubmitPredictionResponse, error) {
	competition, err := s.compSvc.GetCompetition(ctx, param.CompetitionID)
	if err != nil {
		return nil, err
	}

	participantID, participantType, err := s.ResolveParticipant(ctx, competition, param.Operator)
	if err != nil {
		return nil, err
	}

	registration, err := s.regSvc.FindApproved(ctx, competition.ID, participantID, participantType)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, errs.NotEligible(competition.ID)
	}

	now := s.clock.Now()
	phase, open := SubmissionPhaseFor(competition, now)
	if !open {
		return nil, errs.WrongPhase(competition.ID, string(ResolvePhase(competition, now)))
	}

	// Serialize check-then-insert per participant so two concurrent attempts
	// cannot both pass the quota check.
	mutexKey := fmt.Sprintf(constants.SubmissionMutexKey, competition.ID, participantID)
	ok, err := s.rdb.SetNX(ctx, mutexKey, 1, admissionMutexTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("SubmitPrediction failed at acquire admission mutex: %w", err)
	}
	if !ok {
		return nil, errs.Duplicate("another submission is already being processed")
	}
	defer func() {
		errRelease := retry.Do(ctx, func() error {
			return s.rdb.Del(ctx, mutexKey).Err()
		})
		if errRelease != nil {
			s.log.ErrorContext(ctx, "release admission mutex failed", logger.Error(errRelease))
		}
	}()

	quota, err := s.quotaSvc.Remaining(ctx, competition, participantID, DayStart(now))
	if err != nil {
		return nil, err
	}
	if quota.DailyRemaining <= 0 {
		return nil, errs.QuotaExceeded(competition.ID, competition.DailySubmissionLimit, "daily")
	}
	if quota.TotalRemaining <= 0 {
		return nil, errs.QuotaExceeded(competition.ID, competition.TotalSubmissionLimit, "total")
	}

	if err = validatePredictionFile(param.FileName, param.FileSize, param.Content, competition.MaxFileSizeMB); err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("%d/%d/%s.csv", competition.ID, participantID, uuid.New().String())
	err = s.fileStore.PutObject(ctx, s.bucket, objectKey, param.Content, "text/csv")
	if err != nil {
		return nil, fmt.Errorf("SubmitPrediction failed at store prediction file: %w", err)
	}

	submission := &model.Submission{
		CompetitionID:    competition.ID,
		ParticipantID:    participantID,
		SubmitterID:      param.Operator,
		Phase:            phase,
		ObjectKey:        objectKey,
		FileName:         param.FileName,
		FileSize:         param.FileSize,
		ValidationStatus: model.ValidationStatusValid,
		SubmittedAt:      now,
	}
	err = s.db.WithContext(ctx).Create(submission).Error
	if err != nil {
		s.removeStoredObject(ctx, objectKey)
		return nil, fmt.Errorf("SubmitPrediction failed at insert into submission: %w", err)
	}

	msg := event.ScoringMessage{
		SubmissionID:  submission.ID,
		CompetitionID: competition.ID,
		ObjectKey:     objectKey,
		Phase:         string(phase),
	}
	val, err := msg.Marshal()
	if err != nil {
		s.rollbackSubmission(ctx, submission)
		return nil, fmt.Errorf("SubmitPrediction failed at marshal scoring message: %w", err)
	}
	_, _, err = s.producer.Produce(ctx, &sarama.ProducerMessage{
		Topic: event.ScoringTopic,
		Value: sarama.ByteEncoder(val),
	})
	if err != nil {
		s.rollbackSubmission(ctx, submission)
		return nil, fmt.Errorf("SubmitPrediction failed at produce scoring message: %w", err)
	}

	errCache := retry.Do(ctx, func() error {
		return s.rdb.Del(ctx, fmt.Sprintf(constants.LeaderboardCacheKey, competition.ID)).Err()
	})
	if errCache != nil {
		s.log.WarnContext(ctx, "invalidate leaderboard cache failed", logger.Error(errCache))
	}

	return &model.SubmitPredictionResponse{
		SubmissionID:   submission.ID,
		Phase:          phase,
		DailyRemaining: quota.DailyRemaining - 1,
		TotalRemaining: quota.TotalRemaining - 1,
	}, nil
}

// rollbackSubmission undoes both side effects of a failed attempt so no
// orphaned row or file survives.
func (s *SubmissionServiceImpl) rollbackSubmission(ctx context.Context, submission *model.Submission) {
	err := s.db.WithContext(ctx).Delete(&model.Submission{}, submission.ID).Error
	if err != nil {
		s.log.ErrorContext(ctx, "rollback submission row failed",
			logger.Error(err),
			logger.Uint64("submission_id", submission.ID))
	}
	s.removeStoredObject(ctx, submission.ObjectKey)
}

func (s *SubmissionServiceImpl) removeStoredObject(ctx context.Context, objectKey string) {
	err := retry.Do(ctx, func() error {
		return s.fileStore.RemoveObject(ctx, s.bucket, objectKey)
	})
	if err != nil {
		s.log.ErrorContext(ctx, "rollback stored object failed",
			logger.Error(err),
			logger.String("object_key", objectKey))
	}
}

func (s *SubmissionServiceImpl) GetLatestSubmission(ctx context.Context, competitionID, userID uint64) (*model.Submission, error) {
	participantID, _, err := s.participantOf(ctx, competitionID, userID)
	if err != nil {
		return nil, err
	}

	var submission model.Submission
	err = s.db.WithContext(ctx).
		Where("competition_id = ?", competitionID).
		Where("participant_id = ?", participantID).
		Order("submitted_at desc").
		First(&submission).Error
	if err != nil {
		return nil, fmt.Errorf("GetLatestSubmission failed at select from submission: %w", err)
	}
	return &submission, nil
}

func (s *SubmissionServiceImpl) GetSubmissionList(ctx context.Context, param *model.GetSubmissionListParam) ([]model.Submission, int, error) {
	participantID, _, err := s.participantOf(ctx, param.CompetitionID, param.Operator)
	if err != nil {
		return nil, 0, err
	}

	query := s.db.WithContext(ctx).Model(&model.Submission{}).
		Where("competition_id = ?", param.CompetitionID).
		Where("participant_id = ?", participantID)

	var total int64
	err = query.Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("GetSubmissionList failed at count submission: %w", err)
	}

	submissions := make([]model.Submission, 0, param.PageSize)
	err = query.
		Order("submitted_at desc").
		Offset((param.Page - 1) * param.PageSize).
		Limit(param.PageSize).
		Find(&submissions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("GetSubmissionList failed at select from submission: %w", err)
	}
	return submissions, int(total), nil
}

func (s *SubmissionServiceImpl) GetDownloadURL(ctx context.Context, param *model.GetSubmissionDownloadParam) (*model.GetSubmissionDownloadResponse, error) {
	participantID, _, err := s.participantOf(ctx, param.CompetitionID, param.Operator)
	if err != nil {
		return nil, err
	}

	// Scoping the select to the caller's participant id is the ownership
	// check; someone else's submission id just comes back not found.
	var submission model.Submission
	err = s.db.WithContext(ctx).
		Where("id = ?", param.SubmissionID).
		Where("competition_id = ?", param.CompetitionID).
		Where("participant_id = ?", participantID).
		First(&submission).Error
	if err != nil {
		return nil, fmt.Errorf("GetDownloadURL failed at select from submission: %w", err)
	}

	if err = downloadableArtifact(&submission); err != nil {
		return nil, err
	}

	url, err := s.fileStore.GetPresignedDownloadURL(ctx, s.bucket, submission.ObjectKey, downloadURLTTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("GetDownloadURL failed at presign download url: %w", err)
	}
	return &model.GetSubmissionDownloadResponse{
		DownloadURL: url,
		ExpiresIn:   downloadURLTTLSeconds,
	}, nil
}

// downloadableArtifact rejects submissions whose stored file is gone, never
// stored or already removed by the artifact cleaner.
func downloadableArtifact(sub *model.Submission) error {
	if sub.ObjectKey == "" {
		return errs.MalformedInput("the stored file of this submission has been removed")
	}
	return nil
}

func (s *SubmissionServiceImpl) GetQuota(ctx context.Context, competitionID, userID uint64) (*model.GetQuotaResponse, error) {
	competition, err := s.compSvc.GetCompetition(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	participantID, _, err := s.ResolveParticipant(ctx, competition, userID)
	if err != nil {
		return nil, err
	}

	quota, err := s.quotaSvc.Remaining(ctx, competition, participantID, DayStart(s.clock.Now()))
	if err != nil {
		return nil, err
	}
	return &model.GetQuotaResponse{
		DailyRemaining: quota.DailyRemaining,
		TotalRemaining: quota.TotalRemaining,
	}, nil
}

func (s *SubmissionServiceImpl) ResolveParticipant(ctx context.Context, c *model.Competition, userID uint64) (uint64, model.ParticipantType, error) {
	if c.ParticipationType == model.ParticipationTypeIndividual {
		return userID, model.ParticipantTypeUser, nil
	}

	team, err := s.teamSvc.TeamOfUser(ctx, userID, c.ID)
	if err != nil {
		return 0, 0, err
	}
	if team == nil {
		return 0, 0, errs.NotEligible(c.ID)
	}
	return team.ID, model.ParticipantTypeTeam, nil
}

func (s *SubmissionServiceImpl) participantOf(ctx context.Context, competitionID, userID uint64) (uint64, model.ParticipantType, error) {
	competition, err := s.compSvc.GetCompetition(ctx, competitionID)
	if err != nil {
		return 0, 0, err
	}
	return s.ResolveParticipant(ctx, competition, userID)
}

// validatePredictionFile checks the structural admission rules: csv
// extension, configured size cap, and a parseable header plus at least one
// data row. Scoring correctness is the scorer's business, not ours.
func validatePredictionFile(fileName string, fileSize int64, content []byte, maxFileSizeMB int) error {
	if strings.ToLower(filepath.Ext(fileName)) != ".csv" {
		return errs.MalformedInput("prediction file must be a .csv")
	}

	maxBytes := int64(maxFileSizeMB) * 1024 * 1024
	if fileSize > maxBytes || int64(len(content)) > maxBytes {
		return errs.MalformedInput(fmt.Sprintf("prediction file exceeds the %dMB limit", maxFileSizeMB))
	}

	reader := csv.NewReader(bytes.NewReader(content))
	header, err := reader.Read()
	if err != nil {
		return errs.MalformedInput("prediction file has no readable header row")
	}
	if len(header) == 0 {
		return errs.MalformedInput("prediction file header is empty")
	}
	if _, err = reader.Read(); err != nil {
		if err == io.EOF {
			return errs.MalformedInput("prediction file contains no data rows")
		}
		return errs.MalformedInput("prediction file is not valid csv")
	}
	return nil
}

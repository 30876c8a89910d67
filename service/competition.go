package service

import (
	"context"
	"fmt"

	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/errs"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
)

type CompetitionService interface {
	// CreateCompetition creates a competition after validating the schedule
	CreateCompetition(ctx context.Context, param *model.CreateCompetitionParam) (uint64, error)
	// UpdateCompetition updates mutable fields, limits and texts only
	UpdateCompetition(ctx context.Context, param *model.UpdateCompetitionParam) error
	// GetCompetition returns one competition by id
	GetCompetition(ctx context.Context, competitionID uint64) (*model.Competition, error)
	// GetCompetitionList returns a page of competitions with their current phase
	GetCompetitionList(ctx context.Context, page, pageSize int) ([]model.CompetitionWithPhase, int, error)
	// CurrentPhase resolves the competition's phase against the service clock
	CurrentPhase(c *model.Competition) model.Phase
}

type CompetitionServiceImpl struct {
	db    *gorm.DB
	clock Clock
	log   loggerv2.Logger
}

var _ CompetitionService = (*CompetitionServiceImpl)(nil)

func NewCompetitionService(db *gorm.DB, clock Clock, log loggerv2.Logger) CompetitionService {
	return &CompetitionServiceImpl{
		db:    db,
		clock: clock,
		log:   log,
	}
}

func (s *CompetitionServiceImpl) CreateCompetition(ctx context.Context, param *model.CreateCompetitionParam) (uint64, error) {
	if err := validateSchedule(param); err != nil {
		return 0, err
	}

	minSize, maxSize := param.MinTeamSize, param.MaxTeamSize
	if param.ParticipationType == model.ParticipationTypeIndividual {
		minSize, maxSize = 1, 1
	} else {
		if minSize == 0 {
			minSize = 1
		}
		if maxSize == 0 || maxSize < minSize {
			return 0, errs.MalformedInput("max_team_size must be >= min_team_size")
		}
	}

	competition := &model.Competition{
		Title:                param.Title,
		Description:          param.Description,
		CompetitionType:      param.CompetitionType,
		ParticipationType:    param.ParticipationType,
		ScoringMetric:        param.ScoringMetric,
		RegistrationStart:    param.RegistrationStart,
		RegistrationEnd:      param.RegistrationEnd,
		PublicTestStart:      param.PublicTestStart,
		PublicTestEnd:        param.PublicTestEnd,
		PrivateTestStart:     param.PrivateTestStart,
		PrivateTestEnd:       param.PrivateTestEnd,
		DailySubmissionLimit: param.DailySubmissionLimit,
		TotalSubmissionLimit: param.TotalSubmissionLimit,
		MaxFileSizeMB:        param.MaxFileSizeMB,
		MinTeamSize:          minSize,
		MaxTeamSize:          maxSize,
		CreatorID:            param.Operator,
		UpdaterID:            param.Operator,
	}
	err := s.db.WithContext(ctx).Create(competition).Error
	if err != nil {
		return 0, fmt.Errorf("CreateCompetition failed at insert into competition: %w", err)
	}
	return competition.ID, nil
}

func (s *CompetitionServiceImpl) UpdateCompetition(ctx context.Context, param *model.UpdateCompetitionParam) error {
	updates := map[string]any{
		"updater_id": param.Operator,
	}
	if param.Title != nil {
		updates["title"] = *param.Title
	}
	if param.Description != nil {
		updates["description"] = *param.Description
	}
	if param.DailySubmissionLimit != nil {
		updates["daily_submission_limit"] = *param.DailySubmissionLimit
	}
	if param.TotalSubmissionLimit != nil {
		updates["total_submission_limit"] = *param.TotalSubmissionLimit
	}
	if param.MaxFileSizeMB != nil {
		updates["max_file_size_mb"] = *param.MaxFileSizeMB
	}

	if len(updates) == 1 {
		return nil
	}

	err := s.db.WithContext(ctx).Model(&model.Competition{}).
		Where("id = ?", param.ID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("UpdateCompetition failed at update competition: %w", err)
	}
	return nil
}

func (s *CompetitionServiceImpl) GetCompetition(ctx context.Context, competitionID uint64) (*model.Competition, error) {
	var competition model.Competition
	err := s.db.WithContext(ctx).
		Where("id = ?", competitionID).
		First(&competition).Error
	if err != nil {
		return nil, fmt.Errorf("GetCompetition failed at select from competition: %w", err)
	}
	return &competition, nil
}

func (s *CompetitionServiceImpl) GetCompetitionList(ctx context.Context, page, pageSize int) ([]model.CompetitionWithPhase, int, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Competition{}).Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("GetCompetitionList failed at count competition: %w", err)
	}

	competitions := make([]model.Competition, 0, pageSize)
	err = s.db.WithContext(ctx).
		Order("registration_start desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&competitions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("GetCompetitionList failed at select from competition: %w", err)
	}

	now := s.clock.Now()
	list := make([]model.CompetitionWithPhase, 0, len(competitions))
	for _, c := range competitions {
		list = append(list, model.CompetitionWithPhase{
			Competition: c,
			Phase:       ResolvePhase(&c, now),
		})
	}
	return list, int(total), nil
}

func (s *CompetitionServiceImpl) CurrentPhase(c *model.Competition) model.Phase {
	return ResolvePhase(c, s.clock.Now())
}

// validateSchedule enforces the contiguous, non-overlapping phase chain:
// registrationStart < registrationEnd <= publicTestStart < publicTestEnd and,
// for four-phase competitions, publicTestEnd <= privateTestStart < privateTestEnd.
func validateSchedule(param *model.CreateCompetitionParam) error {
	if !param.RegistrationStart.Before(param.RegistrationEnd) {
		return errs.MalformedInput("registration_start must be before registration_end")
	}
	if param.PublicTestStart.Before(param.RegistrationEnd) {
		return errs.MalformedInput("public_test_start must not be before registration_end")
	}
	if !param.PublicTestStart.Before(param.PublicTestEnd) {
		return errs.MalformedInput("public_test_start must be before public_test_end")
	}

	switch param.CompetitionType {
	case model.CompetitionTypeThreePhase:
		if param.PrivateTestStart != nil || param.PrivateTestEnd != nil {
			return errs.MalformedInput("three-phase competitions must not define a private test window")
		}
	case model.CompetitionTypeFourPhase:
		if param.PrivateTestStart == nil || param.PrivateTestEnd == nil {
			return errs.MalformedInput("four-phase competitions require a private test window")
		}
		if param.PrivateTestStart.Before(param.PublicTestEnd) {
			return errs.MalformedInput("private_test_start must not be before public_test_end")
		}
		if !param.PrivateTestStart.Before(*param.PrivateTestEnd) {
			return errs.MalformedInput("private_test_start must be before private_test_end")
		}
	}
	return nil
}

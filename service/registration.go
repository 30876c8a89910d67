package service

import (
	"context"
	"fmt"

	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/errs"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
)

type RegistrationService interface {
	// Register files a registration request for the operator (individual
	// competitions) or the operator's team (team competitions)
	Register(ctx context.Context, param *model.RegisterCompetitionParam) (uint64, error)
	// Review approves or rejects a pending registration
	Review(ctx context.Context, param *model.ReviewRegistrationParam) error
	// GetRegistrationList returns a page of registrations for a competition
	GetRegistrationList(ctx context.Context, param *model.GetRegistrationListParam) ([]model.Registration, int, error)
	// FindApproved returns the approved registration of a participant, or nil
	FindApproved(ctx context.Context, competitionID, participantID uint64, participantType model.ParticipantType) (*model.Registration, error)
}

type RegistrationServiceImpl struct {
	db      *gorm.DB
	teamSvc TeamService
	clock   Clock
	log     loggerv2.Logger
}

var _ RegistrationService = (*RegistrationServiceImpl)(nil)

func NewRegistrationService(db *gorm.DB, teamSvc TeamService, clock Clock, log loggerv2.Logger) RegistrationService {
	return &RegistrationServiceImpl{
		db:      db,
		teamSvc: teamSvc,
		clock:   clock,
		log:     log,
	}
}

func (s *RegistrationServiceImpl) Register(ctx context.Context, param *model.RegisterCompetitionParam) (uint64, error) {
	var competition model.Competition
	err := s.db.WithContext(ctx).
		Where("id = ?", param.CompetitionID).
		First(&competition).Error
	if err != nil {
		return 0, fmt.Errorf("Register failed at select from competition: %w", err)
	}

	if phase := ResolvePhase(&competition, s.clock.Now()); phase != model.PhaseRegistration {
		return 0, errs.WrongPhase(competition.ID, string(phase))
	}

	participantID := param.Operator
	participantType := model.ParticipantTypeUser

	if competition.ParticipationType == model.ParticipationTypeTeam {
		if param.TeamID == 0 {
			return 0, errs.MalformedInput("team_id is required for team competitions")
		}
		participantID = param.TeamID
		participantType = model.ParticipantTypeTeam

		if err = s.checkTeamRegistration(ctx, &competition, param.TeamID, param.Operator); err != nil {
			return 0, err
		}
	}

	var existing int64
	err = s.db.WithContext(ctx).Model(&model.Registration{}).
		Where("competition_id = ?", competition.ID).
		Where("participant_id = ?", participantID).
		Where("participant_type = ?", participantType).
		Count(&existing).Error
	if err != nil {
		return 0, fmt.Errorf("Register failed at count registration: %w", err)
	}
	if existing > 0 {
		return 0, errs.Duplicate("participant already registered for this competition")
	}

	registration := &model.Registration{
		CompetitionID:   competition.ID,
		ParticipantID:   participantID,
		ParticipantType: participantType,
		Status:          model.RegistrationStatusPending,
	}
	err = s.db.WithContext(ctx).Create(registration).Error
	if err != nil {
		return 0, fmt.Errorf("Register failed at insert into registration: %w", err)
	}

	s.log.InfoContext(ctx, "registration filed",
		logger.Uint64("competition_id", competition.ID),
		logger.Uint64("participant_id", participantID))
	return registration.ID, nil
}

// checkTeamRegistration verifies the operator leads the team, the roster fits
// the competition's size window, and no member already competes here through
// another team.
func (s *RegistrationServiceImpl) checkTeamRegistration(ctx context.Context, competition *model.Competition, teamID, operator uint64) error {
	team, err := s.teamSvc.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if team.LeaderID != operator {
		return errs.NotEligible(competition.ID)
	}

	size := len(team.Members)
	if size < competition.MinTeamSize {
		return errs.TeamSizeViolation(competition.ID, competition.MinTeamSize,
			fmt.Sprintf("team has %d members, minimum is %d", size, competition.MinTeamSize))
	}
	if size > competition.MaxTeamSize {
		return errs.TeamSizeViolation(competition.ID, competition.MaxTeamSize,
			fmt.Sprintf("team has %d members, maximum is %d", size, competition.MaxTeamSize))
	}

	memberIDs := make([]uint64, 0, size)
	for _, m := range team.Members {
		memberIDs = append(memberIDs, m.UserID)
	}

	var conflicts []uint64
	err = s.db.WithContext(ctx).
		Table(fmt.Sprintf("%s r", model.Registration{}.TableName())).
		Select("tm.user_id").
		Joins(fmt.Sprintf("JOIN %s tm ON tm.team_id = r.participant_id", model.TeamMember{}.TableName())).
		Where("r.competition_id = ?", competition.ID).
		Where("r.participant_type = ?", model.ParticipantTypeTeam).
		Where("r.status IN ?", []model.RegistrationStatus{model.RegistrationStatusPending, model.RegistrationStatusApproved}).
		Where("tm.team_id != ?", teamID).
		Where("tm.user_id IN ?", memberIDs).
		Pluck("tm.user_id", &conflicts).Error
	if err != nil {
		return fmt.Errorf("checkTeamRegistration failed at select from registration: %w", err)
	}
	if len(conflicts) > 0 {
		return errs.TeamConflict(competition.ID, conflicts[0])
	}
	return nil
}

func (s *RegistrationServiceImpl) Review(ctx context.Context, param *model.ReviewRegistrationParam) error {
	status := model.RegistrationStatusRejected
	if *param.Approve {
		status = model.RegistrationStatusApproved
	}

	res := s.db.WithContext(ctx).Model(&model.Registration{}).
		Where("id = ?", param.RegistrationID).
		Where("status = ?", model.RegistrationStatusPending).
		Updates(map[string]any{
			"status":      status,
			"reviewer_id": param.Operator,
		})
	if res.Error != nil {
		return fmt.Errorf("Review failed at update registration: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.MalformedInput("registration is not pending")
	}
	return nil
}

func (s *RegistrationServiceImpl) GetRegistrationList(ctx context.Context, param *model.GetRegistrationListParam) ([]model.Registration, int, error) {
	query := s.db.WithContext(ctx).Model(&model.Registration{}).
		Where("competition_id = ?", param.CompetitionID)
	if param.Status != nil {
		query = query.Where("status = ?", *param.Status)
	}

	var total int64
	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("GetRegistrationList failed at count registration: %w", err)
	}

	registrations := make([]model.Registration, 0, param.PageSize)
	err = query.
		Order("created_at asc").
		Offset((param.Page - 1) * param.PageSize).
		Limit(param.PageSize).
		Find(&registrations).Error
	if err != nil {
		return nil, 0, fmt.Errorf("GetRegistrationList failed at select from registration: %w", err)
	}
	return registrations, int(total), nil
}

func (s *RegistrationServiceImpl) FindApproved(ctx context.Context, competitionID, participantID uint64, participantType model.ParticipantType) (*model.Registration, error) {
	var registration model.Registration
	err := s.db.WithContext(ctx).
		Where("competition_id = ?", competitionID).
		Where("participant_id = ?", participantID).
		Where("participant_type = ?", participantType).
		Where("status = ?", model.RegistrationStatusApproved).
		First(&registration).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("FindApproved failed at select from registration: %w", err)
	}
	return &registration, nil
}

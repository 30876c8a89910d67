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

type TeamService interface {
	// CreateTeam creates a team with the operator as leader
	CreateTeam(ctx context.Context, param *model.CreateTeamParam) (uint64, error)
	// AddMember admits a user into the team after the eligibility checks
	AddMember(ctx context.Context, param *model.TeamMemberParam) error
	// RemoveMember removes a member, never the leader
	RemoveMember(ctx context.Context, param *model.TeamMemberParam) error
	// GetTeam returns the team with its member list
	GetTeam(ctx context.Context, teamID uint64) (*model.Team, error)
	// TeamOfUser returns the team holding an active registration for the
	// competition that the user belongs to, or nil
	TeamOfUser(ctx context.Context, userID, competitionID uint64) (*model.Team, error)
	// MemberCount returns the team's current size
	MemberCount(ctx context.Context, teamID uint64) (int, error)
}

type TeamServiceImpl struct {
	db  *gorm.DB
	log loggerv2.Logger
}

var _ TeamService = (*TeamServiceImpl)(nil)

func NewTeamService(db *gorm.DB, log loggerv2.Logger) TeamService {
	return &TeamServiceImpl{
		db:  db,
		log: log,
	}
}

func (s *TeamServiceImpl) CreateTeam(ctx context.Context, param *model.CreateTeamParam) (uint64, error) {
	tx := s.db.WithContext(ctx).Begin()

	team := &model.Team{
		Name:     param.Name,
		LeaderID: param.Operator,
	}
	err := tx.Create(team).Error
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("CreateTeam transaction failed at insert into team: %w", err)
	}

	err = tx.Create(&model.TeamMember{
		TeamID: team.ID,
		UserID: param.Operator,
		Role:   model.TeamRoleLeader,
	}).Error
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("CreateTeam transaction failed at insert into team_member: %w", err)
	}

	err = tx.Commit().Error
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("CreateTeam transaction failed at commit: %w", err)
	}
	return team.ID, nil
}

func (s *TeamServiceImpl) AddMember(ctx context.Context, param *model.TeamMemberParam) error {
	var team model.Team
	err := s.db.WithContext(ctx).
		Where("id = ?", param.TeamID).
		First(&team).Error
	if err != nil {
		return fmt.Errorf("AddMember failed at select from team: %w", err)
	}

	memberIDs, err := s.memberIDs(ctx, param.TeamID)
	if err != nil {
		return err
	}

	caps, err := s.activeRegistrationCaps(ctx, param.TeamID)
	if err != nil {
		return err
	}

	candidateActive, err := s.otherActiveCompetitionIDs(ctx, param.UserID, param.TeamID)
	if err != nil {
		return err
	}

	if err = evaluateAddMember(team.LeaderID, param.Operator, memberIDs, param.UserID, caps, candidateActive); err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Create(&model.TeamMember{
		TeamID: param.TeamID,
		UserID: param.UserID,
		Role:   model.TeamRoleMember,
	}).Error
	if err != nil {
		return fmt.Errorf("AddMember failed at insert into team_member: %w", err)
	}

	s.log.InfoContext(ctx, "team member added",
		logger.Uint64("team_id", param.TeamID),
		logger.Uint64("user_id", param.UserID))
	return nil
}

func (s *TeamServiceImpl) RemoveMember(ctx context.Context, param *model.TeamMemberParam) error {
	var team model.Team
	err := s.db.WithContext(ctx).
		Where("id = ?", param.TeamID).
		First(&team).Error
	if err != nil {
		return fmt.Errorf("RemoveMember failed at select from team: %w", err)
	}

	memberIDs, err := s.memberIDs(ctx, param.TeamID)
	if err != nil {
		return err
	}

	caps, err := s.activeRegistrationCaps(ctx, param.TeamID)
	if err != nil {
		return err
	}

	if err = evaluateRemoveMember(team.LeaderID, param.Operator, param.UserID, memberIDs, caps); err != nil {
		return err
	}

	err = s.db.WithContext(ctx).
		Where("team_id = ?", param.TeamID).
		Where("user_id = ?", param.UserID).
		Delete(&model.TeamMember{}).Error
	if err != nil {
		return fmt.Errorf("RemoveMember failed at delete from team_member: %w", err)
	}

	s.log.InfoContext(ctx, "team member removed",
		logger.Uint64("team_id", param.TeamID),
		logger.Uint64("user_id", param.UserID))
	return nil
}

func (s *TeamServiceImpl) GetTeam(ctx context.Context, teamID uint64) (*model.Team, error) {
	var team model.Team
	err := s.db.WithContext(ctx).
		Preload("Members").
		Where("id = ?", teamID).
		First(&team).Error
	if err != nil {
		return nil, fmt.Errorf("GetTeam failed at select from team: %w", err)
	}
	return &team, nil
}

func (s *TeamServiceImpl) TeamOfUser(ctx context.Context, userID, competitionID uint64) (*model.Team, error) {
	var team model.Team
	err := s.db.WithContext(ctx).
		Table(fmt.Sprintf("%s t", model.Team{}.TableName())).
		Select("t.*").
		Joins(fmt.Sprintf("JOIN %s tm ON tm.team_id = t.id", model.TeamMember{}.TableName())).
		Joins(fmt.Sprintf("JOIN %s r ON r.participant_id = t.id AND r.participant_type = ?", model.Registration{}.TableName()), model.ParticipantTypeTeam).
		Where("tm.user_id = ?", userID).
		Where("r.competition_id = ?", competitionID).
		Where("r.status IN ?", []model.RegistrationStatus{model.RegistrationStatusPending, model.RegistrationStatusApproved}).
		First(&team).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("TeamOfUser failed at select from team: %w", err)
	}
	return &team, nil
}

func (s *TeamServiceImpl) MemberCount(ctx context.Context, teamID uint64) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.TeamMember{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("MemberCount failed at count team_member: %w", err)
	}
	return int(count), nil
}

func (s *TeamServiceImpl) memberIDs(ctx context.Context, teamID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.TeamMember{}).
		Where("team_id = ?", teamID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("memberIDs failed at select from team_member: %w", err)
	}
	return ids, nil
}

// teamRegistrationCap carries the size limits of one competition this team is
// actively registered for.
type teamRegistrationCap struct {
	CompetitionID uint64 `gorm:"column:competition_id"`
	MinTeamSize   int    `gorm:"column:min_team_size"`
	MaxTeamSize   int    `gorm:"column:max_team_size"`
}

func (s *TeamServiceImpl) activeRegistrationCaps(ctx context.Context, teamID uint64) ([]teamRegistrationCap, error) {
	var caps []teamRegistrationCap
	err := s.db.WithContext(ctx).
		Table(fmt.Sprintf("%s r", model.Registration{}.TableName())).
		Select("r.competition_id, c.min_team_size, c.max_team_size").
		Joins(fmt.Sprintf("JOIN %s c ON c.id = r.competition_id", model.Competition{}.TableName())).
		Where("r.participant_id = ?", teamID).
		Where("r.participant_type = ?", model.ParticipantTypeTeam).
		Where("r.status IN ?", []model.RegistrationStatus{model.RegistrationStatusPending, model.RegistrationStatusApproved}).
		Scan(&caps).Error
	if err != nil {
		return nil, fmt.Errorf("activeRegistrationCaps failed at select from registration: %w", err)
	}
	return caps, nil
}

// otherActiveCompetitionIDs collects the competition ids that other teams of
// the user hold active registrations for.
func (s *TeamServiceImpl) otherActiveCompetitionIDs(ctx context.Context, userID, excludeTeamID uint64) (map[uint64]struct{}, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).
		Table(fmt.Sprintf("%s r", model.Registration{}.TableName())).
		Select("r.competition_id").
		Joins(fmt.Sprintf("JOIN %s tm ON tm.team_id = r.participant_id", model.TeamMember{}.TableName())).
		Where("r.participant_type = ?", model.ParticipantTypeTeam).
		Where("r.status IN ?", []model.RegistrationStatus{model.RegistrationStatusPending, model.RegistrationStatusApproved}).
		Where("tm.user_id = ?", userID).
		Where("tm.team_id != ?", excludeTeamID).
		Pluck("r.competition_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("otherActiveCompetitionIDs failed at select from registration: %w", err)
	}

	set := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// evaluateAddMember decides whether the operator may admit candidateID. Only
// the leader mutates the roster. memberIDs is the current roster, caps the
// team's active registrations with their limits, candidateActive the
// competition ids the candidate already occupies through other teams.
func evaluateAddMember(leaderID, operatorID uint64, memberIDs []uint64, candidateID uint64, caps []teamRegistrationCap, candidateActive map[uint64]struct{}) error {
	if operatorID != leaderID {
		return errs.NotTeamLeader()
	}

	for _, id := range memberIDs {
		if id == candidateID {
			return errs.Duplicate("user is already a member of this team")
		}
	}

	for _, reg := range caps {
		if len(memberIDs)+1 > reg.MaxTeamSize {
			return errs.TeamSizeViolation(reg.CompetitionID, reg.MaxTeamSize,
				fmt.Sprintf("adding a member would exceed the team size limit of %d", reg.MaxTeamSize))
		}
		if _, taken := candidateActive[reg.CompetitionID]; taken {
			return errs.TeamConflict(reg.CompetitionID, candidateID)
		}
	}
	return nil
}

// evaluateRemoveMember mirrors evaluateAddMember with the minimum size and
// rejects removing the leader unconditionally.
func evaluateRemoveMember(leaderID, operatorID, memberID uint64, memberIDs []uint64, caps []teamRegistrationCap) error {
	if operatorID != leaderID {
		return errs.NotTeamLeader()
	}
	if memberID == leaderID {
		return errs.LeaderRemovalForbidden()
	}

	found := false
	for _, id := range memberIDs {
		if id == memberID {
			found = true
			break
		}
	}
	if !found {
		return errs.MalformedInput("user is not a member of this team")
	}

	for _, reg := range caps {
		if len(memberIDs)-1 < reg.MinTeamSize {
			return errs.TeamSizeViolation(reg.CompetitionID, reg.MinTeamSize,
				fmt.Sprintf("removing a member would fall below the team size minimum of %d", reg.MinTeamSize))
		}
	}
	return nil
}
